package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "vinmart/internal/delivery/context"
	"vinmart/internal/domain/entity"
	domainerrors "vinmart/internal/domain/errors"
	"vinmart/internal/domain/repository"
	"vinmart/internal/domain/service"
	"vinmart/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	files     service.FileStore
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	files service.FileStore,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		hasher:    hasher,
		files:     files,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the account profile.
func (srv *profileService) GetProfile(ctx context.Context, userID int64) (*usecase.ProfileOutput, error) {
	srv.log(ctx).Debug("Getting user profile", "userID", userID)

	var output *usecase.ProfileOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		output = toProfileOutput(user)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// UpdateProfile changes email, phone and name. Submitting the account's
// current value is a no-op; a value belonging to another account is a conflict.
func (srv *profileService) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*usecase.ProfileOutput, error) {
	srv.log(ctx).Info("Updating user profile", "userID", userID)

	var output *usecase.ProfileOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if input.Email != "" && input.Email != user.Email {
			if other, err := userRepo.FindByEmail(ctx, input.Email); err == nil && other.ID != userID {
				return domainerrors.Conflict(domainerrors.BodyField(input.Email, domainerrors.MsgEmailRegistered, "email"))
			} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check email")
			}
			user.Email = input.Email
		}

		if input.Phone != "" && (user.Phone == nil || input.Phone != user.Phone.Phone) {
			if other, err := userRepo.FindByPhone(ctx, input.Phone); err == nil && other.ID != userID {
				return domainerrors.Conflict(domainerrors.BodyField(input.Phone, domainerrors.MsgPhoneRegistered, "phone"))
			} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check phone")
			}
			if user.Phone == nil {
				user.Phone = &entity.Phone{UserID: userID}
			}
			user.Phone.Phone = input.Phone
		}

		if input.Name != "" {
			user.Name = input.Name
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		output = toProfileOutput(user)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// ChangePassword verifies the current password before evaluating the
// new-password rules, in that order, so a wrong current password is always the
// first error reported.
func (srv *profileService) ChangePassword(ctx context.Context, userID int64, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", "userID", userID)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.CurrentPassword, user.Password) {
			return domainerrors.Validation(
				domainerrors.BodyField(input.CurrentPassword, domainerrors.MsgCurrentPasswordWrong, "currentPassword"),
			)
		}
		if input.NewPassword == input.CurrentPassword {
			return domainerrors.Validation(
				domainerrors.BodyField(input.NewPassword, domainerrors.MsgPasswordSameAsCurrent, "newPassword"),
			)
		}
		if input.ConfirmPassword != input.NewPassword {
			return domainerrors.Validation(
				domainerrors.BodyField(input.ConfirmPassword, domainerrors.MsgConfirmPasswordMismatch, "confirmPassword"),
			)
		}

		passwordHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		if err := userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return nil
	})
}

// UpdateAvatar stores the uploaded image and points the account avatar at its
// public URL, replacing any previous avatar row.
func (srv *profileService) UpdateAvatar(ctx context.Context, userID int64, filename string, content io.Reader) (string, error) {
	srv.log(ctx).Info("Updating avatar", "userID", userID)

	url, err := srv.files.Save(ctx, filename, content)
	if err != nil {
		return "", errors.Wrap(err, "failed to store avatar file")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().SaveAvatar(ctx, userID, url); err != nil {
			return errors.Wrap(err, "failed to save avatar")
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return url, nil
}

// GetNotificationSettings returns the account's notification toggles.
func (srv *profileService) GetNotificationSettings(ctx context.Context, userID int64) (*entity.UserSetting, error) {
	var setting *entity.UserSetting

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		setting = user.Setting
		if setting == nil {
			setting = entity.DefaultUserSetting(userID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return setting, nil
}

// UpdateNotificationSettings overwrites all three toggles.
func (srv *profileService) UpdateNotificationSettings(ctx context.Context, userID int64, input *usecase.UpdateNotificationSettingsInput) (*entity.UserSetting, error) {
	srv.log(ctx).Info("Updating notification settings", "userID", userID)

	setting := &entity.UserSetting{
		UserID:                    userID,
		EnableEmailNotification:   input.EnableEmailNotification,
		EnableOrderNotification:   input.EnableOrderNotification,
		EnableGeneralNotification: input.EnableGeneralNotification,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().UpdateSetting(ctx, setting); err != nil {
			return errors.Wrap(err, "failed to update settings")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return setting, nil
}

// toProfileOutput flattens the account into the profile payload.
func toProfileOutput(user *entity.User) *usecase.ProfileOutput {
	output := &usecase.ProfileOutput{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
	if user.Image != nil {
		output.Image = user.Image.URL
	}
	if user.Phone != nil {
		output.Phone = user.Phone.Phone
	}

	return output
}
