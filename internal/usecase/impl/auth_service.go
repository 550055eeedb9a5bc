// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "vinmart/internal/delivery/context"
	"vinmart/internal/domain/entity"
	domainerrors "vinmart/internal/domain/errors"
	"vinmart/internal/domain/repository"
	"vinmart/internal/domain/service"
	"vinmart/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokens    service.TokenService
	codes     service.CodeGenerator
	mailer    service.MailService
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	codes service.CodeGenerator,
	mailer service.MailService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
		codes:     codes,
		mailer:    mailer,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new account in PRE_ACTIVE status, stores a hashed
// activation code and emails it. The returned token carries the OTP audience,
// so the client can only reach the activation endpoints with it.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.log(ctx).Debug("Signing up new account", "email", input.Email)

	var user *entity.User
	var plainCode string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Reject values already registered to another account. Both checks
		// run so a request reusing both email and phone reports both fields.
		taken := domainerrors.NewFieldErrors(http.StatusConflict)
		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			taken.Append(domainerrors.BodyField(input.Email, domainerrors.MsgEmailRegistered, "email"))
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}
		if _, err := userRepo.FindByPhone(ctx, input.Phone); err == nil {
			taken.Append(domainerrors.BodyField(input.Phone, domainerrors.MsgPhoneRegistered, "phone"))
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check phone")
		}
		if taken.HasFields() {
			return taken
		}

		// 2. Hash the password and create the account with its phone and
		// default notification settings.
		passwordHash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		user = &entity.User{
			Email:    input.Email,
			Password: passwordHash,
			Name:     entity.DefaultUserName,
			Status:   entity.UserStatusPreActive,
			Phone:    &entity.Phone{Phone: input.Phone},
			Setting:  entity.DefaultUserSetting(0),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		// 3. Store the hashed activation code.
		plainCode, err = srv.storeActivationCode(ctx, repoFactory.CodeRepo(), user.ID)
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Email delivery must not undo the registration: failures are logged and
	// the client can request a resend.
	if err := srv.mailer.SendVerificationCode(ctx, user.Email, user.Name, plainCode); err != nil {
		srv.log(ctx).Warn("failed to send verification code", "userID", user.ID, "error", err)
	}

	token, err := srv.tokens.GenerateOTPToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp token")
	}

	return &usecase.SignUpOutput{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Phone:  user.Phone.Phone,
		Status: string(user.Status),
		Token:  token,
	}, nil
}

// SignIn verifies the credentials and mints a session token. Wrong email and
// wrong password answer with the same generic message so the endpoint never
// confirms which accounts exist.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.Common(domainerrors.MsgSignInFailed)
			}

			return errors.Wrap(err, "failed to find user by email")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		return nil, domainerrors.Common(domainerrors.MsgSignInFailed)
	}
	if !user.IsActive() {
		return nil, domainerrors.Common(domainerrors.MsgAccountNotActive)
	}

	token, err := srv.tokens.GenerateSessionToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.SignInOutput{Token: token}, nil
}

// ActivateAccount verifies the submitted code against the stored hash and
// flips the account to ACTIVE. A missing or mismatched code answers with the
// same message.
func (srv *authService) ActivateAccount(ctx context.Context, userID int64, otp string) error {
	srv.log(ctx).Debug("Activating account", "userID", userID)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		code, err := repoFactory.CodeRepo().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return domainerrors.Common(domainerrors.MsgInvalidCode)
			}

			return errors.Wrap(err, "failed to find activation code")
		}

		if !srv.hasher.Check(otp, code.Code) {
			return domainerrors.Common(domainerrors.MsgInvalidCode)
		}

		if err := repoFactory.UserRepo().UpdateStatus(ctx, userID, entity.UserStatusActive); err != nil {
			return errors.Wrap(err, "failed to activate account")
		}

		return nil
	})
}

// ResendActivateOTP issues, stores and emails a fresh activation code,
// replacing the previous one.
func (srv *authService) ResendActivateOTP(ctx context.Context, userID int64) error {
	srv.log(ctx).Debug("Resending activation code", "userID", userID)

	var user *entity.User
	var plainCode string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.Common(domainerrors.MsgInvalidCode)
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		plainCode, err = srv.storeActivationCode(ctx, repoFactory.CodeRepo(), userID)
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := srv.mailer.SendVerificationCode(ctx, user.Email, user.Name, plainCode); err != nil {
		srv.log(ctx).Warn("failed to send verification code", "userID", userID, "error", err)
	}

	return nil
}

// storeActivationCode generates a code, hashes it and upserts the hash onto
// the user's single code row. The plaintext is returned for the outgoing email
// and never stored.
func (srv *authService) storeActivationCode(ctx context.Context, codeRepo repository.OneTimeCodeRepository, userID int64) (string, error) {
	plainCode, err := srv.codes.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate activation code")
	}

	codeHash, err := srv.hasher.Hash(plainCode)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash activation code")
	}

	if err := codeRepo.Upsert(ctx, &entity.OneTimeCode{UserID: userID, Code: codeHash}); err != nil {
		return "", errors.Wrap(err, "failed to store activation code")
	}

	return plainCode, nil
}
