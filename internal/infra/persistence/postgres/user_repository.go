package postgres

import (
	"context"

	"vinmart/internal/domain/entity"
	domainerrors "vinmart/internal/domain/errors"
	"vinmart/internal/domain/repository"
	"vinmart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by id, preloading the phone, avatar and settings rows.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Phone").
		Preload("Image").
		Preload("Setting").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Phone").
		Preload("Image").
		Preload("Setting").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByPhone retrieves the user owning the given phone number.
func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN phones ON phones.user_id = users.id").
		Where("phones.phone = ?", phone).
		Preload("Phone").
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by phone")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity together with its phone and settings rows.
// GORM's Create with associations inserts into users, phones and user_settings
// in one statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// The services check uniqueness before writing; this mapping is the
		// backstop for two identical requests racing past the read.
		if isUniqueConstraintViolation(err) {
			if violationMentions(err, "phones") {
				phone := ""
				if user.Phone != nil {
					phone = user.Phone.Phone
				}

				return domainerrors.Conflict(domainerrors.BodyField(phone, domainerrors.MsgPhoneRegistered, "phone")).
					WrapMessage("phone unique constraint violated")
			}

			return domainerrors.Conflict(domainerrors.BodyField(user.Email, domainerrors.MsgEmailRegistered, "email")).
				WrapMessage("email unique constraint violated")
		}

		return errors.Wrap(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.Phone != nil && userM.Phone != nil {
		user.Phone.ID = userM.Phone.ID
		user.Phone.UserID = userM.Phone.UserID
	}
	if user.Setting != nil && userM.Setting != nil {
		user.Setting.ID = userM.Setting.ID
		user.Setting.UserID = userM.Setting.UserID
	}

	return nil
}

// Update modifies an existing user entity and its associations.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			if violationMentions(err, "phones") {
				phone := ""
				if user.Phone != nil {
					phone = user.Phone.Phone
				}

				return domainerrors.Conflict(domainerrors.BodyField(phone, domainerrors.MsgPhoneRegistered, "phone")).
					WrapMessage("phone unique constraint violated")
			}

			return domainerrors.Conflict(domainerrors.BodyField(user.Email, domainerrors.MsgEmailRegistered, "email")).
				WrapMessage("email unique constraint violated")
		}

		return errors.Wrap(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdatePassword replaces the stored password hash.
func (repo *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password", passwordHash)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateStatus flips the account lifecycle status.
func (repo *userRepository) UpdateStatus(ctx context.Context, id int64, status entity.UserStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SaveAvatar creates or replaces the avatar image row and returns it.
// The unique index on images.user_id guarantees at most one avatar per account.
func (repo *userRepository) SaveAvatar(ctx context.Context, userID int64, url string) (*entity.Image, error) {
	var imageM model.ImageModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&imageM).Error

	switch {
	case err == nil:
		imageM.URL = url
		if err := repo.db.WithContext(ctx).Save(&imageM).Error; err != nil {
			return nil, errors.Wrap(err, "failed to replace avatar image")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		imageM = model.ImageModel{URL: url, UserID: &userID}
		if err := repo.db.WithContext(ctx).Create(&imageM).Error; err != nil {
			return nil, errors.Wrap(err, "failed to create avatar image")
		}
	default:
		return nil, errors.Wrap(err, "failed to look up avatar image")
	}

	return toImageDomain(&imageM), nil
}

// UpdateSetting persists the notification toggles for a user.
func (repo *userRepository) UpdateSetting(ctx context.Context, setting *entity.UserSetting) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserSettingModel{}).
		Where("user_id = ?", setting.UserID).
		Updates(map[string]any{
			"enable_email_notification":   setting.EnableEmailNotification,
			"enable_order_notification":   setting.EnableOrderNotification,
			"enable_general_notification": setting.EnableGeneralNotification,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user settings")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Password:  data.Password,
		Name:      data.Name,
		Status:    entity.UserStatus(data.Status),
		Phone:     toPhoneDomain(data.Phone),
		Image:     toImageDomain(data.Image),
		Setting:   toUserSettingDomain(data.Setting),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:       data.ID,
		Email:    data.Email,
		Password: data.Password,
		Name:     data.Name,
		Status:   string(data.Status),
		Phone:    fromPhoneDomain(data.Phone),
		Setting:  fromUserSettingDomain(data.Setting),
	}
}

func toPhoneDomain(data *model.PhoneModel) *entity.Phone {
	if data == nil {
		return nil
	}

	return &entity.Phone{
		ID:     data.ID,
		UserID: data.UserID,
		Phone:  data.Phone,
	}
}

func fromPhoneDomain(data *entity.Phone) *model.PhoneModel {
	if data == nil {
		return nil
	}

	return &model.PhoneModel{
		ID:     data.ID,
		UserID: data.UserID,
		Phone:  data.Phone,
	}
}

func toUserSettingDomain(data *model.UserSettingModel) *entity.UserSetting {
	if data == nil {
		return nil
	}

	return &entity.UserSetting{
		ID:                        data.ID,
		UserID:                    data.UserID,
		EnableEmailNotification:   data.EnableEmailNotification,
		EnableOrderNotification:   data.EnableOrderNotification,
		EnableGeneralNotification: data.EnableGeneralNotification,
	}
}

func fromUserSettingDomain(data *entity.UserSetting) *model.UserSettingModel {
	if data == nil {
		return nil
	}

	return &model.UserSettingModel{
		ID:                        data.ID,
		UserID:                    data.UserID,
		EnableEmailNotification:   data.EnableEmailNotification,
		EnableOrderNotification:   data.EnableOrderNotification,
		EnableGeneralNotification: data.EnableGeneralNotification,
	}
}

func toImageDomain(data *model.ImageModel) *entity.Image {
	if data == nil {
		return nil
	}

	return &entity.Image{
		ID:         data.ID,
		URL:        data.URL,
		UserID:     data.UserID,
		CategoryID: data.CategoryID,
		ProductID:  data.ProductID,
	}
}
