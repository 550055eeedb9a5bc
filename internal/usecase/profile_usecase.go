package usecase

import (
	"context"
	"io"

	"vinmart/internal/domain/entity"
)

// ProfileUsecase defines the account self-service operations: profile fields,
// password, avatar and notification settings.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*ProfileOutput, error)

	// UpdateProfile changes email/phone/name. Values equal to the current ones
	// are a no-op; collisions with another account are a conflict.
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*ProfileOutput, error)

	// ChangePassword verifies the current password before evaluating the
	// new-password rules.
	ChangePassword(ctx context.Context, userID int64, input *ChangePasswordInput) error

	// UpdateAvatar stores the uploaded image and points the account avatar at it.
	UpdateAvatar(ctx context.Context, userID int64, filename string, content io.Reader) (string, error)

	GetNotificationSettings(ctx context.Context, userID int64) (*entity.UserSetting, error)
	UpdateNotificationSettings(ctx context.Context, userID int64, input *UpdateNotificationSettingsInput) (*entity.UserSetting, error)
}

// --- Input / Output DTOs ---

// ProfileOutput is the profile payload returned to the owner.
type ProfileOutput struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// UpdateProfileInput defines the mutable profile fields.
type UpdateProfileInput struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

// ChangePasswordInput defines the password-change request.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UpdateNotificationSettingsInput defines the notification toggles.
type UpdateNotificationSettingsInput struct {
	EnableEmailNotification   bool `json:"enableEmailNotification"`
	EnableOrderNotification   bool `json:"enableOrderNotification"`
	EnableGeneralNotification bool `json:"enableGeneralNotification"`
}
