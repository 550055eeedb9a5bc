package handler

import (
	"log/slog"
	"net/http"

	"vinmart/config"
	"vinmart/internal/delivery/http/middleware"
	"vinmart/internal/delivery/http/response"
	"vinmart/internal/delivery/http/validation"
	domainerrors "vinmart/internal/domain/errors"
	"vinmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// avatarFormField is the multipart field the avatar upload arrives in.
const avatarFormField = "image"

// ProfileHandler holds dependencies for the account self-service endpoints.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, cfg *config.Config, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProfile answers the owner's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.uc.GetProfile(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, profile)
}

type updateProfileRequest struct {
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Name  *string `json:"name"`
}

// profileUpdatedJSON is the update payload; unlike the GET payload it never
// carries the avatar.
type profileUpdatedJSON struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Name  string `json:"name"`
}

// UpdateProfile changes email, phone and display name. Omitted fields keep
// their current value.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	bindBody(c, &req)

	v := validation.New()
	v.Body("email", req.Email).Email()
	v.Body("phone", req.Phone).Phone()
	if err := v.Err(); err != nil {
		return err
	}

	input := &usecase.UpdateProfileInput{}
	if req.Email != nil {
		input.Email = *req.Email
	}
	if req.Phone != nil {
		input.Phone = *req.Phone
	}
	if req.Name != nil {
		input.Name = *req.Name
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, profileUpdatedJSON{
		ID:    profile.ID,
		Email: profile.Email,
		Phone: profile.Phone,
		Name:  profile.Name,
	})
}

type changePasswordRequest struct {
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword"`
	ConfirmPassword *string `json:"confirmPassword"`
}

// ChangePassword verifies the current password and applies the new one.
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	bindBody(c, &req)

	v := validation.New()
	v.Body("currentPassword", req.CurrentPassword).Required()
	v.Body("newPassword", req.NewPassword).Required().StrongPassword(h.cfg.PasswordStrength)
	v.Body("confirmPassword", req.ConfirmPassword).Required()
	if err := v.Err(); err != nil {
		return err
	}

	err := h.uc.ChangePassword(c.Request().Context(), middleware.CurrentUserID(c), &usecase.ChangePasswordInput{
		CurrentPassword: *req.CurrentPassword,
		NewPassword:     *req.NewPassword,
		ConfirmPassword: *req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Empty(c, http.StatusOK)
}

// UpdateAvatar stores the uploaded image and answers its public URL.
func (h *ProfileHandler) UpdateAvatar(c echo.Context) error {
	file, err := c.FormFile(avatarFormField)
	if err != nil {
		return domainerrors.Validation(
			domainerrors.BodyField(nil, domainerrors.MsgInvalidValue, avatarFormField))
	}

	src, err := file.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded avatar")
	}
	defer src.Close()

	url, err := h.uc.UpdateAvatar(c.Request().Context(), middleware.CurrentUserID(c), file.Filename, src)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, map[string]string{"image": url})
}

// notificationSettingsJSON is the notification toggles wire payload.
type notificationSettingsJSON struct {
	EnableEmailNotification   bool `json:"enableEmailNotification"`
	EnableOrderNotification   bool `json:"enableOrderNotification"`
	EnableGeneralNotification bool `json:"enableGeneralNotification"`
}

// GetNotificationSettings answers the owner's notification toggles.
func (h *ProfileHandler) GetNotificationSettings(c echo.Context) error {
	setting, err := h.uc.GetNotificationSettings(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, notificationSettingsJSON{
		EnableEmailNotification:   setting.EnableEmailNotification,
		EnableOrderNotification:   setting.EnableOrderNotification,
		EnableGeneralNotification: setting.EnableGeneralNotification,
	})
}

type updateNotificationSettingsRequest struct {
	EnableEmailNotification   *bool `json:"enableEmailNotification"`
	EnableOrderNotification   *bool `json:"enableOrderNotification"`
	EnableGeneralNotification *bool `json:"enableGeneralNotification"`
}

// UpdateNotificationSettings replaces the owner's notification toggles.
func (h *ProfileHandler) UpdateNotificationSettings(c echo.Context) error {
	var req updateNotificationSettingsRequest
	bindBody(c, &req)

	v := validation.New()
	v.Body("enableEmailNotification", req.EnableEmailNotification).Required()
	v.Body("enableOrderNotification", req.EnableOrderNotification).Required()
	v.Body("enableGeneralNotification", req.EnableGeneralNotification).Required()
	if err := v.Err(); err != nil {
		return err
	}

	setting, err := h.uc.UpdateNotificationSettings(c.Request().Context(), middleware.CurrentUserID(c), &usecase.UpdateNotificationSettingsInput{
		EnableEmailNotification:   *req.EnableEmailNotification,
		EnableOrderNotification:   *req.EnableOrderNotification,
		EnableGeneralNotification: *req.EnableGeneralNotification,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, notificationSettingsJSON{
		EnableEmailNotification:   setting.EnableEmailNotification,
		EnableOrderNotification:   setting.EnableOrderNotification,
		EnableGeneralNotification: setting.EnableGeneralNotification,
	})
}
