package handler

import (
	"log/slog"
	"net/http"

	"vinmart/config"
	"vinmart/internal/delivery/http/middleware"
	"vinmart/internal/delivery/http/response"
	"vinmart/internal/delivery/http/validation"
	"vinmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

type signUpRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Phone    *string `json:"phone"`
}

// SignUp registers a new account and answers 201 with the created profile and
// the OTP token used by the activation endpoints.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	bindBody(c, &req)

	v := validation.New()
	v.Body("email", req.Email).Required().Email()
	v.Body("password", req.Password).Required().StrongPassword(h.cfg.PasswordStrength)
	v.Body("phone", req.Phone).Required().Phone()
	if err := v.Err(); err != nil {
		return err
	}

	output, err := h.uc.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Email:    *req.Email,
		Password: *req.Password,
		Phone:    *req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, output)
}

type signInRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// SignIn exchanges credentials for a session token.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	bindBody(c, &req)

	v := validation.New()
	v.Body("email", req.Email).Required().Email()
	v.Body("password", req.Password).Required()
	if err := v.Err(); err != nil {
		return err
	}

	output, err := h.uc.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    *req.Email,
		Password: *req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

type activateAccountRequest struct {
	OTP *string `json:"otp"`
}

// ActivateAccount verifies the submitted 6-digit code for the account carried
// by the OTP token.
func (h *AuthHandler) ActivateAccount(c echo.Context) error {
	var req activateAccountRequest
	bindBody(c, &req)

	v := validation.New()
	v.Body("otp", req.OTP).Required().NumericLen(6)
	if err := v.Err(); err != nil {
		return err
	}

	err := h.uc.ActivateAccount(c.Request().Context(), middleware.CurrentUserID(c), *req.OTP)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Empty(c, http.StatusOK)
}

// ResendActivateOTP issues and emails a fresh activation code for the account
// carried by the OTP token.
func (h *AuthHandler) ResendActivateOTP(c echo.Context) error {
	err := h.uc.ResendActivateOTP(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Empty(c, http.StatusOK)
}
