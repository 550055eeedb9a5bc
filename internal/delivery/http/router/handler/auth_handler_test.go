package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"vinmart/config"
	"vinmart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	signUpFn   func(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error)
	signInFn   func(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error)
	activateFn func(ctx context.Context, userID int64, otp string) error
	resendFn   func(ctx context.Context, userID int64) error
}

func (s *stubAuthUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	return s.signUpFn(ctx, input)
}

func (s *stubAuthUsecase) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	return s.signInFn(ctx, input)
}

func (s *stubAuthUsecase) ActivateAccount(ctx context.Context, userID int64, otp string) error {
	return s.activateFn(ctx, userID, otp)
}

func (s *stubAuthUsecase) ResendActivateOTP(ctx context.Context, userID int64) error {
	return s.resendFn(ctx, userID)
}

func testAuthConfig() *config.Config {
	return &config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        32,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
}

func TestAuthHandler_SignUp_EmptyBodyReportsEveryField(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(&stubAuthUsecase{}, testAuthConfig(), newDiscardLogger())
	e.POST("/api/v1/authentication/sign-up", h.SignUp)

	rec := serveJSON(e, http.MethodPost, "/api/v1/authentication/sign-up", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []map[string]any `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 3)
	assert.Equal(t, "email", body.Errors[0]["param"])
	assert.Equal(t, "password", body.Errors[1]["param"])
	assert.Equal(t, "phone", body.Errors[2]["param"])
	// Missing fields carry no echoed value.
	_, hasValue := body.Errors[0]["value"]
	assert.False(t, hasValue)
}

func TestAuthHandler_SignUp_InvalidEmailEchoesValue(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(&stubAuthUsecase{}, testAuthConfig(), newDiscardLogger())
	e.POST("/api/v1/authentication/sign-up", h.SignUp)

	rec := serveJSON(e, http.MethodPost, "/api/v1/authentication/sign-up",
		`{"email":"not-an-email","password":"Example123!@#","phone":"+84919473533"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"errors":[{"value":"not-an-email","msg":"Invalid value","param":"email","location":"body"}]}`,
		rec.Body.String())
}

func TestAuthHandler_SignUp_WeakPassword(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(&stubAuthUsecase{}, testAuthConfig(), newDiscardLogger())
	e.POST("/api/v1/authentication/sign-up", h.SignUp)

	rec := serveJSON(e, http.MethodPost, "/api/v1/authentication/sign-up",
		`{"email":"a@b.com","password":"weak","phone":"+84919473533"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"errors":[{"value":"weak","msg":"Invalid value","param":"password","location":"body"}]}`,
		rec.Body.String())
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	uc := &stubAuthUsecase{
		signUpFn: func(_ context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
			return &usecase.SignUpOutput{
				ID:     1,
				Email:  input.Email,
				Name:   "Vinmart's User",
				Phone:  input.Phone,
				Status: "PRE_ACTIVE",
				Token:  "otp-token",
			}, nil
		},
	}

	e := newTestEcho(t)
	h := NewAuthHandler(uc, testAuthConfig(), newDiscardLogger())
	e.POST("/api/v1/authentication/sign-up", h.SignUp)

	rec := serveJSON(e, http.MethodPost, "/api/v1/authentication/sign-up",
		`{"email":"a@b.com","password":"Example123!@#","phone":"+84919473533"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"email":"a@b.com","name":"Vinmart's User","phone":"+84919473533","status":"PRE_ACTIVE","token":"otp-token"}`,
		rec.Body.String())
}

func TestAuthHandler_SignIn_Success(t *testing.T) {
	uc := &stubAuthUsecase{
		signInFn: func(context.Context, *usecase.SignInInput) (*usecase.SignInOutput, error) {
			return &usecase.SignInOutput{Token: "session-token"}, nil
		},
	}

	e := newTestEcho(t)
	h := NewAuthHandler(uc, testAuthConfig(), newDiscardLogger())
	e.POST("/api/v1/authentication/sign-in", h.SignIn)

	rec := serveJSON(e, http.MethodPost, "/api/v1/authentication/sign-in",
		`{"email":"a@b.com","password":"Example123!@#"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"session-token"}`, rec.Body.String())
}

func TestAuthHandler_ActivateAccount_RejectsShortCode(t *testing.T) {
	e := newTestEcho(t)
	h := NewAuthHandler(&stubAuthUsecase{}, testAuthConfig(), newDiscardLogger())
	e.POST("/api/v1/authentication/activate-account", h.ActivateAccount)

	rec := serveJSON(e, http.MethodPost, "/api/v1/authentication/activate-account", `{"otp":"123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"errors":[{"value":"123","msg":"Invalid value","param":"otp","location":"body"}]}`,
		rec.Body.String())
}

func TestAuthHandler_ActivateAccount_Success(t *testing.T) {
	var gotOTP string
	uc := &stubAuthUsecase{
		activateFn: func(_ context.Context, _ int64, otp string) error {
			gotOTP = otp

			return nil
		},
	}

	e := newTestEcho(t)
	h := NewAuthHandler(uc, testAuthConfig(), newDiscardLogger())
	e.POST("/api/v1/authentication/activate-account", h.ActivateAccount)

	rec := serveJSON(e, http.MethodPost, "/api/v1/authentication/activate-account", `{"otp":"123456"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
	assert.Equal(t, "123456", gotOTP)
}
