package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vinmart/internal/domain/entity"
	"vinmart/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	sessionUserID int64
	sessionErr    error
	otpUserID     int64
	otpErr        error
}

func (s *stubTokenService) GenerateSessionToken(int64) (string, error) { return "session-token", nil }
func (s *stubTokenService) GenerateOTPToken(int64) (string, error)     { return "otp-token", nil }

func (s *stubTokenService) ValidateSessionToken(string) (int64, error) {
	return s.sessionUserID, s.sessionErr
}

func (s *stubTokenService) ValidateOTPToken(string) (int64, error) {
	return s.otpUserID, s.otpErr
}

// stubTxManager hands the callback a factory backed by a single canned user.
type stubTxManager struct {
	user *entity.User
	err  error
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&stubRepoFactory{user: m.user, err: m.err})
}

type stubRepoFactory struct {
	repository.RepositoryFactory
	user *entity.User
	err  error
}

func (f *stubRepoFactory) UserRepo() repository.UserRepository {
	return &stubUserRepo{user: f.user, err: f.err}
}

type stubUserRepo struct {
	repository.UserRepository
	user *entity.User
	err  error
}

func (r *stubUserRepo) FindByID(context.Context, int64) (*entity.User, error) {
	return r.user, r.err
}

func nextRecorder(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func requestWithAuth(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthenticateSession_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{}, &stubTxManager{})
	c, rec := requestWithAuth(t, "")

	var called bool
	err := m.AuthenticateSession(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestAuthenticateSession_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{}, &stubTxManager{})
	c, rec := requestWithAuth(t, "Basic dXNlcjpwYXNz")

	var called bool
	err := m.AuthenticateSession(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateSession_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{sessionErr: assert.AnError}, &stubTxManager{})
	c, rec := requestWithAuth(t, "Bearer bad-token")

	var called bool
	err := m.AuthenticateSession(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestAuthenticateSession_PreActiveAccount(t *testing.T) {
	user := &entity.User{ID: 1, Status: entity.UserStatusPreActive}
	m := NewAuthMiddleware(&stubTokenService{sessionUserID: 1}, &stubTxManager{user: user})
	c, rec := requestWithAuth(t, "Bearer token")

	var called bool
	err := m.AuthenticateSession(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateSession_Success(t *testing.T) {
	user := &entity.User{ID: 42, Status: entity.UserStatusActive}
	m := NewAuthMiddleware(&stubTokenService{sessionUserID: 42}, &stubTxManager{user: user})
	c, _ := requestWithAuth(t, "Bearer token")

	var called bool
	err := m.AuthenticateSession(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, int64(42), CurrentUserID(c))
}

func TestAuthenticateOTP_RejectsActivatedAccount(t *testing.T) {
	user := &entity.User{ID: 1, Status: entity.UserStatusActive}
	m := NewAuthMiddleware(&stubTokenService{otpUserID: 1}, &stubTxManager{user: user})
	c, rec := requestWithAuth(t, "Bearer otp-token")

	var called bool
	err := m.AuthenticateOTP(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateOTP_PassesPreActiveAccount(t *testing.T) {
	user := &entity.User{ID: 1, Status: entity.UserStatusPreActive}
	m := NewAuthMiddleware(&stubTokenService{otpUserID: 1}, &stubTxManager{user: user})
	c, _ := requestWithAuth(t, "Bearer otp-token")

	var called bool
	err := m.AuthenticateOTP(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRequireOwnership_MismatchedUserID(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{}, &stubTxManager{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("2")
	c.Set("userID", int64(1))

	var called bool
	err := m.RequireOwnership(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"errors":[{"value":"2","msg":"You do not have sufficient permission to access this endpoint","param":"userId","location":"params"}]}`,
		rec.Body.String())
}

func TestRequireOwnership_MatchingUserID(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{}, &stubTxManager{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("1")
	c.Set("userID", int64(1))

	var called bool
	err := m.RequireOwnership(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRequireOwnership_WithoutAuthentication(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{}, &stubTxManager{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("1")

	var called bool
	err := m.RequireOwnership(nextRecorder(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
