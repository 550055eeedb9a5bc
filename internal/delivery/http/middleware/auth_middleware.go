package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"vinmart/internal/delivery/http/response"
	"vinmart/internal/domain/entity"
	domainerrors "vinmart/internal/domain/errors"
	"vinmart/internal/domain/repository"
	"vinmart/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// userIDKey is the echo.Context key the authenticated account id is stored under.
const userIDKey = "userID"

// AuthMiddleware provides middleware for JWT authentication and the
// path-ownership check. Authentication failures always answer 401 with an
// empty body; the status code is the whole answer.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	txManager repository.TransactionManager
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, txManager repository.TransactionManager) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, txManager: txManager}
}

// AuthenticateSession validates a session-audience Bearer token and requires
// the account to be ACTIVE. OTP tokens never pass here.
func (m *AuthMiddleware) AuthenticateSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return m.authenticate(c, next, m.tokenSvc.ValidateSessionToken, func(user *entity.User) bool {
			return user.IsActive()
		})
	}
}

// AuthenticateOTP validates an OTP-audience Bearer token, the short-lived
// credential handed out at sign-up. Only not-yet-activated accounts pass,
// so an already-active account cannot replay the activation endpoints.
func (m *AuthMiddleware) AuthenticateOTP(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return m.authenticate(c, next, m.tokenSvc.ValidateOTPToken, func(user *entity.User) bool {
			return !user.IsActive()
		})
	}
}

func (m *AuthMiddleware) authenticate(
	c echo.Context,
	next echo.HandlerFunc,
	validate func(token string) (int64, error),
	statusOK func(user *entity.User) bool,
) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return response.Empty(c, http.StatusUnauthorized)
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return response.Empty(c, http.StatusUnauthorized)
	}

	userID, err := validate(tokenString)
	if err != nil {
		return response.Empty(c, http.StatusUnauthorized)
	}

	// The token alone is not enough: the account must still exist and be in
	// the status the audience expects.
	var user *entity.User
	err = m.txManager.Execute(c.Request().Context(), func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(c.Request().Context(), userID)
		if err != nil {
			return err
		}
		user = found

		return nil
	})
	if err != nil || !statusOK(user) {
		return response.Empty(c, http.StatusUnauthorized)
	}

	c.Set(userIDKey, userID)

	return next(c)
}

// RequireOwnership compares the :userId path parameter against the
// authenticated account. It must be used AFTER one of the Authenticate
// middlewares.
func (m *AuthMiddleware) RequireOwnership(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		pathUserID := c.Param("userId")

		authenticatedID, ok := c.Get(userIDKey).(int64)
		if !ok {
			return response.Empty(c, http.StatusUnauthorized)
		}

		parsed, err := strconv.ParseInt(pathUserID, 10, 64)
		if err != nil || parsed != authenticatedID {
			return response.Errors(c, http.StatusBadRequest,
				domainerrors.ParamField(pathUserID, domainerrors.MsgNoPermission, "userId"))
		}

		return next(c)
	}
}

// CurrentUserID returns the authenticated account id stored by the
// Authenticate middlewares.
func CurrentUserID(c echo.Context) int64 {
	id, _ := c.Get(userIDKey).(int64)

	return id
}
