package middleware

import (
	"log/slog"
	"net/http"

	"vinmart/internal/delivery/http/response"
	domainerrors "vinmart/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError renders errors as Echo's HTTPErrorHandler. Business errors
// carry their status and field entries; a FieldErrors without entries renders
// as an empty object, which is how the bare 404 and auth failures answer.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		fields := appErr.Fields()
		if len(fields) == 0 {
			_ = response.Empty(c, appErr.HTTPCode())

			return
		}

		_ = response.Errors(c, appErr.HTTPCode(), fields...)

		return
	}

	// Echo's own errors (unknown route, oversized body, ...) answer the flat
	// {"msg": ...} body, not the field envelope.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			msg = s
		}
		_ = response.Msg(c, httpErr.Code, msg)

		return
	}

	// Anything else is a bug or an infrastructure failure: log it and echo the
	// cause as {"msg": ...}, the shape existing clients parse for 500s.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.Msg(c, http.StatusInternalServerError, err.Error())
}
