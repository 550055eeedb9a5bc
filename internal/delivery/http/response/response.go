// Package response renders the API's wire format: plain JSON payloads on
// success and the {"errors":[...]} envelope on failure.
package response

import (
	"github.com/labstack/echo/v4"

	domainerrors "vinmart/internal/domain/errors"
)

// ErrorEnvelope is the uniform error body.
type ErrorEnvelope struct {
	Errors []domainerrors.FieldError `json:"errors"`
}

// JSON writes a success payload as-is.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Errors writes the error envelope with the given entries.
func Errors(c echo.Context, statusCode int, fields ...domainerrors.FieldError) error {
	if fields == nil {
		fields = []domainerrors.FieldError{}
	}

	return c.JSON(statusCode, ErrorEnvelope{Errors: fields})
}

// Msg writes the flat {"msg": ...} body used for failures outside the
// field-error envelope: framework errors and uncaught 500s.
func Msg(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, map[string]string{"msg": msg})
}

// Empty writes an empty JSON object, used for auth failures and bare 404s
// where the status code is the whole answer.
func Empty(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, map[string]any{})
}
