package errors

import (
	"net/http"
	"strconv"
)

// Validation builds a 400 with the given field entries.
func Validation(fields ...FieldError) *FieldErrors {
	return NewFieldErrors(http.StatusBadRequest, fields...)
}

// Conflict builds a 409 for a duplicate value.
func Conflict(field FieldError) *FieldErrors {
	return NewFieldErrors(http.StatusConflict, field)
}

// NotFoundItem builds the uniform 404 for a stale path id. The envelope echoes
// the id back as the raw path-parameter string.
func NotFoundItem(param string, value any) *FieldErrors {
	if id, ok := value.(int64); ok {
		value = strconv.FormatInt(id, 10)
	}

	return NewFieldErrors(http.StatusNotFound, ParamField(value, MsgItemNotExist, param))
}

// NotFound builds a 404 with a custom field entry.
func NotFound(field FieldError) *FieldErrors {
	return NewFieldErrors(http.StatusNotFound, field)
}

// Common builds the generic 400 "common" error used by the sign-in and
// activation flows.
func Common(msg string) *FieldErrors {
	return NewFieldErrors(http.StatusBadRequest, CommonField(msg))
}

// StockExceeded builds the out-of-stock result. It intentionally carries
// status 200: existing clients expect OK with an embedded error array here.
func StockExceeded(param string, value any) *FieldErrors {
	return NewFieldErrors(http.StatusOK, BodyField(value, MsgOutOfStock, param))
}
