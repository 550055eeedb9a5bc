// Package errors defines the application error model. Every expected business
// failure is expressed as a FieldErrors value carrying the HTTP status and an
// ordered list of field entries, so the HTTP layer can render the uniform
// {"errors":[{value,msg,param,location}]} envelope without inspecting causes.
package errors

import (
	"strings"

	"vinmart/internal/errors"
)

// Field locations, matching where the offending value came from.
const (
	LocationBody   = "body"
	LocationQuery  = "query"
	LocationParams = "params"
)

// User-visible messages. These are part of the wire contract and must not be
// reworded.
const (
	MsgInvalidValue            = "Invalid value"
	MsgEmailRegistered         = "Email already registered"
	MsgPhoneRegistered         = "Phone Number already registered"
	MsgNameRegistered          = "Name already registered"
	MsgSignInFailed            = "Something went wrong during the authentication process. Please try signing in again."
	MsgAccountNotActive        = "This Vinmart account is not active."
	MsgInvalidCode             = "Invalid code please try agains."
	MsgNoPermission            = "You do not have sufficient permission to access this endpoint"
	MsgCategoryNotExist        = "Category does not exist"
	MsgProductUnitNotExist     = "Product Unit does not exist"
	MsgProductNotExist         = "Product does not exist"
	MsgProductSelected         = "Product already selected"
	MsgOutOfStock              = "Product is out of stock"
	MsgItemNotExist            = "Item does not exist. It may have been deleted"
	MsgPaymentTypeNotExist     = "This payment type is does not exist"
	MsgCurrentPasswordWrong    = "Current password is incorrect"
	MsgPasswordSameAsCurrent   = "New password cannot be same as current password"
	MsgConfirmPasswordMismatch = "Confirm password should be same as new password"
)

// FieldError is one entry of the error envelope. Value and Location are
// omitted when empty so "common" errors serialize as {param,msg} only.
type FieldError struct {
	Value    any    `json:"value,omitempty"`
	Msg      string `json:"msg"`
	Param    string `json:"param,omitempty"`
	Location string `json:"location,omitempty"`
}

// BodyField builds a FieldError for a request-body field.
func BodyField(value any, msg, param string) FieldError {
	return FieldError{Value: value, Msg: msg, Param: param, Location: LocationBody}
}

// QueryField builds a FieldError for a query-string field.
func QueryField(value any, msg, param string) FieldError {
	return FieldError{Value: value, Msg: msg, Param: param, Location: LocationQuery}
}

// ParamField builds a FieldError for a path parameter.
func ParamField(value any, msg, param string) FieldError {
	return FieldError{Value: value, Msg: msg, Param: param, Location: LocationParams}
}

// CommonField builds the generic error used when no single field is to blame,
// e.g. failed sign-in.
func CommonField(msg string) FieldError {
	return FieldError{Msg: msg, Param: "common"}
}

// AppError is implemented by errors that know how to render themselves over HTTP.
type AppError interface {
	error
	HTTPCode() int
	Fields() []FieldError
}

// FieldErrors is the concrete AppError used throughout the services.
type FieldErrors struct {
	httpCode int
	fields   []FieldError
}

// NewFieldErrors creates a FieldErrors with the given status and entries.
func NewFieldErrors(httpCode int, fields ...FieldError) *FieldErrors {
	return &FieldErrors{httpCode: httpCode, fields: fields}
}

// Error implements the error interface.
func (e *FieldErrors) Error() string {
	msgs := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		msgs = append(msgs, f.Msg)
	}

	return strings.Join(msgs, "; ")
}

// HTTPCode returns the status the envelope is written with. Note this can be
// 200: the cart stock check deliberately answers OK with an embedded error
// array for compatibility with existing clients.
func (e *FieldErrors) HTTPCode() int {
	return e.httpCode
}

// Fields returns the ordered error entries.
func (e *FieldErrors) Fields() []FieldError {
	return e.fields
}

// Append adds entries, preserving declaration order.
func (e *FieldErrors) Append(fields ...FieldError) *FieldErrors {
	e.fields = append(e.fields, fields...)

	return e
}

// HasFields reports whether any entry was collected.
func (e *FieldErrors) HasFields() bool {
	return len(e.fields) > 0
}

// WrapMessage wraps the error with additional context for logs. The HTTP layer
// unwraps back to the FieldErrors via errors.As.
func (e *FieldErrors) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}
