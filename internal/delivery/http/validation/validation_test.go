package validation

import (
	"net/http"
	"testing"

	"vinmart/config"
	domainerrors "vinmart/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) []domainerrors.FieldError {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())

	return appErr.Fields()
}

func strPtr(s string) *string { return &s }

func TestValidator_PassesWhenAllFieldsValid(t *testing.T) {
	v := New()
	v.Body("email", strPtr("user@example.com")).Required().Email()
	v.Body("phone", strPtr("+84919473533")).Required().Phone()
	v.Query("limit", "10").Int()

	assert.NoError(t, v.Err())
}

func TestValidator_MissingFieldCarriesNoValue(t *testing.T) {
	v := New()
	v.Body("email", (*string)(nil)).Required().Email()

	fields := fieldsOf(t, v.Err())
	require.Len(t, fields, 1)
	assert.Equal(t, domainerrors.FieldError{
		Msg:      domainerrors.MsgInvalidValue,
		Param:    "email",
		Location: domainerrors.LocationBody,
	}, fields[0])
}

func TestValidator_InvalidFieldEchoesValue(t *testing.T) {
	v := New()
	v.Body("email", strPtr("not-an-email")).Required().Email()

	fields := fieldsOf(t, v.Err())
	require.Len(t, fields, 1)
	assert.Equal(t, "not-an-email", fields[0].Value)
	assert.Equal(t, domainerrors.MsgInvalidValue, fields[0].Msg)
}

func TestValidator_ReportsFieldsInDeclarationOrder(t *testing.T) {
	v := New()
	v.Body("email", strPtr("bad")).Required().Email()
	v.Body("password", (*string)(nil)).Required()
	v.Body("phone", strPtr("letters")).Required().Phone()

	fields := fieldsOf(t, v.Err())
	require.Len(t, fields, 3)
	assert.Equal(t, "email", fields[0].Param)
	assert.Equal(t, "password", fields[1].Param)
	assert.Equal(t, "phone", fields[2].Param)
}

func TestValidator_FirstFailureWinsPerField(t *testing.T) {
	v := New()
	v.Body("otp", (*string)(nil)).Required().NumericLen(6)

	fields := fieldsOf(t, v.Err())
	// One entry, from Required; NumericLen never runs on a missing field.
	require.Len(t, fields, 1)
	assert.Nil(t, fields[0].Value)
}

func TestValidator_OptionalAbsentFieldsSkipped(t *testing.T) {
	v := New()
	v.Query("categoryId", "").Int()
	v.Query("page", "").Int()

	assert.NoError(t, v.Err())
}

func TestValidator_OptionalPresentFieldsStillChecked(t *testing.T) {
	v := New()
	v.Query("categoryId", "abc").Int()

	fields := fieldsOf(t, v.Err())
	require.Len(t, fields, 1)
	assert.Equal(t, "abc", fields[0].Value)
	assert.Equal(t, domainerrors.LocationQuery, fields[0].Location)
}

func TestValidator_NumericLen(t *testing.T) {
	cases := map[string]bool{
		"123456":  true,
		"12345":   false,
		"1234567": false,
		"12345a":  false,
		"":        false,
	}
	for input, ok := range cases {
		v := New()
		v.Body("otp", strPtr(input)).Required().NumericLen(6)
		if ok {
			assert.NoError(t, v.Err(), "input %q", input)
		} else {
			assert.Error(t, v.Err(), "input %q", input)
		}
	}
}

func TestValidator_StrongPassword(t *testing.T) {
	cfg := &config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        64,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}

	cases := map[string]bool{
		"Example123!@#":    true,
		"An0ther$Pass":     true,
		"Ab1!":             false, // too short
		"alllowercase123!": false, // no uppercase
		"ALLUPPERCASE123!": false, // no lowercase
		"NoNumbersHere!!":  false,
		"NoSpecial1234":    false,
	}
	for password, ok := range cases {
		v := New()
		v.Body("password", strPtr(password)).Required().StrongPassword(cfg)
		if ok {
			assert.NoError(t, v.Err(), "password %q", password)
		} else {
			assert.Error(t, v.Err(), "password %q", password)
		}
	}
}

func TestValidator_Message(t *testing.T) {
	v := New()
	v.Body("otp", strPtr("12x")).Required().NumericLen(6).Message("custom message")

	fields := fieldsOf(t, v.Err())
	require.Len(t, fields, 1)
	assert.Equal(t, "custom message", fields[0].Msg)
}

func TestValidator_ParamLocation(t *testing.T) {
	v := New()
	v.Param("productId", "abc").Required().Int()

	fields := fieldsOf(t, v.Err())
	require.Len(t, fields, 1)
	assert.Equal(t, domainerrors.LocationParams, fields[0].Location)
	assert.Equal(t, "productId", fields[0].Param)
	assert.Equal(t, "abc", fields[0].Value)
}

func TestValidator_NumericBounds(t *testing.T) {
	v := New()
	v.Body("quantity", intPtr(0)).Required().Int().Min(1)
	assert.Error(t, v.Err())

	v = New()
	v.Body("quantity", intPtr(3)).Required().Int().Min(1)
	assert.NoError(t, v.Err())
}

func intPtr(n int) *int { return &n }
