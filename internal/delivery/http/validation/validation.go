// Package validation builds the ordered, field-by-field request validation
// used by the HTTP handlers. Each failed field produces one entry in the
// {"errors":[...]} envelope with the generic "Invalid value" message, in the
// order the fields were declared.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode"

	"vinmart/config"
	domainerrors "vinmart/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// phonePattern accepts international numbers with an optional leading plus.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// validate is shared; validator.Validate is safe for concurrent use.
var validate = validator.New()

// Validator collects field rules and evaluates them in declaration order.
type Validator struct {
	fields []*Field
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// Field is one value under validation. Checks chain; after the first failure
// the remaining checks on the field are skipped.
type Field struct {
	param    string
	location string
	value    any
	present  bool
	err      *domainerrors.FieldError
}

// Body declares a field bound from the request body. Pass a nil pointer (or
// nil) for a field the client omitted.
func (v *Validator) Body(param string, value any) *Field {
	return v.add(param, domainerrors.LocationBody, value)
}

// Query declares a field bound from the query string. The empty string counts
// as absent.
func (v *Validator) Query(param, value string) *Field {
	if value == "" {
		return v.add(param, domainerrors.LocationQuery, nil)
	}

	return v.add(param, domainerrors.LocationQuery, value)
}

// Param declares a path parameter.
func (v *Validator) Param(param, value string) *Field {
	if value == "" {
		return v.add(param, domainerrors.LocationParams, nil)
	}

	return v.add(param, domainerrors.LocationParams, value)
}

func (v *Validator) add(param, location string, value any) *Field {
	field := &Field{
		param:    param,
		location: location,
		value:    deref(value),
		present:  !isAbsent(value),
	}
	v.fields = append(v.fields, field)

	return field
}

// Err returns a 400 FieldErrors carrying one entry per failed field, or nil
// when everything passed.
func (v *Validator) Err() error {
	verr := domainerrors.Validation()
	for _, field := range v.fields {
		if field.err != nil {
			verr.Append(*field.err)
		}
	}
	if verr.HasFields() {
		return verr
	}

	return nil
}

// Required fails when the field is absent or an empty string. The envelope
// entry for a missing field carries no value.
func (f *Field) Required() *Field {
	if f.err != nil {
		return f
	}
	if !f.present || f.value == "" {
		f.fail()
	}

	return f
}

// Email validates the value as an email address.
func (f *Field) Email() *Field {
	return f.check(func(s string) bool {
		return validate.Var(s, "email") == nil
	})
}

// Phone validates the value as an international phone number.
func (f *Field) Phone() *Field {
	return f.check(func(s string) bool {
		return phonePattern.MatchString(s)
	})
}

// StrongPassword enforces the configured password strength policy.
func (f *Field) StrongPassword(cfg *config.PasswordStrengthConfig) *Field {
	return f.check(func(s string) bool {
		return passwordOK(s, cfg)
	})
}

// Int validates the value as an integer.
func (f *Field) Int() *Field {
	return f.check(func(s string) bool {
		_, err := strconv.ParseInt(s, 10, 64)

		return err == nil
	})
}

// Float validates the value as a number.
func (f *Field) Float() *Field {
	return f.check(func(s string) bool {
		_, err := strconv.ParseFloat(s, 64)

		return err == nil
	})
}

// Min fails when the numeric value is below the bound.
func (f *Field) Min(bound float64) *Field {
	return f.check(func(s string) bool {
		n, err := strconv.ParseFloat(s, 64)

		return err == nil && n >= bound
	})
}

// Max fails when the numeric value is above the bound.
func (f *Field) Max(bound float64) *Field {
	return f.check(func(s string) bool {
		n, err := strconv.ParseFloat(s, 64)

		return err == nil && n <= bound
	})
}

// NumericLen fails unless the value is exactly length digits, the shape of
// the emailed activation codes.
func (f *Field) NumericLen(length int) *Field {
	return f.check(func(s string) bool {
		if len(s) != length {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}

		return true
	})
}

// In fails unless the value is one of the allowed literals.
func (f *Field) In(allowed ...string) *Field {
	return f.check(func(s string) bool {
		for _, a := range allowed {
			if s == a {
				return true
			}
		}

		return false
	})
}

// Message replaces the generic message on the field's recorded failure. It
// must come after the check it annotates.
func (f *Field) Message(msg string) *Field {
	if f.err != nil {
		f.err.Msg = msg
	}

	return f
}

// check runs one predicate against the field's string form. Absent fields are
// skipped so optional values only fail when supplied and malformed.
func (f *Field) check(ok func(s string) bool) *Field {
	if f.err != nil || !f.present {
		return f
	}
	if !ok(asString(f.value)) {
		f.fail()
	}

	return f
}

func (f *Field) fail() {
	entry := domainerrors.FieldError{
		Msg:      domainerrors.MsgInvalidValue,
		Param:    f.param,
		Location: f.location,
	}
	if f.present {
		entry.Value = f.value
	}
	f.err = &entry
}

func passwordOK(s string, cfg *config.PasswordStrengthConfig) bool {
	if cfg == nil {
		return len(s) >= 8
	}
	if cfg.MinLength > 0 && len(s) < cfg.MinLength {
		return false
	}
	if cfg.MaxLength > 0 && len(s) > cfg.MaxLength {
		return false
	}

	var upper, lower, number, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			number = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	if cfg.RequireUppercase && !upper {
		return false
	}
	if cfg.RequireLowercase && !lower {
		return false
	}
	if cfg.RequireNumbers && !number {
		return false
	}
	if cfg.RequireSpecial && !special {
		return false
	}

	return true
}

// isAbsent reports whether the declared value represents a field the client
// never sent: nil itself or a typed nil pointer.
func isAbsent(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case *string:
		return v == nil
	case *int:
		return v == nil
	case *int64:
		return v == nil
	case *float64:
		return v == nil
	case *bool:
		return v == nil
	}

	return false
}

// deref unwraps the supported pointer types so envelope values render as the
// submitted literal.
func deref(value any) any {
	switch v := value.(type) {
	case *string:
		if v == nil {
			return nil
		}

		return *v
	case *int:
		if v == nil {
			return nil
		}

		return *v
	case *int64:
		if v == nil {
			return nil
		}

		return *v
	case *float64:
		if v == nil {
			return nil
		}

		return *v
	case *bool:
		if v == nil {
			return nil
		}

		return *v
	}

	return value
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}

	return fmt.Sprintf("%v", value)
}
