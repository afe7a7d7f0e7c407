package serrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Base is a coded error shared across modules. Code is stable and
// machine-readable, Message is what ends up in front of the user.
type Base struct {
	Code    string
	Message string
	Details string
}

func (e *Base) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code, message, details string) *Base {
	return &Base{Code: code, Message: message, Details: details}
}

// WithDetails returns a copy of the error with per-occurrence details attached.
func (e *Base) WithDetails(details string) *Base {
	return &Base{Code: e.Code, Message: e.Message, Details: details}
}

// Is matches by code, so a detailed copy still matches its sentinel.
func (e *Base) Is(target error) bool {
	t, ok := target.(*Base)
	return ok && t.Code == e.Code
}

// ValidationErrors maps struct field names to user-facing messages.
type ValidationErrors map[string]string

// ProcessValidatorErrors flattens go-playground validator errors into
// per-field messages. fieldLabel maps a struct field name to its display
// label; an empty label falls back to the field name itself.
func ProcessValidatorErrors(errs validator.ValidationErrors, fieldLabel func(field string) string) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, fe := range errs {
		label := ""
		if fieldLabel != nil {
			label = fieldLabel(fe.Field())
		}
		if label == "" {
			label = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = fmt.Sprintf("%s is required", label)
		case "max":
			out[fe.Field()] = fmt.Sprintf("%s is too long", label)
		case "e164":
			out[fe.Field()] = fmt.Sprintf("%s must be a valid phone number", label)
		default:
			out[fe.Field()] = fmt.Sprintf("%s is invalid", label)
		}
	}
	return out
}
