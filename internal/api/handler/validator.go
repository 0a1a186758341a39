package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/thingful/thingful-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Field names in messages come from the json tag, matching the wire format.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Only the first violation
// is reported, in struct field order.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return domain.NewValidationError(fieldError(ve[0]))
	}
	return err
}

// fieldError converts a single ValidationError into the contractual message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing '%s' in request body", field)
	case "min":
		return fmt.Sprintf("'%s' must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("'%s' must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("'%s' failed validation (%s)", field, fe.Tag())
	}
}
