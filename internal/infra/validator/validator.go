// Package validator checks usecase inputs against the schemas declared in their struct tags.
package validator

import (
	"reflect"
	"strings"

	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/errors"
	"addressbook/internal/infra/identity"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator. It satisfies both service.InputValidator
// and echo.Validator, so the same schemas serve the usecases and the HTTP layer.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON name and knows the cuid rule.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	// The tag is static, registration can only fail on programmer error.
	if err := v.RegisterValidation("cuid", isCUID); err != nil {
		panic(err)
	}

	return &Validator{validate: v}
}

// Validate returns nil or a *domainerrors.ValidationError listing every failing field.
func (v *Validator) Validate(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate input")
	}

	fields := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

func isCUID(fl validator.FieldLevel) bool {
	return identity.IsCUID(fl.Field().String())
}

// fieldName reports the JSON name of a field, falling back to its query or param name.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "query", "param"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return fld.Name
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isNumeric(fe.Kind()) {
			return "must be greater than or equal to " + fe.Param()
		}

		return "must contain at least " + fe.Param() + " character(s)"
	case "max":
		if isNumeric(fe.Kind()) {
			return "must be less than or equal to " + fe.Param()
		}

		return "must contain at most " + fe.Param() + " character(s)"
	case "email":
		return "must be a valid email"
	case "cuid":
		return "must be a valid cuid"
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
