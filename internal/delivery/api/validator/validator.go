// Package validator plugs go-playground/validator into echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate checks the struct tags of i and returns ErrValidationFailed listing the failing fields.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fieldErr.Field()+" is required")
		case "gt", "gte", "min":
			messages = append(messages, fieldErr.Field()+" must be at least "+fieldErr.Param())
		case "max", "lte":
			messages = append(messages, fieldErr.Field()+" must be at most "+fieldErr.Param())
		default:
			messages = append(messages, fieldErr.Field()+" is invalid")
		}
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}
