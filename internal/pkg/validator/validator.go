package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/aura-guide/locais-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate runs struct validation and maps failures onto the shared
// INVALID_REQUEST error with per-field details.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		details := make(map[string]interface{}, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
		}
		return errors.ErrInvalidRequest.WithDetails(details)
	}

	return errors.ErrInvalidRequest
}

// GetValidator exposes the underlying validator for custom configuration.
func GetValidator() *validator.Validate {
	return validate
}
