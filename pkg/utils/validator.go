package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the validator tags declared on request DTOs.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidationFieldError is one per-field entry surfaced in a 400 response.
type ValidationFieldError struct {
	Field string `json:"field"`
	Tag   string `json:"rule"`
	Value string `json:"param,omitempty"`
}

// GetValidationErrors flattens a validator error into per-field details.
func GetValidationErrors(err error) []ValidationFieldError {
	var details []ValidationFieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return details
	}

	for _, fieldErr := range validationErrors {
		details = append(details, ValidationFieldError{
			Field: fieldErr.Field(),
			Tag:   fieldErr.Tag(),
			Value: fieldErr.Param(),
		})
	}

	return details
}
