package config

import (
	"errors"
	"net"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	sections := []struct {
		name  string
		value interface{}
	}{
		{"general", c.General},
		{"lists", c.Lists},
		{"gravity", c.Gravity},
		{"ftl", c.FTL},
		{"api", c.API},
	}
	for _, s := range sections {
		if err := validate.Struct(s.value); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, s.name)...)
		}
	}

	if c.FTL.Network == "tcp" {
		if _, _, err := net.SplitHostPort(c.FTL.Address); err != nil {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "ftl.address",
				Message:   "must be in format 'host:port' for the tcp network",
			})
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}
	return nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				fieldPath = fieldPrefix + "." + e.Field()
			}
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
