package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.General != nil {
		if err := validate.Struct(c.General); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
		}
	}

	if len(c.Sources) == 0 {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "source",
			Message:   "configuration must contain at least one source",
		})
	} else {
		validationErrors = append(validationErrors, c.validateSources()...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateSources() ValidationErrors {
	var validationErrors ValidationErrors
	seenNames := make(map[string]bool)

	for i, src := range c.Sources {
		itemName := src.SourceName
		if itemName == "" {
			itemName = fmt.Sprintf("source[%d]", i)
		}

		// Validate struct fields
		if err := validate.Struct(src); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("source.%d", i), itemName)...)
		}

		// Check duplicate source name
		if seenNames[src.SourceName] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "source_name",
				Message:   fmt.Sprintf("duplicate source name: %s", src.SourceName),
			})
		}
		seenNames[src.SourceName] = true

		// Validate that exactly one kind is specified
		isFile := src.File != ""
		isKernel := src.KernelTable != 0
		isInline := len(src.Routes) > 0

		if !isFile && !isKernel && !isInline {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "source",
				Message:   "must specify one of: file, kernel_table, or route",
			})
		}

		if (isFile && (isKernel || isInline)) || (isKernel && isInline) {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "source",
				Message:   "can only specify one of: file, kernel_table, or route",
			})
		}

		// Validate file exists if specified
		if isFile {
			path, _ := src.GetAbsolutePath(c)
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  itemName,
					FieldPath: "file",
					Message:   fmt.Sprintf("file does not exist: %s", path),
				})
			}
		}

		// Validate inline routes
		for j, route := range src.Routes {
			if route == nil {
				continue
			}
			if err := validate.Struct(route); err != nil {
				validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("route.%d", j), itemName)...)
			}
		}
	}

	return validationErrors
}

// ValidateRoute checks one route entry outside of a config file (route files, API input).
func ValidateRoute(route *RouteConfig) error {
	if route == nil {
		return ValidationErrors{{FieldPath: "route", Message: "route entry is empty"}}
	}
	if err := validate.Struct(route); err != nil {
		return convertValidatorErrors(err, "", route.Prefix)
	}
	return nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
