package config

import (
	"fmt"
	"net"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "ipv4_cidr":
		return "must be an IPv4 CIDR block a.b.c.d/len with len in 0-32"
	case "ipv4_or_empty":
		return "must be an IPv4 address a.b.c.d or empty"
	case "hostport_or_empty":
		return "must be in format 'host:port' or empty"
	case "source_name":
		return "must start with a lowercase letter and consist only of [a-z0-9_-]"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // For sources: the name of the source (e.g., "static", "kernel")
	FieldPath string // Dot-notation field path (e.g., "general.api_bind_address", "route.0.prefix")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("ipv4_cidr", validateIPv4CIDR); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("ipv4_or_empty", validateIPv4OrEmpty); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("hostport_or_empty", validateHostPortOrEmpty); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("source_name", validateSourceName); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: IPv4 CIDR block, host bits allowed (they are cleared on load)
func validateIPv4CIDR(fl validator.FieldLevel) bool {
	_, err := ipv4.ParsePrefix(fl.Field().String())
	return err == nil
}

// Custom validator: IPv4 address or empty
func validateIPv4OrEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := ipv4.ParseAddress(value)
	return err == nil
}

// Custom validator: host:port format or empty
func validateHostPortOrEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, port, err := net.SplitHostPort(value)
	return err == nil && port != ""
}

// Custom validator: source name format
func validateSourceName(fl validator.FieldLevel) bool {
	return sourceNameRegexp.MatchString(fl.Field().String())
}
