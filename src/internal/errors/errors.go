// Package errors provides domain-specific error types for the keen-lpm application.
//
// Errors carry a code so callers and tests can match a failure category with
// errors.Is without comparing message text.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
)

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeFormat indicates malformed address or prefix text.
	ErrCodeFormat ErrorCode = "FORMAT_ERROR"

	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeRoute indicates a route source could not be loaded.
	ErrCodeRoute ErrorCode = "ROUTE_ERROR"

	// ErrCodeResolve indicates a hostname could not be resolved.
	ErrCodeResolve ErrorCode = "RESOLVE_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// HasCode reports whether any error in err's chain is an *Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	return stderrors.Is(err, &Error{Code: code})
}

// NewFormatError wraps a parse failure. Errors from the ipv4 package keep
// their *ipv4.FormatError reachable through errors.As.
func NewFormatError(message string, cause error) *Error {
	return Wrap(ErrCodeFormat, message, cause)
}

// FromParse classifies err: ipv4 format errors become FORMAT_ERROR, anything
// else is internal. A nil err returns nil.
func FromParse(input string, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, ipv4.ErrFormat) {
		return NewFormatError(fmt.Sprintf("cannot parse %q", input), err)
	}
	return NewInternalError(fmt.Sprintf("unexpected failure parsing %q", input), err)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewRouteError creates a new route source error.
func NewRouteError(message string, cause error) *Error {
	return Wrap(ErrCodeRoute, message, cause)
}

// NewResolveError creates a new name resolution error.
func NewResolveError(message string, cause error) *Error {
	return Wrap(ErrCodeResolve, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
