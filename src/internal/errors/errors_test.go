package errors

import (
	"errors"
	"testing"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeConfig, Message: "invalid configuration"},
			expected: "[CONFIG_ERROR] invalid configuration",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeRoute, "failed to load source static", errors.New("permission denied")),
			expected: "[ROUTE_ERROR] failed to load source static: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeConfig, Message: "test error"}
	err2 := &Error{Code: ErrCodeConfig, Message: "another error"}
	err3 := &Error{Code: ErrCodeResolve, Message: "resolve error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestFromParse(t *testing.T) {
	if FromParse("x", nil) != nil {
		t.Error("Expected nil for nil error")
	}

	_, parseErr := ipv4.ParseAddress("256.0.0.0")
	err := FromParse("256.0.0.0", parseErr)

	if !HasCode(err, ErrCodeFormat) {
		t.Errorf("Expected FORMAT_ERROR, got %v", err)
	}

	var fe *ipv4.FormatError
	if !errors.As(err, &fe) || fe.Input != "256.0.0.0" {
		t.Errorf("Expected wrapped *ipv4.FormatError, got %v", err)
	}

	other := FromParse("x", errors.New("boom"))
	if !HasCode(other, ErrCodeInternal) {
		t.Errorf("Expected INTERNAL_ERROR, got %v", other)
	}
}

func TestNewRouteError(t *testing.T) {
	cause := errors.New("file not found")
	err := NewRouteError("failed to load routes", cause)

	if err.Code != ErrCodeRoute {
		t.Errorf("Expected code %v, got %v", ErrCodeRoute, err.Code)
	}

	if err.Message != "failed to load routes" {
		t.Errorf("Expected message 'failed to load routes', got %v", err.Message)
	}

	if err.Cause != cause {
		t.Errorf("Expected cause to be preserved")
	}
}
