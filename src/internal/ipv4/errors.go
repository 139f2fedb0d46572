package ipv4

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every *FormatError via errors.Is.
var ErrFormat = errors.New("invalid IPv4 format")

const (
	expectAddress = "a.b.c.d with each octet in 0-255"
	expectPrefix  = "a.b.c.d/len with len in 0-32"
	expectEither  = "a.b.c.d or a.b.c.d/len"
)

// FormatError reports malformed or out-of-range textual input.
type FormatError struct {
	Input    string // original input, unmodified
	Expected string // human-readable expected format
	Err      error  // underlying reason, may be nil
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid input %q (expected %s): %v", e.Input, e.Expected, e.Err)
	}
	return fmt.Sprintf("invalid input %q (expected %s)", e.Input, e.Expected)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFormat) true for any format error.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatErr(input, expected, reason string, args ...any) *FormatError {
	return &FormatError{
		Input:    input,
		Expected: expected,
		Err:      fmt.Errorf(reason, args...),
	}
}
