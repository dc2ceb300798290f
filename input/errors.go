package input

import (
	"errors"
	"fmt"
)

var (
	// ErrInputIO indicates the input could not be opened or read.
	ErrInputIO = errors.New("input: i/o error")

	// ErrMalformed indicates a line that does not match the expected format.
	ErrMalformed = errors.New("input: malformed")
)

// MalformedError reports a parse failure at a 1-based input line.
type MalformedError struct {
	Line   int
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("input: line %d: %s", e.Line, e.Reason)
}

// Unwrap lets errors.Is(err, ErrMalformed) match.
func (e *MalformedError) Unwrap() error { return ErrMalformed }

// Malformed builds a *MalformedError with a formatted reason.
func Malformed(line int, format string, args ...interface{}) error {
	return &MalformedError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
