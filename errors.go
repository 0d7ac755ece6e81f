package tilespec

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned for a line that does not split into a
	// code field and a name, or whose code field is badly formed
	ErrMalformedLine = errors.New("malformed line")

	// ErrInvalidCode is returned when the tile code is not a base-16 byte
	ErrInvalidCode = errors.New("invalid tile code")

	// ErrEmptyName is returned when the name field is empty
	ErrEmptyName = errors.New("empty tile name")

	// ErrOrderingViolation is returned when D is not the first extra
	ErrOrderingViolation = errors.New("extra out of order")

	// ErrUnaccountedExtra is returned when the extras don't map one to one
	// onto flags
	ErrUnaccountedExtra = errors.New("unaccounted extra")

	// ErrDuplicateCode is returned when a tile code is declared twice
	ErrDuplicateCode = errors.New("duplicate tile code")
)

// RecordError describes a failure to compile a single line of the table.
// Use errors.Is against the Err* variables to find out what went wrong.
type RecordError struct {
	Line    int
	Code    byte
	HasCode bool
	Text    string
	Err     error
}

func (e *RecordError) Error() string {
	if e.HasCode {
		return fmt.Sprintf("tilespec: line %d: code 0x%02x: %v: %q", e.Line, e.Code, e.Err, e.Text)
	}
	return fmt.Sprintf("tilespec: line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func lineError(line int, text string, err error) error {
	return &RecordError{Line: line, Text: text, Err: err}
}

func recordError(r Record, err error) error {
	return &RecordError{Line: r.Line, Code: r.Code, HasCode: true, Text: r.Text, Err: err}
}
