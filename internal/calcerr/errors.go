// Package calcerr provides the structured error type shared by the beam
// solvers and the diagram renderers.
package calcerr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for consistent handling and display.
type Kind string

const (
	// KindInvalidGeometry indicates a non-positive length or section dimension.
	KindInvalidGeometry Kind = "INVALID_GEOMETRY"

	// KindInvalidInput indicates a load, steel area, bar diameter or cover
	// outside its allowed range.
	KindInvalidInput Kind = "INVALID_INPUT"

	// KindIOFailure indicates the output target could not be created or written.
	KindIOFailure Kind = "IO_FAILURE"
)

// Sentinels for errors.Is checks. Matching is by Kind only.
var (
	ErrInvalidGeometry = &Error{Kind: KindInvalidGeometry}
	ErrInvalidInput    = &Error{Kind: KindInvalidInput}
	ErrIOFailure       = &Error{Kind: KindIOFailure}
)

// Error is a calculation or rendering failure with enough context to tell
// the user which operation and which parameter caused it.
type Error struct {
	Kind Kind

	// Op is the operation that failed (e.g. "bmd_sfd", "steel_layout").
	Op string

	// Param names the offending input parameter, if any.
	Param string
	Value float64

	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// WithOp returns a copy of e attributed to op. An existing Op is kept.
func (e *Error) WithOp(op string) *Error {
	c := *e
	if c.Op == "" {
		c.Op = op
	}
	return &c
}

// InvalidGeometry reports a geometry parameter that must be a finite
// positive number.
func InvalidGeometry(param string, value float64) *Error {
	return &Error{
		Kind:    KindInvalidGeometry,
		Param:   param,
		Value:   value,
		Message: fmt.Sprintf("%s must be positive and finite, got %g", param, value),
	}
}

// InvalidInput reports an out-of-range load or reinforcement parameter.
func InvalidInput(param string, value float64, rule string) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Param:   param,
		Value:   value,
		Message: fmt.Sprintf("%s %s, got %g", param, rule, value),
	}
}

// IOFailure wraps a filesystem error for path.
func IOFailure(op, path string, cause error) *Error {
	return &Error{
		Kind:    KindIOFailure,
		Op:      op,
		Message: fmt.Sprintf("cannot write %q", path),
		Cause:   cause,
	}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Attribute tags err with op when it is an *Error without one; other errors
// are returned unchanged.
func Attribute(op string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.WithOp(op)
	}
	return err
}
