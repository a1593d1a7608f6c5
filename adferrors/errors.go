// Package adferrors defines the typed error kinds shared by every package in
// this module, so that a caller can distinguish a bad argument from a
// degenerate input from a numerical breakdown without string-matching
// error messages.
package adferrors

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// InvalidArgument marks an out-of-range enumeration, a bad shape, or
	// any other caller-supplied value that is invalid on its face.
	InvalidArgument Kind = iota
	// DegenerateInput marks input that is well-formed but numerically
	// unusable for the requested operation (a constant series, a
	// rank-deficient design matrix neither inversion nor pseudoinversion
	// can stabilize, an empty series).
	DegenerateInput
	// NumericalFailure marks a NaN or Inf surfacing in an intermediate or
	// final result, preventing further computation.
	NumericalFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case DegenerateInput:
		return "degenerate input"
	case NumericalFailure:
		return "numerical failure"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by this module. It always names
// the operation and the offending parameter and value, so a caller never has
// to go digging for what failed.
type Error struct {
	Kind  Kind
	Op    string // e.g. "lagmat.Build"
	Param string // offending parameter name
	Value any    // offending value
	Err   error  // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s %s=%v: %v", e.Op, e.Kind, e.Param, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %s %s=%v", e.Op, e.Kind, e.Param, e.Value)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs an *Error with no wrapped cause.
func New(kind Kind, op, param string, value any) *Error {
	return &Error{Kind: kind, Op: op, Param: param, Value: value}
}

// Wrap constructs an *Error wrapping an underlying cause.
func Wrap(kind Kind, op, param string, value any, cause error) *Error {
	return &Error{Kind: kind, Op: op, Param: param, Value: value, Err: cause}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
