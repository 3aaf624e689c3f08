// Package coreerrors defines the error taxonomy shared by the interpreter
// and planner. Every error the core surfaces to a caller carries one of
// the kinds below; there is no retry and no fallback plan, so the kind is
// the only thing a caller needs to decide what to do next.
package coreerrors

import (
	"errors"
	"fmt"
)

// Kind tags a CoreError with which class of failure produced it.
type Kind string

const (
	// NoInterpretation means no parse produced a non-empty DNF formula.
	NoInterpretation Kind = "no_interpretation"
	// IllegalReference means a structural reference rule was violated,
	// e.g. a relative clause attached to the floor.
	IllegalReference Kind = "illegal_reference"
	// NoPlan means the search driver returned no path to any goal node.
	NoPlan Kind = "no_plan"
	// SearchTimeout means the wall-clock budget expired before a goal
	// node was found.
	SearchTimeout Kind = "search_timeout"
)

// CoreError is the concrete error type returned across the interpreter/
// planner boundary. Callers that care about the failure class should use
// errors.As to recover one, then inspect Kind.
type CoreError struct {
	K       Kind
	Message string
	Cause   error
}

func (e *CoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.K, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.K, e.Message)
}

func (e *CoreError) Unwrap() error { return e.Cause }

// Kind reports the error class.
func (e *CoreError) Kind() Kind { return e.K }

// New builds a CoreError with no wrapped cause.
func New(k Kind, format string, args ...interface{}) *CoreError {
	return &CoreError{K: k, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a CoreError that wraps an existing error.
func Wrap(k Kind, cause error, format string, args ...interface{}) *CoreError {
	return &CoreError{K: k, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err is a CoreError of the given kind.
func Is(err error, k Kind) bool {
	var ce *CoreError
	if errors.As(err, &ce) {
		return ce.K == k
	}
	return false
}
