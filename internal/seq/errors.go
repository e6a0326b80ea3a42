package seq

import (
	"errors"
	"fmt"
)

// Error represents a failure detected by a sequence operator.
//
// Operator errors include:
//   - No element: First, Last or Single found no candidate
//   - Multiple match: Single or SingleOrDefault found more than one candidate
//   - Index out of range: ElementAt position outside [0, length)
//   - Invalid argument: Range or Repeat called with a negative count
//
// Source failures are never wrapped in Error; they are returned as produced.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op names the operator that failed (e.g., "Single").
	Op string

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes operator errors.
type ErrorCode string

const (
	// ErrCodeNoElement indicates the candidate set was empty.
	ErrCodeNoElement ErrorCode = "NO_ELEMENT"

	// ErrCodeMultipleMatch indicates more than one candidate matched.
	ErrCodeMultipleMatch ErrorCode = "MULTIPLE_MATCH"

	// ErrCodeIndexOutOfRange indicates a position outside the sequence.
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"

	// ErrCodeInvalidArgument indicates an argument outside its domain.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target is an *Error with the same Code.
// This lets callers match with errors.Is(err, &seq.Error{Code: ...}).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// CodeOf returns the operator error code carried by err, or "" if err is not
// an operator error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsNoElement returns true if err is a no-element error.
func IsNoElement(err error) bool {
	return CodeOf(err) == ErrCodeNoElement
}

// IsMultipleMatch returns true if err is a multiple-match error.
func IsMultipleMatch(err error) bool {
	return CodeOf(err) == ErrCodeMultipleMatch
}

// IsIndexOutOfRange returns true if err is an index-out-of-range error.
func IsIndexOutOfRange(err error) bool {
	return CodeOf(err) == ErrCodeIndexOutOfRange
}

// IsInvalidArgument returns true if err is an invalid-argument error.
func IsInvalidArgument(err error) bool {
	return CodeOf(err) == ErrCodeInvalidArgument
}

func newNoElementError(op string) *Error {
	return &Error{
		Code:    ErrCodeNoElement,
		Op:      op,
		Message: "sequence contains no matching element",
	}
}

func newMultipleMatchError(op string) *Error {
	return &Error{
		Code:    ErrCodeMultipleMatch,
		Op:      op,
		Message: "sequence contains more than one matching element",
	}
}

func newIndexOutOfRangeError(op string, index int) *Error {
	return &Error{
		Code:    ErrCodeIndexOutOfRange,
		Op:      op,
		Message: fmt.Sprintf("index %d is outside the sequence", index),
	}
}

func newInvalidArgumentError(op, message string) *Error {
	return &Error{
		Code:    ErrCodeInvalidArgument,
		Op:      op,
		Message: message,
	}
}
