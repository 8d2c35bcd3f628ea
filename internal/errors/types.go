// Package errors classifies failures raised at the model boundary.
// The codec performs no I/O, so there are exactly two kinds: a wire
// value that cannot be decoded, and a locally built value that is
// missing or violating a required field.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind discriminates boundary failures.
type Kind int

const (
	// DecodeFailure means a wire value's shape, type, or enum tag did
	// not match the model contract.
	DecodeFailure Kind = iota

	// ConstructionFailure means a locally built value failed its
	// required-field or range checks before ever touching the wire.
	ConstructionFailure
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case DecodeFailure:
		return "decode"
	case ConstructionFailure:
		return "construction"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error carries the failing model and field alongside the cause so
// callers can report exactly which part of which record was rejected.
type Error struct {
	Kind   Kind
	Model  string // model name, e.g. "HealthStatus"
	Field  string // wire field name, empty when the whole document is bad
	Reason error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s %s: field %q: %v", e.Kind, e.Model, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Model, e.Reason)
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Reason }

// NewDecode builds a decode-failure error for model.field.
func NewDecode(model, field string, reason error) *Error {
	return &Error{Kind: DecodeFailure, Model: model, Field: field, Reason: reason}
}

// NewConstruction builds a construction-failure error for model.field.
func NewConstruction(model, field string, reason error) *Error {
	return &Error{Kind: ConstructionFailure, Model: model, Field: field, Reason: reason}
}

// IsDecode reports whether err is (or wraps) a decode failure.
func IsDecode(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == DecodeFailure
}

// IsConstruction reports whether err is (or wraps) a construction failure.
func IsConstruction(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == ConstructionFailure
}

// AsError extracts the typed boundary error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := stderrors.As(err, &e)
	return e, ok
}
