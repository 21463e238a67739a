// Package errors provides structured error handling for the Slate toolkit.
package errors

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindOutOfRange indicates an index outside the valid range of a collection.
	KindOutOfRange
	// KindUnsupportedReset indicates a bulk reset notification that cannot be
	// applied to derived child trees.
	KindUnsupportedReset
	// KindConfig indicates malformed configuration input.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindOutOfRange:
		return "out of range"
	case KindUnsupportedReset:
		return "unsupported reset"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Slate toolkit.
type Error struct {
	// Op is the operation that failed (e.g., "collections.Insert").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// OutOfRange constructs an index error for the given operation.
// The valid index range is expressed as [0, length).
func OutOfRange(op string, index, length int) *Error {
	return &Error{
		Op:   op,
		Kind: KindOutOfRange,
		Err:  fmt.Errorf("index %d out of range [0, %d)", index, length),
	}
}

// UnsupportedReset constructs the fatal error raised when a reset
// notification reaches a container. Resets carry no item detail, so the
// derived trees cannot be reconciled with the source collection.
func UnsupportedReset(op string) *Error {
	return &Error{
		Op:   op,
		Kind: KindUnsupportedReset,
		Err:  fmt.Errorf("reset notifications are not supported; remove items explicitly"),
	}
}

// Config constructs a configuration error for the given operation.
func Config(op string, err error) *Error {
	return &Error{Op: op, Kind: KindConfig, Err: err}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
