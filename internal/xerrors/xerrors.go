// Package xerrors defines the error taxonomy shared by every package in
// this module: a small closed set of Kinds, and an Error type that
// wraps github.com/juju/errors for annotation and cause-chain
// ergonomics while staying compatible with the standard errors package
// via Unwrap.
package xerrors

import (
	"errors"
	"fmt"

	jujuerrors "github.com/juju/errors"
)

// Kind classifies an Error into one of the four abstract categories
// this module's components report.
type Kind int

const (
	// InvalidInput marks malformed caller input that was rejected before
	// any parsing or validation was attempted (nil readers, empty
	// required fields).
	InvalidInput Kind = iota
	// SyntaxError marks a failure to tokenize or parse SQL text.
	SyntaxError
	// SemanticError marks text that parsed but failed schema validation
	// or type inference.
	SemanticError
	// ArgumentError marks a function call with the wrong arity or
	// argument types for its category.
	ArgumentError
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case SyntaxError:
		return "SyntaxError"
	case SemanticError:
		return "SemanticError"
	case ArgumentError:
		return "ArgumentError"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every exported operation in this
// module that can fail. It carries a Kind for programmatic dispatch and
// wraps a juju/errors cause for annotation and stack-trace context.
type Error struct {
	Kind  Kind
	cause error
}

// New builds an Error of the given Kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, cause: jujuerrors.Errorf(format, args...)}
}

// Wrap annotates an existing error with kind and a message, preserving
// it as the cause for Unwrap/Is/As.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, cause: jujuerrors.Annotatef(cause, format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.cause)
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As from the
// standard library work across this boundary.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether err is an *Error of the same Kind as e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the Kind of err if it is (or wraps) an *Error, and ok.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return InvalidInput, false
}
