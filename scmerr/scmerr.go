// Package scmerr defines the three failure kinds the interpreter's layers
// raise: SyntaxError from the tokenizer and reader, NameError and
// RuntimeError from the evaluator.
package scmerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind distinguishes the three named failure kinds a caller of the core
// can observe.
type Kind int

const (
	// Syntax marks a tokenizer or reader failure: an unrecognized
	// character, unexpected end of input, or a malformed list.
	Syntax Kind = iota
	// Name marks an operator-position symbol that is not in the builtin
	// table.
	Name
	// Runtime marks an arity or type mismatch, an out-of-range access,
	// or another malformed-structure failure raised during evaluation.
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax-error"
	case Name:
		return "name-error"
	case Runtime:
		return "runtime-error"
	default:
		return "error"
	}
}

// Error is the concrete error type every layer of the core returns.
type Error struct {
	Kind  Kind
	Msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Syntaxf builds a SyntaxError with a formatted message.
func Syntaxf(format string, args ...interface{}) error {
	return &Error{Kind: Syntax, Msg: fmt.Sprintf(format, args...)}
}

// Namef builds a NameError with a formatted message.
func Namef(format string, args ...interface{}) error {
	return &Error{Kind: Name, Msg: fmt.Sprintf(format, args...)}
}

// Runtimef builds a RuntimeError with a formatted message.
func Runtimef(format string, args ...interface{}) error {
	return &Error{Kind: Runtime, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a lower-level cause to an Error of the given kind, preserving the
// original error for errors.Unwrap/errors.As while keeping the surfaced
// message domain-specific.
func Wrap(cause error, kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg, cause: errors.WithStack(cause)}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// IsSyntax reports whether err is a SyntaxError.
func IsSyntax(err error) bool { return Is(err, Syntax) }

// IsName reports whether err is a NameError.
func IsName(err error) bool { return Is(err, Name) }

// IsRuntime reports whether err is a RuntimeError.
func IsRuntime(err error) bool { return Is(err, Runtime) }
