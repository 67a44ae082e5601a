// Package errors is the single error import for the service: stdlib
// matching plus pkg/errors wrapping, so stack traces survive to the logs.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error with no stack.
func New(text string) error {
	return stderrors.New(text)
}

// Errorf formats an error and records the stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap adds message and a stack to err. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the stack on err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
