// Package errors augments the standard errors
// with Wrap() and Detailf() methods to derive errors from
// package-level sentinels without losing their identity.
package errors

import (
	stderr "errors"
	"fmt"
)

var _ error = New("")

// New Error
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error augments the standard error interface with a Wrap method.
//
// Errors derived from a sentinel with Wrap or Detailf are new values:
// the sentinel itself is never mutated, and errors.Is(derived, sentinel) holds.
type Error struct {
	msg    string
	detail string
	err    error
	kind   *Error
}

// Error message
func (e *Error) Error() string {
	msg := e.msg
	if e.detail != "" {
		msg += ": " + e.detail
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

// Unwrap nested error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap a nested error
func (e *Error) Wrap(err error) *Error {
	d := e.derive()
	d.err = err
	return d
}

// Detailf adds some contextual detail to the error message
func (e *Error) Detailf(format string, args ...interface{}) *Error {
	d := e.derive()
	d.detail = fmt.Sprintf(format, args...)
	return d
}

// Is of some error type?
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e == t || e.root() == t
}

func (e *Error) root() *Error {
	if e.kind != nil {
		return e.kind
	}
	return e
}

func (e *Error) derive() *Error {
	return &Error{
		msg:    e.msg,
		detail: e.detail,
		err:    e.err,
		kind:   e.root(),
	}
}

// As finds the first error in err's chain that matches target, and if so, sets target to that error value and returns true.
// (a shortcut to standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
