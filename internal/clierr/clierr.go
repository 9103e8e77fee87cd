// Package clierr defines structured error types for CLI commands.
// Errors carry a machine-readable code, a human-readable message,
// optional details, and the underlying cause when there is one.
package clierr

import (
	"errors"
	"fmt"
)

// Error code constants. Codes are stable across minor versions.
const (
	IOError         = "IO_ERROR"
	DecodeError     = "DECODE_ERROR"
	InvalidDay      = "INVALID_DAY"
	InvalidWeekday  = "INVALID_WEEKDAY"
	InvalidDate     = "INVALID_DATE"
	MissingVariant  = "MISSING_VARIANT"
	IndexOutOfRange = "INDEX_OUT_OF_RANGE"
	EmptyList       = "EMPTY_LIST"
	WrongVariant    = "WRONG_VARIANT"
	InvalidInput    = "INVALID_INPUT"
	InvalidConfig   = "INVALID_CONFIG"
	ConfirmationReq = "CONFIRMATION_REQUIRED"
	InternalError   = "INTERNAL_ERROR"
)

// Error represents a structured CLI error with a machine-readable code.
type Error struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error whose message is "msg: cause" and which unwraps to cause.
func Wrap(code string, err error, msg string) *Error {
	return &Error{Code: code, Message: msg + ": " + err.Error(), Err: err}
}

// WithDetails returns the error with the given details map attached.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// ExitCode returns 2 for I/O, decode and internal errors, 1 for all others.
func (e *Error) ExitCode() int {
	switch e.Code {
	case InternalError, IOError, DecodeError:
		return 2 //nolint:mnd // exit code 2 for fatal errors
	default:
		return 1
	}
}

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) string {
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ""
}

// HasCode reports whether err's chain contains an *Error with the given code.
func HasCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}
