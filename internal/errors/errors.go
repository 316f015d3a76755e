// Package errors provides coded application errors for the rotation builder.
package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates an internal system error
	CodeInternal Code = "internal"

	// CodeInvalidSpec indicates an unknown class/spec combination
	CodeInvalidSpec Code = "invalid_spec"

	// CodeUnknownSpell indicates a spell name that is not in the catalog for the class/spec
	CodeUnknownSpell Code = "unknown_spell"

	// CodeInvalidCondition indicates a condition string that failed validation
	CodeInvalidCondition Code = "invalid_condition"

	// CodeParseFailure indicates a format importer could not parse its input
	CodeParseFailure Code = "parse_failure"

	// CodeFormatUnsupported indicates a codec format that is not registered
	CodeFormatUnsupported Code = "format_unsupported"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// InvalidSpecf creates a formatted invalid class/spec error
func InvalidSpecf(format string, args ...any) *Error {
	return Newf(CodeInvalidSpec, format, args...)
}

// UnknownSpellf creates a formatted unknown spell error
func UnknownSpellf(format string, args ...any) *Error {
	return Newf(CodeUnknownSpell, format, args...)
}

// InvalidCondition creates an invalid condition error carrying the
// validator's reason
func InvalidCondition(message, reason string) *Error {
	return New(CodeInvalidCondition, message).WithMeta("reason", reason)
}

// ParseFailure creates a parse failure error for a named format
func ParseFailure(format, message string) *Error {
	return New(CodeParseFailure, message).WithMeta("format", format)
}

// ParseFailureWrap wraps an underlying parse error, tagging the format name
func ParseFailureWrap(err error, format, message string) *Error {
	wrapped := WrapWithCode(err, CodeParseFailure, message)
	if wrapped == nil {
		return nil
	}
	return wrapped.WithMeta("format", format)
}

// FormatUnsupportedf creates a formatted unsupported format error
func FormatUnsupportedf(format string, args ...any) *Error {
	return Newf(CodeFormatUnsupported, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsInvalidSpec checks if the error is an invalid class/spec error
func IsInvalidSpec(err error) bool {
	return Is(err, CodeInvalidSpec)
}

// IsUnknownSpell checks if the error is an unknown spell error
func IsUnknownSpell(err error) bool {
	return Is(err, CodeUnknownSpell)
}

// IsInvalidCondition checks if the error is an invalid condition error
func IsInvalidCondition(err error) bool {
	return Is(err, CodeInvalidCondition)
}

// IsParseFailure checks if the error is a parse failure
func IsParseFailure(err error) bool {
	return Is(err, CodeParseFailure)
}

// IsFormatUnsupported checks if the error is an unsupported format error
func IsFormatUnsupported(err error) bool {
	return Is(err, CodeFormatUnsupported)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
