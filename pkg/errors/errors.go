// Package errors provides coded errors for csvexport.
//
// Every fatal condition of an export run carries a stable ErrorCode so that
// callers and tests can branch on the cause without matching message text.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCanceled     ErrorCode = "CANCELED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Table source errors
	ErrSourceNotFound  ErrorCode = "SOURCE_NOT_FOUND"
	ErrSourceRead      ErrorCode = "SOURCE_READ"
	ErrNoHeaders       ErrorCode = "NO_HEADERS"
	ErrDuplicateHeader ErrorCode = "DUPLICATE_HEADER"
	ErrColumnNotFound  ErrorCode = "COLUMN_NOT_FOUND"
	ErrMalformedRow    ErrorCode = "MALFORMED_ROW"

	// Template errors
	ErrTemplateLoad  ErrorCode = "TEMPLATE_LOAD"
	ErrTemplateWrite ErrorCode = "TEMPLATE_WRITE"

	// FileSystem errors
	ErrDirCreate   ErrorCode = "DIR_CREATE"
	ErrDirNotFound ErrorCode = "DIR_NOT_FOUND"
	ErrFileWrite   ErrorCode = "FILE_WRITE"
	ErrFileExists  ErrorCode = "FILE_EXISTS"
)

// ExportError represents a structured error with code and details
type ExportError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ExportError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ExportError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an ExportError with the same code.
func (e *ExportError) Is(target error) bool {
	var targetErr *ExportError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ExportError with the given code and message
func New(code ErrorCode, message string) *ExportError {
	return &ExportError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ExportError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ExportError {
	return &ExportError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ExportError
func Wrap(err error, code ErrorCode, message string) *ExportError {
	if err == nil {
		return nil
	}
	return &ExportError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ExportError {
	if err == nil {
		return nil
	}
	return &ExportError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ExportError) WithDetail(key string, value interface{}) *ExportError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ExportError) WithDetails(details map[string]interface{}) *ExportError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var exportErr *ExportError
	if errors.As(err, &exportErr) {
		return exportErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ExportError
func GetErrorCode(err error) ErrorCode {
	var exportErr *ExportError
	if errors.As(err, &exportErr) {
		return exportErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an ExportError
func GetErrorDetails(err error) map[string]interface{} {
	var exportErr *ExportError
	if errors.As(err, &exportErr) {
		return exportErr.Details
	}
	return nil
}

// Describe renders the message of err followed by its details in key order,
// one "key: value" pair per line. It is meant for the human-readable
// diagnostic stream.
func Describe(err error) string {
	var exportErr *ExportError
	if !errors.As(err, &exportErr) {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(exportErr.Message)
	if exportErr.Wrapped != nil {
		b.WriteString(": ")
		b.WriteString(exportErr.Wrapped.Error())
	}

	keys := make([]string, 0, len(exportErr.Details))
	for k := range exportErr.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := exportErr.Details[k]
		if list, ok := v.([]string); ok {
			v = strings.Join(list, ", ")
		}
		fmt.Fprintf(&b, "\n  %s: %v", k, v)
	}
	return b.String()
}
