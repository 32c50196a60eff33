// Package errors provides centralized error definitions and error handling utilities
// for taskmemo. It defines sentinel errors, semantic error types, error constructors
// with context wrapping, and error classification helpers.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - ConfigError: errors related to loading or validating configuration
//
// Semantic errors represent common error conditions:
//   - ValidationError: invalid user input or state
//
// # Usage
//
//	err := errors.NewValidationError("Task must be more than 5 characters!").
//		WithField("task").
//		WithCause(errors.ErrTaskTooShort)
//
//	if errors.Is(err, errors.ErrTaskTooShort) { ... }
//
//	var vErr *errors.ValidationError
//	if errors.As(err, &vErr) {
//		showAlert(vErr.UserMessage())
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Todo-related sentinel errors
var (
	// ErrTaskTooShort indicates that submitted task text is too short once trimmed.
	ErrTaskTooShort = New("task too short")
)

// Config-related sentinel errors
var (
	// ErrThemeNotFound indicates that a theme name is not registered.
	ErrThemeNotFound = New("theme not found")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// AppError is the base interface for all taskmemo errors.
type AppError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain Errors
// -----------------------------------------------------------------------------

// ConfigError represents a failure while loading or validating configuration.
type ConfigError struct {
	baseError
	Key  string
	Path string
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
	}
}

// WithKey adds the offending config key.
func (e *ConfigError) WithKey(key string) *ConfigError {
	e.Key = key
	return e
}

// WithPath adds the config file path.
func (e *ConfigError) WithPath(path string) *ConfigError {
	e.Path = path
	return e
}

// Error returns the formatted error message.
func (e *ConfigError) Error() string {
	var parts []string
	if e.Key != "" {
		parts = append(parts, fmt.Sprintf("key=%s", e.Key))
	}
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}

	prefix := "config error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("config error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ConfigError) Is(target error) bool {
	if _, ok := target.(*ConfigError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("Task must be more than 5 characters!")
//	err = err.WithField("task").WithValue("short")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError. The message is the text
// shown to the user.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// UserMessage returns the bare message, without field or cause decoration.
func (e *ValidationError) UserMessage() string {
	return e.message
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%q", fmt.Sprint(e.Value)))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var appErr AppError
	if As(err, &appErr) {
		return appErr.IsUserFacing()
	}

	return false
}

// UserMessage returns the text to show a user for err. Validation errors
// yield their bare message; other user-facing errors yield Error(); anything
// else yields a generic message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var validation *ValidationError
	if As(err, &validation) {
		return validation.UserMessage()
	}
	if IsUserFacing(err) {
		return err.Error()
	}
	return "An internal error occurred"
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement AppError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var appErr AppError
	if As(err, &appErr) {
		return appErr.Severity()
	}

	return SeverityError
}
