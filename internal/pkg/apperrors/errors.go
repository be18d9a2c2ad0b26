package apperrors

import (
	"errors"
	"strings"
)

// Error kinds. Every failure returned by the gateways, repositories and
// services wraps exactly one of these, so callers can branch with errors.Is
// instead of inspecting message text.
var (
	// Store errors
	ErrConnection = errors.New("store connection failed")
	ErrQuery      = errors.New("store operation failed")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrDuplicateKey     = errors.New("resource already exists")

	// Integrity errors
	ErrIntegrityViolation = errors.New("integrity violation")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Student errors
var (
	ErrStudentNotFound = NewResourceNotFoundError("student not found")
)

// Lecturer errors
var (
	ErrLecturerNotFound      = NewResourceNotFoundError("lecturer not found")
	ErrLecturerTeachesModule = NewIntegrityViolationError("lecturer teaches modules")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Cause   error
}

// Error implements error interface
func (e *CustomError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the error kind and the underlying cause.
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// Is reports a match for another *CustomError of the same kind and message,
// which lets the package-level errors above be used as targets.
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	if !ok {
		return false
	}
	return t.Err == e.Err && t.Message == e.Message
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithCause attaches the original failure for logging.
func (e *CustomError) WithCause(cause error) *CustomError {
	e.Cause = cause
	return e
}

// NewConnectionError creates an error for a store that could not be reached.
func NewConnectionError(message string, cause error) error {
	return NewCustomError(ErrConnection, message).WithCause(cause)
}

// NewQueryError creates an error for a single failed store operation.
func NewQueryError(message string, cause error) error {
	return NewCustomError(ErrQuery, message).WithCause(cause)
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return NewCustomError(ErrResourceNotFound, message)
}

// NewDuplicateKeyError creates an error for a uniqueness conflict.
func NewDuplicateKeyError(message string) error {
	return NewCustomError(ErrDuplicateKey, message)
}

// NewIntegrityViolationError creates an error for a blocked cross-store mutation.
func NewIntegrityViolationError(message string) error {
	return NewCustomError(ErrIntegrityViolation, message)
}

// ValidationError carries every field-level violation of a rejected mutation.
type ValidationError struct {
	Violations []string
}

// NewValidationError creates a ValidationError from user-facing messages.
func NewValidationError(violations ...string) error {
	return &ValidationError{Violations: violations}
}

// Error implements error interface
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Violations, "; ")
}

// Unwrap implements errors.Unwrap interface
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Violations returns the violation messages of err, or nil when err is not
// a validation failure.
func Violations(err error) []string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Violations
	}
	return nil
}

// Message returns the user-facing message of err without the attached cause.
func Message(err error) string {
	var cErr *CustomError
	if errors.As(err, &cErr) && cErr.Message != "" {
		return cErr.Message
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) && len(vErr.Violations) > 0 {
		return vErr.Violations[0]
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
