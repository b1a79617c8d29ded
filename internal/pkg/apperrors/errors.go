package apperrors

import "errors"

// Common errors
var (
	// ErrResourceNotFound marks lookups that matched no row.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrValidationFailed marks rejected request parameters.
	ErrValidationFailed = errors.New("validation failed")
)

// Contractor errors
var (
	// ErrContractorNotFound carries the user-facing message of the detail endpoint.
	ErrContractorNotFound = NewResourceNotFoundError("人员不存在")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a new custom error for rejected input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
