package models

import (
	"fmt"
	"net/http"
)

// ErrorCode is a string type for consistent error codes.
type ErrorCode string

// Predefined error codes for common API errors.
const (
	ErrorCodeInternalServerError ErrorCode = "internal_server_error"
	ErrorCodeBadRequest          ErrorCode = "bad_request"
	ErrorCodeMethodNotAllowed    ErrorCode = "method_not_allowed"

	// Validation
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeMissingParameter ErrorCode = "missing_parameter"
	ErrorCodeInvalidFormat    ErrorCode = "invalid_format"

	// Resource specific
	ErrorCodeResourceNotFound  ErrorCode = "resource_not_found"
	ErrorCodeDuplicateResource ErrorCode = "duplicate_resource"

	// Advisory pipeline
	ErrorCodeGenerationFailed ErrorCode = "generation_failed"
)

type APIError struct {
	Code       ErrorCode `json:"code"`              // Machine-readable error code
	Message    string    `json:"error"`             // Human-readable error message
	Details    any       `json:"details,omitempty"` // Optional: additional details
	StatusCode int       `json:"-"`                 // HTTP status code
}

// Error makes APIError implement the error interface.
func (e APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAPIError is a constructor for APIError.
func NewAPIError(code ErrorCode, message string, details any, statusCode int) APIError {
	return APIError{
		Code:       code,
		Message:    message,
		Details:    details,
		StatusCode: statusCode,
	}
}

// NewValidationError builds a 400 validation failure.
func NewValidationError(message string) APIError {
	return NewAPIError(ErrorCodeValidationFailed, message, nil, http.StatusBadRequest)
}

// NewNotFoundError builds a 404 for an unknown resource key.
func NewNotFoundError(message string) APIError {
	return NewAPIError(ErrorCodeResourceNotFound, message, nil, http.StatusNotFound)
}

// NewGenerationError wraps a failure of the external generation service.
// The message is user-facing; the underlying cause goes into Details.
func NewGenerationError(cause error) APIError {
	return NewAPIError(ErrorCodeGenerationFailed,
		"Could not connect to AI service. Please check your backend server.",
		cause.Error(), http.StatusInternalServerError)
}
