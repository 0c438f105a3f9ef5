// Package dto contains data transfer objects: the plain integer descriptors
// exchanged with the packing solver, the request and report shapes of the
// command line, and the response envelope wrapping them.
package dto

// APIResponse represents the standard response envelope printed by the CLI.
type APIResponse[T any] struct {
	// Success indicates if the command succeeded.
	Success bool `json:"success"`

	// Data contains the payload of the response.
	Data T `json:"data,omitempty"`

	// Error contains error details if the command failed.
	Error *APIError `json:"error,omitempty"`

	// Meta contains additional metadata about the response.
	Meta *ResponseMeta `json:"meta,omitempty"`
}

// APIError represents error details in an API response.
type APIError struct {
	// Code is the error code.
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details provides additional information about the error.
	Details map[string]any `json:"details,omitempty"`

	// ValidationErrors contains field-level validation errors.
	ValidationErrors []ValidationError `json:"validation_errors,omitempty"`
}

// ValidationError represents a field validation error.
type ValidationError struct {
	// Field is the field that failed validation.
	Field string `json:"field"`

	// Message is the validation error message.
	Message string `json:"message"`

	// Value is the invalid value (if safe to show).
	Value any `json:"value,omitempty"`
}

// ResponseMeta contains metadata about the response.
type ResponseMeta struct {
	// OperationID is the unique identifier of the command run.
	OperationID string `json:"operation_id,omitempty"`

	// Timestamp is the time when the response was generated.
	Timestamp string `json:"timestamp,omitempty"`

	// Version is the application version.
	Version string `json:"version,omitempty"`
}

// NewSuccessResponse creates a new successful response.
//
// Parameters:
//   - data: The response data
//
// Returns:
//   - APIResponse[T]: The success response wrapper
func NewSuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse creates a new API error response.
//
// Parameters:
//   - code: The error code
//   - message: The error message
//
// Returns:
//   - APIResponse[T]: The error response wrapper
func NewErrorResponse[T any](code, message string) APIResponse[T] {
	return APIResponse[T]{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	}
}

// NewValidationErrorResponse creates a new API validation error response.
//
// Parameters:
//   - errors: The list of validation errors
//
// Returns:
//   - APIResponse[T]: The validation error response wrapper
func NewValidationErrorResponse[T any](errors []ValidationError) APIResponse[T] {
	return APIResponse[T]{
		Success: false,
		Error: &APIError{
			Code:             "VALIDATION_ERROR",
			Message:          "Request validation failed",
			ValidationErrors: errors,
		},
	}
}
