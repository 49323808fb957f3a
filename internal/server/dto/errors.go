// Package dto defines the tool API request/response types and error handling.
//
// This package is the API contract layer: request types with json and
// jsonschema struct tags (the latter drive the tool catalog), response types
// mirroring the engine results, and structured error types carrying HTTP
// status codes and machine-readable error codes. Handlers convert between dto
// and engine types so that changes to the engine never leak into the wire
// contract by accident.
//
// Every failure inside an operation is rendered as an ErrorResponse under a
// top-level "error" key; no handler fault ever propagates as a process crash.
package dto

import (
	"fmt"
	"maps"
	"net/http"
)

// ErrorCode defines specific error types for the API.
type ErrorCode string

const (
	// ErrorCodeValidationFailed is returned when input data fails validation.
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	// ErrorCodeMissingField is returned when a required field is missing.
	ErrorCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrorCodeInvalidFormat is returned when a field has an invalid format.
	ErrorCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// ErrorCodeFileNotFound is returned when the source CSV does not exist.
	ErrorCodeFileNotFound ErrorCode = "FILE_NOT_FOUND"
	// ErrorCodeParseFailure is returned when an existing file is not valid
	// tabular data.
	ErrorCodeParseFailure ErrorCode = "PARSE_FAILURE"
	// ErrorCodeUnknownTool is returned when the operation name is not known.
	ErrorCodeUnknownTool ErrorCode = "UNKNOWN_TOOL"
	// ErrorCodeForbiddenPath is returned when a path argument escapes the
	// configured data directory.
	ErrorCodeForbiddenPath ErrorCode = "FORBIDDEN_PATH"

	// ErrorCodePayloadTooLarge is returned when the request body exceeds the
	// configured cap.
	ErrorCodePayloadTooLarge ErrorCode = "PAYLOAD_TOO_LARGE"
	// ErrorCodeRateLimited is returned when the client exceeded its request
	// budget.
	ErrorCodeRateLimited ErrorCode = "RATE_LIMITED"
	// ErrorCodeInternal is returned when an unexpected server error occurs.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetails defines the structured error information in a response.
type ErrorDetails struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error   ErrorDetails   `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorWithStatus is an error that includes an HTTP status code and error code.
type ErrorWithStatus interface {
	Error() string
	StatusCode() int
	Code() ErrorCode
	Details() map[string]any
}

// APIError is a concrete error type with status code and optional details.
type APIError struct {
	statusCode int
	code       ErrorCode
	message    string
	details    map[string]any
	wrappedErr error
}

// NewAPIError creates a new APIError with the given status code and message.
func NewAPIError(statusCode int, code ErrorCode, message string) *APIError {
	return &APIError{
		statusCode: statusCode,
		code:       code,
		message:    message,
		details:    make(map[string]any),
	}
}

// WithDetail adds a single detail to the error.
func (e *APIError) WithDetail(key string, value any) *APIError {
	if e.details == nil {
		e.details = make(map[string]any)
	}
	e.details[key] = value
	return e
}

// WithDetails adds details to the error.
func (e *APIError) WithDetails(details map[string]any) *APIError {
	if e.details == nil {
		e.details = make(map[string]any)
	}
	maps.Copy(e.details, details)
	return e
}

// Wrap wraps an underlying error.
func (e *APIError) Wrap(err error) *APIError {
	e.wrappedErr = err
	return e
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.wrappedErr != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrappedErr)
	}
	return e.message
}

// StatusCode returns the HTTP status code.
func (e *APIError) StatusCode() int {
	return e.statusCode
}

// Code returns the error code.
func (e *APIError) Code() ErrorCode {
	return e.code
}

// Details returns additional error details.
func (e *APIError) Details() map[string]any {
	return e.details
}

// Unwrap returns the wrapped error if any.
func (e *APIError) Unwrap() error {
	return e.wrappedErr
}

// Predefined error constructors for common cases

// BadRequest creates a 400 Bad Request error.
func BadRequest(message string) *APIError {
	return NewAPIError(http.StatusBadRequest, ErrorCodeValidationFailed, message)
}

// MissingField creates a 400 Bad Request error for a missing field.
func MissingField(fieldName string) *APIError {
	return NewAPIError(http.StatusBadRequest, ErrorCodeMissingField, "Missing required field: "+fieldName)
}

// InvalidFormat creates a 400 error for a malformed field value.
func InvalidFormat(fieldName, reason string) *APIError {
	return NewAPIError(http.StatusBadRequest, ErrorCodeInvalidFormat,
		fmt.Sprintf("Invalid value for %s: %s", fieldName, reason))
}

// FileNotFound creates a 404 error for a missing source file.
func FileNotFound(path string) *APIError {
	return NewAPIError(http.StatusNotFound, ErrorCodeFileNotFound, "File not found").
		WithDetail("path", path)
}

// ParseFailure creates a 422 error for a file that is not valid tabular data.
func ParseFailure(err error) *APIError {
	return NewAPIError(http.StatusUnprocessableEntity, ErrorCodeParseFailure, "Failed to parse CSV file").
		Wrap(err)
}

// UnknownTool creates a 404 error for an unrecognized operation name.
func UnknownTool(name string) *APIError {
	return NewAPIError(http.StatusNotFound, ErrorCodeUnknownTool, "Unknown tool: "+name)
}

// ForbiddenPath creates a 403 error for a path outside the data directory.
func ForbiddenPath(path string) *APIError {
	return NewAPIError(http.StatusForbidden, ErrorCodeForbiddenPath, "Path escapes the data directory").
		WithDetail("path", path)
}

// PayloadTooLarge creates a 413 error with the configured limit.
func PayloadTooLarge(limit int64) *APIError {
	return NewAPIError(http.StatusRequestEntityTooLarge, ErrorCodePayloadTooLarge, "Request body too large").
		WithDetail("limit_bytes", limit)
}

// RateLimitExceeded creates a 429 error with the retry hint.
func RateLimitExceeded(retryAfterSeconds int) *APIError {
	return NewAPIError(http.StatusTooManyRequests, ErrorCodeRateLimited, "Rate limit exceeded").
		WithDetail("retry_after_seconds", retryAfterSeconds)
}

// Internal returns a 500 Internal Server Error.
func Internal(message string) *APIError {
	return NewAPIError(http.StatusInternalServerError, ErrorCodeInternal, message)
}

// InternalWithError creates a 500 error wrapping an underlying error.
func InternalWithError(message string, err error) *APIError {
	return Internal(message).Wrap(err)
}
