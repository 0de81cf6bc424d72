package errors

import (
	"net/http"
	"strings"
)

// FieldError describes one field that failed its schema.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError is returned when an input fails its schema. It lists every failing field.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError creates a validation error for the given field failures.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+" "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-facing error message
func (e *ValidationError) Message() string {
	return "Validation error"
}

// Details returns the field-level failures.
func (e *ValidationError) Details() any {
	return e.Fields()
}

// Fields returns a copy of the field-level failures.
func (e *ValidationError) Fields() []FieldError {
	out := make([]FieldError, len(e.fields))
	copy(out, e.fields)

	return out
}
