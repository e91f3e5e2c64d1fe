// Package apperr carries request failures from services and resolvers to the
// GraphQL error formatting layer as {message, status, data}.
package apperr

import "net/http"

// FieldError is a single field-level validation failure.
type FieldError struct {
	Message string `json:"message"`
}

// Error is a request failure with an HTTP-visible status and optional
// field-level detail.
type Error struct {
	Message string
	Status  int
	Data    []FieldError
}

func (e *Error) Error() string { return e.Message }

// Extensions makes Error a gqlerrors.ExtendedError so status and data survive
// GraphQL error formatting.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"status": e.Status}
	if len(e.Data) > 0 {
		ext["data"] = e.Data
	}
	return ext
}

// InvalidInput aggregates field validation failures (422).
func InvalidInput(data []FieldError) *Error {
	return &Error{Message: "Invalid input", Status: http.StatusUnprocessableEntity, Data: data}
}

// Unauthorized reports a missing or invalid acting identity (401).
func Unauthorized(message string) *Error {
	return &Error{Message: message, Status: http.StatusUnauthorized}
}

// Forbidden reports an authenticated but not permitted action (403).
func Forbidden(message string) *Error {
	return &Error{Message: message, Status: http.StatusForbidden}
}

// NotFound reports a missing resource (404).
func NotFound(message string) *Error {
	return &Error{Message: message, Status: http.StatusNotFound}
}

// Conflict reports a duplicate resource (409).
func Conflict(message string) *Error {
	return &Error{Message: message, Status: http.StatusConflict}
}

// Internal wraps an unanticipated failure (500, no data payload).
func Internal(message string) *Error {
	if message == "" {
		message = "An error occurred"
	}
	return &Error{Message: message, Status: http.StatusInternalServerError}
}
