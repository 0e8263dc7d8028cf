package model

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error messages that clients match on
const (
	MsgMalformattedID   = "malformatted id"
	MsgMalformattedBody = "malformatted request body"
	MsgUnknownEndpoint  = "unknown endpoint"
	MsgInternal         = "internal server error"
)

// APIError is the JSON error body returned by the API: {"error": "..."}.
// A zero Message means the response carries no body at all.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a JSON response. Errors without a message
// (not found) are written as a bare status line.
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	if e.Message == "" {
		w.WriteHeader(e.Status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// Common error constructors

func NewMalformattedIDError() *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: MsgMalformattedID}
}

func NewBadRequestError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NewValidationError builds a 400 whose message lists every failing field,
// e.g. "Person validation failed: name: name is required".
func NewValidationError(resource string, errors []FieldError) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: ValidationMessage(resource, errors)}
}

// NewNotFoundError is a 404 with an empty body
func NewNotFoundError() *APIError {
	return &APIError{Status: http.StatusNotFound}
}

func NewUnknownEndpointError() *APIError {
	return &APIError{Status: http.StatusNotFound, Message: MsgUnknownEndpoint}
}

func NewInternalError() *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: MsgInternal}
}

// ValidationMessage renders field errors as a single line
func ValidationMessage(resource string, errors []FieldError) string {
	if len(errors) == 0 {
		return resource + " validation failed"
	}
	parts := make([]string, len(errors))
	for i, fe := range errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return resource + " validation failed: " + strings.Join(parts, ", ")
}
