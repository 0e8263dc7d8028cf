package service

import (
	"errors"

	"github.com/forgo/phonebook/internal/model"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here so handlers can
// map them with errors.Is / errors.As.

// ===== Phonebook Errors =====
var (
	ErrMalformedID    = errors.New("malformatted id")
	ErrPersonNotFound = errors.New("person not found")
)

// ValidationError reports the fields of a person that failed validation
type ValidationError struct {
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	return model.ValidationMessage("Person", e.Fields)
}

func newValidationError(fields []model.FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}
