package model

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Field constraints for phonebook entries
const (
	MaxNameLength   = 100
	MinNumberLength = 8
)

var numberPattern = regexp.MustCompile(`^\d{2,3}-\d+$`)

// Person is a phonebook entry
type Person struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`

	// Kept by the backend for insertion ordering; not part of the API shape
	CreatedOn time.Time `json:"-"`
	UpdatedOn time.Time `json:"-"`
}

// PhonebookInfo is the summary rendered by GET /info
type PhonebookInfo struct {
	Count       int
	GeneratedAt time.Time
}

// CreatePersonRequest represents a request to add a person
type CreatePersonRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// UpdateNumberRequest represents a request to change a person's number.
// Clients commonly send the whole record back; name and id are ignored.
type UpdateNumberRequest struct {
	Name   string `json:"name,omitempty"`
	Number string `json:"number"`
}

// Normalize trims surrounding whitespace from the request fields
func (r *CreatePersonRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Number = strings.TrimSpace(r.Number)
}

// Validate validates the create person request
func (r *CreatePersonRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name == "" {
		errors = append(errors, FieldError{
			Field:   "name",
			Message: "name is required",
		})
	} else if utf8.RuneCountInString(r.Name) > MaxNameLength {
		errors = append(errors, FieldError{
			Field:   "name",
			Message: "name exceeds maximum length",
		})
	}

	if fe := validateNumber(r.Number); fe != nil {
		errors = append(errors, *fe)
	}

	return errors
}

// Normalize trims surrounding whitespace from the number
func (r *UpdateNumberRequest) Normalize() {
	r.Number = strings.TrimSpace(r.Number)
}

// Validate validates the update number request
func (r *UpdateNumberRequest) Validate() []FieldError {
	if fe := validateNumber(r.Number); fe != nil {
		return []FieldError{*fe}
	}
	return nil
}

// IsValidNumber reports whether s is an acceptable phone number:
// at least MinNumberLength characters, two or three digits, a hyphen, then digits.
func IsValidNumber(s string) bool {
	return len(s) >= MinNumberLength && numberPattern.MatchString(s)
}

func validateNumber(number string) *FieldError {
	switch {
	case number == "":
		return &FieldError{Field: "number", Message: "number is required"}
	case len(number) < MinNumberLength:
		return &FieldError{Field: "number", Message: "number must be at least 8 characters long"}
	case !numberPattern.MatchString(number):
		return &FieldError{Field: "number", Message: number + " is not a valid phone number, expected a format like 09-1234556 or 040-22334455"}
	}
	return nil
}
