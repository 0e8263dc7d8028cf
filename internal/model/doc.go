// Package model defines the phonebook's domain entities, request types and
// API error bodies.
//
// Person is the only entity. Requests validate themselves and report
// problems as []FieldError; the handler layer turns those into an APIError
// whose JSON form is {"error": "..."}.
package model
