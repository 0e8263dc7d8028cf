// Package service implements the business logic layer for the phonebook API.
//
// PhonebookService owns the rules that sit between HTTP handlers and
// storage: id format checks, request normalization and validation, and the
// translation of absent records into ErrPersonNotFound.
//
// # Repository Interfaces
//
// The service defines its own PersonRepository interface. Both
// repository.PersonRepository (SurrealDB) and
// repository.MemoryPersonRepository (go-memdb) satisfy it, and unit tests
// use a func-field mock.
//
// # Error Handling
//
// Service methods return the sentinel errors in errors.go or a
// *ValidationError; anything else is a backend failure:
//
//	var (
//	    ErrMalformedID    = errors.New("malformatted id")
//	    ErrPersonNotFound = errors.New("person not found")
//	)
//
// Checks run in a fixed order: id format, then request body, then backend.
//
// # Example Usage
//
//	svc := NewPhonebookService(PhonebookServiceConfig{
//	    PersonRepo: repository.NewPersonRepository(db),
//	})
//	person, err := svc.Create(ctx, &model.CreatePersonRequest{
//	    Name:   "Arto Hellas",
//	    Number: "040-123456",
//	})
package service
