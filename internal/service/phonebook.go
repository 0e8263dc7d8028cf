package service

import (
	"context"
	"errors"
	"time"

	"github.com/forgo/phonebook/internal/model"
	"github.com/forgo/phonebook/internal/repository"
)

// PersonRepository defines the interface for phonebook storage.
// Lookups return (nil, nil) when no person has the given id.
type PersonRepository interface {
	List(ctx context.Context) ([]*model.Person, error)
	GetByID(ctx context.Context, id string) (*model.Person, error)
	Create(ctx context.Context, person *model.Person) error
	UpdateNumber(ctx context.Context, id, number string) (*model.Person, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// PhonebookService handles phonebook business logic
type PhonebookService struct {
	personRepo PersonRepository
	now        func() time.Time
}

// PhonebookServiceConfig holds configuration for the phonebook service
type PhonebookServiceConfig struct {
	PersonRepo PersonRepository
	// Clock defaults to time.Now
	Clock func() time.Time
}

// NewPhonebookService creates a new phonebook service
func NewPhonebookService(cfg PhonebookServiceConfig) *PhonebookService {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &PhonebookService{
		personRepo: cfg.PersonRepo,
		now:        now,
	}
}

// List returns every person in insertion order
func (s *PhonebookService) List(ctx context.Context) ([]*model.Person, error) {
	people, err := s.personRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if people == nil {
		people = []*model.Person{}
	}
	return people, nil
}

// Get retrieves a person by id
func (s *PhonebookService) Get(ctx context.Context, id string) (*model.Person, error) {
	key, ok := model.ParsePersonID(id)
	if !ok {
		return nil, ErrMalformedID
	}

	person, err := s.personRepo.GetByID(ctx, key)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// Create adds a person to the phonebook
func (s *PhonebookService) Create(ctx context.Context, req *model.CreatePersonRequest) (*model.Person, error) {
	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	person := &model.Person{
		Name:   req.Name,
		Number: req.Number,
	}
	if err := s.personRepo.Create(ctx, person); err != nil {
		return nil, mapWriteError(err)
	}
	return person, nil
}

// UpdateNumber changes the number of an existing person. Any other field in
// the request is ignored.
func (s *PhonebookService) UpdateNumber(ctx context.Context, id string, req *model.UpdateNumberRequest) (*model.Person, error) {
	key, ok := model.ParsePersonID(id)
	if !ok {
		return nil, ErrMalformedID
	}

	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	person, err := s.personRepo.UpdateNumber(ctx, key, req.Number)
	if err != nil {
		return nil, mapWriteError(err)
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// Delete removes a person from the phonebook
func (s *PhonebookService) Delete(ctx context.Context, id string) error {
	key, ok := model.ParsePersonID(id)
	if !ok {
		return ErrMalformedID
	}

	deleted, err := s.personRepo.Delete(ctx, key)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPersonNotFound
	}
	return nil
}

// Info returns the current size of the phonebook stamped with the request time
func (s *PhonebookService) Info(ctx context.Context) (*model.PhonebookInfo, error) {
	count, err := s.personRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &model.PhonebookInfo{
		Count:       count,
		GeneratedAt: s.now(),
	}, nil
}

// mapWriteError turns a backend schema rejection into a validation error
func mapWriteError(err error) error {
	if errors.Is(err, repository.ErrConstraint) {
		return newValidationError([]model.FieldError{{Field: "person", Message: "rejected by the backend schema"}})
	}
	return err
}
