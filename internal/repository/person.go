package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/phonebook/internal/database"
	"github.com/forgo/phonebook/internal/model"
)

// ErrConstraint is returned when the backend rejects a write because a field
// failed the table's ASSERT rules
var ErrConstraint = errors.New("constraint violation")

// PersonRepository stores phonebook entries in the SurrealDB person table.
// Ids passed in and returned are bare record keys.
type PersonRepository struct {
	db database.Database
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db database.Database) *PersonRepository {
	return &PersonRepository{db: db}
}

// List returns every person in insertion order
func (r *PersonRepository) List(ctx context.Context) ([]*model.Person, error) {
	query := `SELECT * FROM person ORDER BY created_on ASC`

	results, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	return parsePeopleResult(extractQueryResults(results))
}

// GetByID retrieves a person by record key, nil when absent
func (r *PersonRepository) GetByID(ctx context.Context, id string) (*model.Person, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": model.PersonRecordID(id)}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parsePersonResult(result)
}

// Create inserts a person and fills in the backend-assigned id and timestamps
func (r *PersonRepository) Create(ctx context.Context, person *model.Person) error {
	query := `CREATE person SET name = $name, number = $number, created_on = time::now(), updated_on = time::now()`
	vars := map[string]interface{}{
		"name":   person.Name,
		"number": person.Number,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return wrapWriteError(err)
	}

	records := extractQueryResults(results)
	if len(records) == 0 {
		return errors.New("no result returned")
	}
	created, err := parsePersonResult(records[0])
	if err != nil {
		return err
	}

	person.ID = created.ID
	person.CreatedOn = created.CreatedOn
	person.UpdatedOn = created.UpdatedOn
	return nil
}

// UpdateNumber sets a person's number and returns the updated record, nil when
// no person has that id. A WHERE clause is used rather than UPDATE on the
// record id so a missing record is never created.
func (r *PersonRepository) UpdateNumber(ctx context.Context, id, number string) (*model.Person, error) {
	query := `UPDATE person SET number = $number, updated_on = time::now() WHERE id = type::record($id) RETURN AFTER`
	vars := map[string]interface{}{
		"id":     model.PersonRecordID(id),
		"number": number,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, wrapWriteError(err)
	}

	records := extractQueryResults(results)
	if len(records) == 0 {
		return nil, nil
	}
	return parsePersonResult(records[0])
}

// Delete removes a person and reports whether a record was removed
func (r *PersonRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE person WHERE id = type::record($id) RETURN BEFORE`
	vars := map[string]interface{}{"id": model.PersonRecordID(id)}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return false, err
	}

	return len(extractQueryResults(results)) > 0, nil
}

// Count returns the number of people in the phonebook
func (r *PersonRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT count() AS count FROM person GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return extractCount(result), nil
}

// Ping checks that the backend is reachable
func (r *PersonRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Helper functions

func wrapWriteError(err error) error {
	if isConstraintError(err) {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}

func parsePersonResult(result interface{}) (*model.Person, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	return &model.Person{
		ID:        recordKey(data["id"]),
		Name:      getString(data, "name"),
		Number:    getString(data, "number"),
		CreatedOn: getTime(data, "created_on"),
		UpdatedOn: getTime(data, "updated_on"),
	}, nil
}

func parsePeopleResult(records []interface{}) ([]*model.Person, error) {
	people := make([]*model.Person, 0, len(records))

	for _, item := range records {
		person, err := parsePersonResult(item)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}

	return people, nil
}
