package repository

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-memdb"
	"github.com/nats-io/nuid"

	"github.com/forgo/phonebook/internal/model"
)

const (
	memIndexID  = "id"
	memIndexSeq = "seq"
)

// personRecord is the stored form. Records are never mutated after insert;
// updates insert a fresh copy, as go-memdb requires.
type personRecord struct {
	ID        string
	Seq       string
	Name      string
	Number    string
	CreatedOn time.Time
	UpdatedOn time.Time
}

func personSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			model.PersonTable: {
				Name: model.PersonTable,
				Indexes: map[string]*memdb.IndexSchema{
					memIndexID: {
						Name:    memIndexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					memIndexSeq: {
						Name:    memIndexSeq,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Seq"},
					},
				},
			},
		},
	}
}

// MemoryPersonRepository keeps the phonebook in process memory. It backs
// DB_DRIVER=memory and the handler tests. Ids are NUIDs.
type MemoryPersonRepository struct {
	db  *memdb.MemDB
	seq atomic.Uint64
	now func() time.Time
}

// NewMemoryPersonRepository creates an empty in-memory phonebook
func NewMemoryPersonRepository() (*MemoryPersonRepository, error) {
	db, err := memdb.NewMemDB(personSchema())
	if err != nil {
		return nil, fmt.Errorf("creating memdb: %w", err)
	}
	return &MemoryPersonRepository{db: db, now: time.Now}, nil
}

// List returns every person in insertion order
func (r *MemoryPersonRepository) List(ctx context.Context) ([]*model.Person, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(model.PersonTable, memIndexSeq)
	if err != nil {
		return nil, err
	}

	people := make([]*model.Person, 0)
	for raw := it.Next(); raw != nil; raw = it.Next() {
		people = append(people, raw.(*personRecord).toModel())
	}
	return people, nil
}

// GetByID retrieves a person by id, nil when absent
func (r *MemoryPersonRepository) GetByID(ctx context.Context, id string) (*model.Person, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	rec, err := r.get(txn, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return rec.toModel(), nil
}

// Create inserts a person and fills in the generated id and timestamps
func (r *MemoryPersonRepository) Create(ctx context.Context, person *model.Person) error {
	if !model.IsValidNumber(person.Number) || person.Name == "" {
		return fmt.Errorf("%w: person %q", ErrConstraint, person.Name)
	}

	now := r.now()
	rec := &personRecord{
		ID:        nuid.Next(),
		Seq:       fmt.Sprintf("%020d", r.seq.Add(1)),
		Name:      person.Name,
		Number:    person.Number,
		CreatedOn: now,
		UpdatedOn: now,
	}

	txn := r.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert(model.PersonTable, rec); err != nil {
		return err
	}
	txn.Commit()

	person.ID = rec.ID
	person.CreatedOn = rec.CreatedOn
	person.UpdatedOn = rec.UpdatedOn
	return nil
}

// UpdateNumber sets a person's number and returns the updated record, nil when absent
func (r *MemoryPersonRepository) UpdateNumber(ctx context.Context, id, number string) (*model.Person, error) {
	if !model.IsValidNumber(number) {
		return nil, fmt.Errorf("%w: number %q", ErrConstraint, number)
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	rec, err := r.get(txn, id)
	if err != nil || rec == nil {
		return nil, err
	}

	updated := *rec
	updated.Number = number
	updated.UpdatedOn = r.now()
	if err := txn.Insert(model.PersonTable, &updated); err != nil {
		return nil, err
	}
	txn.Commit()

	return updated.toModel(), nil
}

// Delete removes a person and reports whether a record was removed
func (r *MemoryPersonRepository) Delete(ctx context.Context, id string) (bool, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	rec, err := r.get(txn, id)
	if err != nil || rec == nil {
		return false, err
	}
	if err := txn.Delete(model.PersonTable, rec); err != nil {
		return false, err
	}
	txn.Commit()
	return true, nil
}

// Count returns the number of people in the phonebook
func (r *MemoryPersonRepository) Count(ctx context.Context) (int, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(model.PersonTable, memIndexID)
	if err != nil {
		return 0, err
	}
	n := 0
	for raw := it.Next(); raw != nil; raw = it.Next() {
		n++
	}
	return n, nil
}

// Ping always succeeds; the store lives in process
func (r *MemoryPersonRepository) Ping(ctx context.Context) error {
	return nil
}

func (r *MemoryPersonRepository) get(txn *memdb.Txn, id string) (*personRecord, error) {
	raw, err := txn.First(model.PersonTable, memIndexID, id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	rec, ok := raw.(*personRecord)
	if !ok {
		return nil, fmt.Errorf("cannot cast to personRecord")
	}
	return rec, nil
}

func (rec *personRecord) toModel() *model.Person {
	return &model.Person{
		ID:        rec.ID,
		Name:      rec.Name,
		Number:    rec.Number,
		CreatedOn: rec.CreatedOn,
		UpdatedOn: rec.UpdatedOn,
	}
}
