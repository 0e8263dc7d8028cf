// Package repository implements phonebook storage.
//
// Two implementations satisfy service.PersonRepository:
//
//   - PersonRepository: the SurrealDB person table, via database.Database
//   - MemoryPersonRepository: an in-process go-memdb table (DB_DRIVER=memory)
//
// Both hand out bare record keys as ids, return (nil, nil) for absent records
// and wrap rejected writes in ErrConstraint.
//
// SurrealQL conventions:
//
//   - Parameterized queries with $variable syntax
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
//   - UPDATE/DELETE ... WHERE id = ... so a missing record is never created
package repository
