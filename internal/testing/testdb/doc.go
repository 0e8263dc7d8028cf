// Package testdb provides isolated SurrealDB environments for repository
// integration tests.
//
// Each TestDB connects to the SurrealDB named by TEST_DB_HOST/TEST_DB_PORT,
// uses a fresh namespace and applies the embedded migrations. When no
// SurrealDB is reachable the calling test is skipped.
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    repo := repository.NewPersonRepository(tdb.DB)
//	}
package testdb
