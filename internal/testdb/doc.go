// Package testdb provides a migrated Postgres database and a known fixture
// set for integration tests.
//
// Tests using it are guarded by the integration build tag:
//
//	//go:build integration
//
//	func TestMain(m *testing.M) {
//	    os.Exit(testdb.Main(m, &db))
//	}
//
// When DATABASE_URL is set that database is used directly; otherwise a
// throwaway postgres container is started with testcontainers.
package testdb
