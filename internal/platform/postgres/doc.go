// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It handles connection setup, schema migrations, query execution, and the
// mapping of PostgreSQL errors onto store errors.
package postgres
