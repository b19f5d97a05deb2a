package postgres

import (
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/newsboard/newsboard-api/internal/query"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2020, time.July, 9, 20, 11, 0, 0, time.UTC)

// newMockDB returns a sqlmock database that matches SQL text exactly, so
// expectations can be built from the query package.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

// expectQuery registers q with its exact SQL and arguments.
func expectQuery(mock sqlmock.Sqlmock, q query.Query) *sqlmock.ExpectedQuery {
	return mock.ExpectQuery(q.SQL).WithArgs(driverArgs(q.Args)...)
}

// expectExec registers q with its exact SQL and arguments.
func expectExec(mock sqlmock.Sqlmock, q query.Query) *sqlmock.ExpectedExec {
	return mock.ExpectExec(q.SQL).WithArgs(driverArgs(q.Args)...)
}

func driverArgs(args []any) []driver.Value {
	out := make([]driver.Value, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}
