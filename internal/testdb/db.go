//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/newsboard/newsboard-api/internal/config"
	"github.com/newsboard/newsboard-api/internal/platform/postgres"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// EnvDatabaseURL names an existing database to use instead of a container.
const EnvDatabaseURL = "DATABASE_URL"

// TestTimeout bounds individual fixture and setup operations.
const TestTimeout = 30 * time.Second

const postgresImage = "postgres:16-alpine"

// Logger discards output; tests assert on results, not logs.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Open returns a migrated database and a function releasing it.
func Open(ctx context.Context) (*sql.DB, func(), error) {
	url := os.Getenv(EnvDatabaseURL)
	terminate := func() {}

	if url == "" {
		container, err := tcpostgres.Run(ctx,
			postgresImage,
			tcpostgres.WithDatabase("newsboard_test"),
			tcpostgres.WithUsername("newsboard"),
			tcpostgres.WithPassword("newsboard"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start postgres container: %w", err)
		}
		terminate = func() {
			_ = container.Terminate(context.Background())
		}

		url, err = container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			terminate()
			return nil, nil, fmt.Errorf("failed to get connection string: %w", err)
		}
	}

	db, err := postgres.Open(ctx, config.DatabaseConfig{
		URL:                    url,
		MaxOpenConns:           5,
		MaxIdleConns:           2,
		ConnMaxLifetimeMinutes: 5,
	}, Logger())
	if err != nil {
		terminate()
		return nil, nil, err
	}

	if err := postgres.Migrate(ctx, db, Logger(), "up"); err != nil {
		_ = db.Close()
		terminate()
		return nil, nil, err
	}

	return db, func() {
		_ = db.Close()
		terminate()
	}, nil
}

// Main opens the database into *db, runs the tests and releases it. The
// return value is the process exit code.
func Main(m *testing.M, db **sql.DB) int {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	conn, release, err := Open(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "testdb: %v\n", err)
		return 1
	}
	defer release()

	*db = conn
	return m.Run()
}
