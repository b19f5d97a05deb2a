package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/platform/logger"
	"github.com/newsboard/newsboard-api/internal/query"
	"github.com/newsboard/newsboard-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil") // ALLOW-PANIC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// List implements store.UserStore.List
func (s *PostgresUserStore) List(ctx context.Context) ([]domain.User, error) {
	q := query.ListUsers()
	rows, err := s.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list users",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return collect(rows, func(r rowScanner) (domain.User, error) {
		u, err := scanUser(r)
		if err != nil {
			return domain.User{}, err
		}
		return *u, nil
	})
}

// GetByUsername implements store.UserStore.GetByUsername
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := query.GetUser(username)
	u, err := scanUser(s.db.QueryRowContext(ctx, q.SQL, q.Args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get user",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return u, nil
}
