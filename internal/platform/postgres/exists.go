package postgres

import (
	"context"
	"log/slog"

	"github.com/newsboard/newsboard-api/internal/platform/logger"
	"github.com/newsboard/newsboard-api/internal/query"
	"github.com/newsboard/newsboard-api/internal/store"
)

// ExistenceChecker implements store.ExistenceChecker with a single
// SELECT EXISTS round trip.
type ExistenceChecker struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewExistenceChecker creates an ExistenceChecker. If logger is nil, a
// default logger will be used.
func NewExistenceChecker(db store.DBTX, logger *slog.Logger) *ExistenceChecker {
	if db == nil {
		panic("db cannot be nil") // ALLOW-PANIC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExistenceChecker{
		db:     db,
		logger: logger.With(slog.String("component", "existence_checker")),
	}
}

var _ store.ExistenceChecker = (*ExistenceChecker)(nil)

// Exists implements store.ExistenceChecker.Exists
func (c *ExistenceChecker) Exists(ctx context.Context, ref query.Reference, value any) (bool, error) {
	q := query.Exists(ref, value)
	var ok bool
	if err := c.db.QueryRowContext(ctx, q.SQL, q.Args...).Scan(&ok); err != nil {
		logger.FromContextOrDefault(ctx, c.logger).Error("existence check failed",
			slog.String("reference", ref.String()),
			slog.String("error", err.Error()))
		return false, MapError(err)
	}
	return ok, nil
}
