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

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the CommentStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil") // ALLOW-PANIC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

var _ store.CommentStore = (*PostgresCommentStore)(nil)

// ListByArticle implements store.CommentStore.ListByArticle
func (s *PostgresCommentStore) ListByArticle(
	ctx context.Context,
	articleID int,
	filter query.CommentFilter,
) ([]domain.Comment, error) {
	q := query.ListComments(articleID, filter)
	rows, err := s.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list comments",
			slog.Int("article_id", articleID),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return collect(rows, func(r rowScanner) (domain.Comment, error) {
		c, err := scanComment(r)
		if err != nil {
			return domain.Comment{}, err
		}
		return *c, nil
	})
}

// CountByArticle implements store.CommentStore.CountByArticle
func (s *PostgresCommentStore) CountByArticle(ctx context.Context, articleID int) (int, error) {
	q := query.CountComments(articleID)
	var n int
	if err := s.db.QueryRowContext(ctx, q.SQL, q.Args...).Scan(&n); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count comments",
			slog.Int("article_id", articleID),
			slog.String("error", err.Error()))
		return 0, MapError(err)
	}
	return n, nil
}

// Create implements store.CommentStore.Create
// Returns store.ErrInvalidReference if the article or author does not exist.
func (s *PostgresCommentStore) Create(
	ctx context.Context,
	articleID int,
	author, body string,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	q := query.InsertComment(articleID, author, body)
	c, err := scanComment(s.db.QueryRowContext(ctx, q.SQL, q.Args...))
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("comment references unknown article or author",
				slog.Int("article_id", articleID),
				slog.String("author", author))
		} else {
			log.Error("failed to insert comment",
				slog.Int("article_id", articleID),
				slog.String("error", err.Error()))
		}
		return nil, MapError(err)
	}

	log.Debug("comment created", slog.Int("comment_id", c.ID))
	return c, nil
}

// IncrementVotes implements store.CommentStore.IncrementVotes
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) IncrementVotes(ctx context.Context, id, delta int) (*domain.Comment, error) {
	q := query.IncrementCommentVotes(id, delta)
	c, err := scanComment(s.db.QueryRowContext(ctx, q.SQL, q.Args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCommentNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to update comment votes",
			slog.Int("comment_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return c, nil
}

// Delete implements store.CommentStore.Delete
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) Delete(ctx context.Context, id int) error {
	q := query.DeleteComment(id)
	result, err := s.db.ExecContext(ctx, q.SQL, q.Args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete comment",
			slog.Int("comment_id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCommentNotFound)
}

// DeleteByArticle implements store.CommentStore.DeleteByArticle
func (s *PostgresCommentStore) DeleteByArticle(ctx context.Context, articleID int) (int64, error) {
	q := query.DeleteArticleComments(articleID)
	result, err := s.db.ExecContext(ctx, q.SQL, q.Args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete article comments",
			slog.Int("article_id", articleID),
			slog.String("error", err.Error()))
		return 0, MapError(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, MapError(err)
	}
	return n, nil
}

// WithTx implements store.CommentStore.WithTx
func (s *PostgresCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return &PostgresCommentStore{
		db:     tx,
		logger: s.logger,
	}
}
