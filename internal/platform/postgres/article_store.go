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

// PostgresArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db           store.DBTX
	logger       *slog.Logger
	defaultImage string
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the ArticleStore interface.
// defaultImage is stored for articles created without an image URL; when empty
// domain.DefaultArticleImageURL is used.
func NewPostgresArticleStore(db store.DBTX, logger *slog.Logger, defaultImage string) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil") // ALLOW-PANIC
	}
	if logger == nil {
		logger = slog.Default()
	}
	if defaultImage == "" {
		defaultImage = domain.DefaultArticleImageURL
	}
	return &PostgresArticleStore{
		db:           db,
		logger:       logger.With(slog.String("component", "article_store")),
		defaultImage: defaultImage,
	}
}

var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// List implements store.ArticleStore.List
func (s *PostgresArticleStore) List(ctx context.Context, filter query.ArticleFilter) ([]domain.Article, error) {
	q := query.ListArticles(filter)
	rows, err := s.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list articles",
			slog.String("topic", filter.Topic),
			slog.String("sort_by", filter.SortBy.String()),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return collect(rows, scanArticleSummary)
}

// Count implements store.ArticleStore.Count
func (s *PostgresArticleStore) Count(ctx context.Context, topic string) (int, error) {
	q := query.CountArticles(topic)
	var n int
	if err := s.db.QueryRowContext(ctx, q.SQL, q.Args...).Scan(&n); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count articles",
			slog.String("topic", topic),
			slog.String("error", err.Error()))
		return 0, MapError(err)
	}
	return n, nil
}

// GetByID implements store.ArticleStore.GetByID
// Returns store.ErrArticleIDNotFound if the article does not exist.
func (s *PostgresArticleStore) GetByID(ctx context.Context, id int) (*domain.Article, error) {
	q := query.GetArticle(id)
	a, err := scanArticle(s.db.QueryRowContext(ctx, q.SQL, q.Args...), true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrArticleIDNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get article",
			slog.Int("article_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return a, nil
}

// Create implements store.ArticleStore.Create
// Returns store.ErrInvalidReference if the author or topic does not exist.
func (s *PostgresArticleStore) Create(ctx context.Context, article domain.Article) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	q := query.InsertArticle(article, s.defaultImage)
	a, err := scanArticle(s.db.QueryRowContext(ctx, q.SQL, q.Args...), false)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("article references unknown author or topic",
				slog.String("author", article.Author),
				slog.String("topic", article.Topic))
		} else {
			log.Error("failed to insert article", slog.String("error", err.Error()))
		}
		return nil, MapError(err)
	}

	log.Debug("article created", slog.Int("article_id", a.ID))
	return a, nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes
// Returns store.ErrArticleIDNotFound if the article does not exist.
func (s *PostgresArticleStore) IncrementVotes(ctx context.Context, id, delta int) (*domain.Article, error) {
	q := query.IncrementArticleVotes(id, delta)
	a, err := scanArticle(s.db.QueryRowContext(ctx, q.SQL, q.Args...), true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrArticleIDNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to update article votes",
			slog.Int("article_id", id),
			slog.Int("delta", delta),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return a, nil
}

// Delete implements store.ArticleStore.Delete
// Returns store.ErrArticleNotFound if the article does not exist.
func (s *PostgresArticleStore) Delete(ctx context.Context, id int) error {
	q := query.DeleteArticle(id)
	result, err := s.db.ExecContext(ctx, q.SQL, q.Args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete article",
			slog.Int("article_id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrArticleNotFound)
}

// WithTx implements store.ArticleStore.WithTx
func (s *PostgresArticleStore) WithTx(tx *sql.Tx) store.ArticleStore {
	return &PostgresArticleStore{
		db:           tx,
		logger:       s.logger,
		defaultImage: s.defaultImage,
	}
}
