package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/platform/logger"
	"github.com/newsboard/newsboard-api/internal/query"
	"github.com/newsboard/newsboard-api/internal/store"
)

// PostgresTopicStore implements the store.TopicStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTopicStore creates a new PostgreSQL implementation of the TopicStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTopicStore(db store.DBTX, logger *slog.Logger) *PostgresTopicStore {
	if db == nil {
		panic("db cannot be nil") // ALLOW-PANIC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

var _ store.TopicStore = (*PostgresTopicStore)(nil)

// List implements store.TopicStore.List
func (s *PostgresTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	q := query.ListTopics()
	rows, err := s.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list topics",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return collect(rows, func(r rowScanner) (domain.Topic, error) {
		var t domain.Topic
		err := r.Scan(&t.Slug, &t.Description)
		return t, err
	})
}

// Create implements store.TopicStore.Create
// Returns store.ErrTopicExists if the slug is already taken.
func (s *PostgresTopicStore) Create(ctx context.Context, topic domain.Topic) (*domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	q := query.InsertTopic(topic.Slug, topic.Description)
	var created domain.Topic
	err := s.db.QueryRowContext(ctx, q.SQL, q.Args...).Scan(&created.Slug, &created.Description)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("topic slug already exists", slog.String("slug", topic.Slug))
			return nil, fmt.Errorf("%w: %w", store.ErrTopicExists, err)
		}
		log.Error("failed to insert topic",
			slog.String("slug", topic.Slug),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("topic created", slog.String("slug", created.Slug))
	return &created, nil
}
