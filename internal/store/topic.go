package store

import (
	"context"

	"github.com/newsboard/newsboard-api/internal/domain"
)

// TopicStore defines the interface for topic data persistence.
type TopicStore interface {
	// List returns every topic.
	List(ctx context.Context) ([]domain.Topic, error)

	// Create inserts a topic and returns the stored row.
	// Returns ErrTopicExists if the slug is already taken.
	Create(ctx context.Context, topic domain.Topic) (*domain.Topic, error)
}
