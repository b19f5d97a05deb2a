package service

import (
	"context"
	"log/slog"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/platform/logger"
	"github.com/newsboard/newsboard-api/internal/store"
)

// TopicService provides topic-related operations
type TopicService interface {
	// ListTopics returns every topic.
	ListTopics(ctx context.Context) ([]domain.Topic, error)

	// CreateTopic adds a topic. Returns store.ErrTopicExists when the slug is taken.
	CreateTopic(ctx context.Context, topic domain.Topic) (*domain.Topic, error)
}

type topicServiceImpl struct {
	topics store.TopicStore
	logger *slog.Logger
}

// NewTopicService creates a new TopicService.
// It returns an error if the store is nil.
func NewTopicService(topics store.TopicStore, logger *slog.Logger) (TopicService, error) {
	if topics == nil {
		return nil, nilDependency("topic", "topicStore")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &topicServiceImpl{
		topics: topics,
		logger: logger.With(slog.String("component", "topic_service")),
	}, nil
}

// ListTopics implements TopicService.ListTopics
func (s *topicServiceImpl) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, NewServiceError("topic", "list_topics", "failed to list topics", err)
	}
	return topics, nil
}

// CreateTopic implements TopicService.CreateTopic
func (s *topicServiceImpl) CreateTopic(ctx context.Context, topic domain.Topic) (*domain.Topic, error) {
	created, err := s.topics.Create(ctx, topic)
	if err != nil {
		return nil, NewServiceError("topic", "create_topic", "failed to create topic", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("topic created",
		slog.String("slug", created.Slug))
	return created, nil
}
