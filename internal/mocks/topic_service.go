package mocks

import (
	"context"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/service"
)

// MockTopicService implements service.TopicService for testing
type MockTopicService struct {
	ListTopicsFn  func(ctx context.Context) ([]domain.Topic, error)
	CreateTopicFn func(ctx context.Context, topic domain.Topic) (*domain.Topic, error)

	// Default return values
	Topics       []domain.Topic
	DefaultError error
}

var _ service.TopicService = (*MockTopicService)(nil)

// ListTopics implements the TopicService.ListTopics method
func (m *MockTopicService) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	if m.ListTopicsFn != nil {
		return m.ListTopicsFn(ctx)
	}
	return m.Topics, m.DefaultError
}

// CreateTopic implements the TopicService.CreateTopic method. Without a
// configured function it echoes the input back.
func (m *MockTopicService) CreateTopic(ctx context.Context, topic domain.Topic) (*domain.Topic, error) {
	if m.CreateTopicFn != nil {
		return m.CreateTopicFn(ctx, topic)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}
	return &topic, nil
}
