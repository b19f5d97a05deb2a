package service

import (
	"context"
	"database/sql"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/query"
	"github.com/newsboard/newsboard-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockTopicStore mocks the store.TopicStore interface
type MockTopicStore struct {
	mock.Mock
}

func (m *MockTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Topic), args.Error(1)
}

func (m *MockTopicStore) Create(ctx context.Context, topic domain.Topic) (*domain.Topic, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Topic), args.Error(1)
}

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockArticleStore mocks the store.ArticleStore interface
type MockArticleStore struct {
	mock.Mock
}

func (m *MockArticleStore) List(ctx context.Context, filter query.ArticleFilter) ([]domain.Article, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *MockArticleStore) Count(ctx context.Context, topic string) (int, error) {
	args := m.Called(ctx, topic)
	return args.Int(0), args.Error(1)
}

func (m *MockArticleStore) GetByID(ctx context.Context, id int) (*domain.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleStore) Create(ctx context.Context, article domain.Article) (*domain.Article, error) {
	args := m.Called(ctx, article)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleStore) IncrementVotes(ctx context.Context, id, delta int) (*domain.Article, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleStore) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx returns the mock itself so expectations cover transactional calls.
func (m *MockArticleStore) WithTx(tx *sql.Tx) store.ArticleStore {
	m.Called(tx)
	return m
}

// MockCommentStore mocks the store.CommentStore interface
type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) ListByArticle(
	ctx context.Context,
	articleID int,
	filter query.CommentFilter,
) ([]domain.Comment, error) {
	args := m.Called(ctx, articleID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommentStore) CountByArticle(ctx context.Context, articleID int) (int, error) {
	args := m.Called(ctx, articleID)
	return args.Int(0), args.Error(1)
}

func (m *MockCommentStore) Create(
	ctx context.Context,
	articleID int,
	author, body string,
) (*domain.Comment, error) {
	args := m.Called(ctx, articleID, author, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentStore) IncrementVotes(ctx context.Context, id, delta int) (*domain.Comment, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentStore) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentStore) DeleteByArticle(ctx context.Context, articleID int) (int64, error) {
	args := m.Called(ctx, articleID)
	return args.Get(0).(int64), args.Error(1)
}

// WithTx returns the mock itself so expectations cover transactional calls.
func (m *MockCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	m.Called(tx)
	return m
}

// MockExistenceChecker mocks the store.ExistenceChecker interface
type MockExistenceChecker struct {
	mock.Mock
}

func (m *MockExistenceChecker) Exists(ctx context.Context, ref query.Reference, value any) (bool, error) {
	args := m.Called(ctx, ref, value)
	return args.Bool(0), args.Error(1)
}
