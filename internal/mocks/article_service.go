package mocks

import (
	"context"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/query"
	"github.com/newsboard/newsboard-api/internal/service"
)

// MockArticleService implements service.ArticleService for testing
type MockArticleService struct {
	ListArticlesFn  func(ctx context.Context, filter query.ArticleFilter) (*service.ArticlePage, error)
	GetArticleFn    func(ctx context.Context, id int) (*domain.Article, error)
	CreateArticleFn func(ctx context.Context, article domain.Article) (*domain.Article, error)
	VoteOnArticleFn func(ctx context.Context, id, delta int) (*domain.Article, error)
	DeleteArticleFn func(ctx context.Context, id int) error

	// Default return values
	Page         *service.ArticlePage
	Article      *domain.Article
	DefaultError error
}

var _ service.ArticleService = (*MockArticleService)(nil)

// ListArticles implements the ArticleService.ListArticles method
func (m *MockArticleService) ListArticles(
	ctx context.Context,
	filter query.ArticleFilter,
) (*service.ArticlePage, error) {
	if m.ListArticlesFn != nil {
		return m.ListArticlesFn(ctx, filter)
	}
	return m.Page, m.DefaultError
}

// GetArticle implements the ArticleService.GetArticle method
func (m *MockArticleService) GetArticle(ctx context.Context, id int) (*domain.Article, error) {
	if m.GetArticleFn != nil {
		return m.GetArticleFn(ctx, id)
	}
	return m.Article, m.DefaultError
}

// CreateArticle implements the ArticleService.CreateArticle method
func (m *MockArticleService) CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	if m.CreateArticleFn != nil {
		return m.CreateArticleFn(ctx, article)
	}
	return m.Article, m.DefaultError
}

// VoteOnArticle implements the ArticleService.VoteOnArticle method
func (m *MockArticleService) VoteOnArticle(ctx context.Context, id, delta int) (*domain.Article, error) {
	if m.VoteOnArticleFn != nil {
		return m.VoteOnArticleFn(ctx, id, delta)
	}
	return m.Article, m.DefaultError
}

// DeleteArticle implements the ArticleService.DeleteArticle method
func (m *MockArticleService) DeleteArticle(ctx context.Context, id int) error {
	if m.DeleteArticleFn != nil {
		return m.DeleteArticleFn(ctx, id)
	}
	return m.DefaultError
}
