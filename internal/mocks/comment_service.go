package mocks

import (
	"context"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/query"
	"github.com/newsboard/newsboard-api/internal/service"
)

// MockCommentService implements service.CommentService for testing
type MockCommentService struct {
	ListCommentsFn  func(ctx context.Context, articleID int, filter query.CommentFilter) (*service.CommentPage, error)
	AddCommentFn    func(ctx context.Context, articleID int, author, body string) (*domain.Comment, error)
	VoteOnCommentFn func(ctx context.Context, id, delta int) (*domain.Comment, error)
	DeleteCommentFn func(ctx context.Context, id int) error

	// Default return values
	Page         *service.CommentPage
	Comment      *domain.Comment
	DefaultError error
}

var _ service.CommentService = (*MockCommentService)(nil)

// ListComments implements the CommentService.ListComments method
func (m *MockCommentService) ListComments(
	ctx context.Context,
	articleID int,
	filter query.CommentFilter,
) (*service.CommentPage, error) {
	if m.ListCommentsFn != nil {
		return m.ListCommentsFn(ctx, articleID, filter)
	}
	return m.Page, m.DefaultError
}

// AddComment implements the CommentService.AddComment method
func (m *MockCommentService) AddComment(
	ctx context.Context,
	articleID int,
	author, body string,
) (*domain.Comment, error) {
	if m.AddCommentFn != nil {
		return m.AddCommentFn(ctx, articleID, author, body)
	}
	return m.Comment, m.DefaultError
}

// VoteOnComment implements the CommentService.VoteOnComment method
func (m *MockCommentService) VoteOnComment(ctx context.Context, id, delta int) (*domain.Comment, error) {
	if m.VoteOnCommentFn != nil {
		return m.VoteOnCommentFn(ctx, id, delta)
	}
	return m.Comment, m.DefaultError
}

// DeleteComment implements the CommentService.DeleteComment method
func (m *MockCommentService) DeleteComment(ctx context.Context, id int) error {
	if m.DeleteCommentFn != nil {
		return m.DeleteCommentFn(ctx, id)
	}
	return m.DefaultError
}
