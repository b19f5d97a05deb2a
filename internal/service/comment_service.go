package service

import (
	"context"
	"log/slog"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/platform/logger"
	"github.com/newsboard/newsboard-api/internal/query"
	"github.com/newsboard/newsboard-api/internal/store"
)

// CommentPage is one page of an article's comments together with the total
// number of comments on the article.
type CommentPage struct {
	Comments []domain.Comment
	Total    int
}

// CommentService provides comment-related operations
type CommentService interface {
	// ListComments returns a page of comments on an article. Returns
	// store.ErrArticleIDNotFound if the article does not exist.
	ListComments(ctx context.Context, articleID int, filter query.CommentFilter) (*CommentPage, error)

	// AddComment posts a comment. Unknown articles or authors yield
	// store.ErrInvalidReference.
	AddComment(ctx context.Context, articleID int, author, body string) (*domain.Comment, error)

	// VoteOnComment adds delta to the comment's votes.
	VoteOnComment(ctx context.Context, id, delta int) (*domain.Comment, error)

	// DeleteComment removes a comment.
	DeleteComment(ctx context.Context, id int) error
}

type commentServiceImpl struct {
	comments store.CommentStore
	checker  store.ExistenceChecker
	logger   *slog.Logger
}

// NewCommentService creates a new CommentService.
// It returns an error if any of the required dependencies are nil.
func NewCommentService(
	comments store.CommentStore,
	checker store.ExistenceChecker,
	logger *slog.Logger,
) (CommentService, error) {
	if comments == nil {
		return nil, nilDependency("comment", "commentStore")
	}
	if checker == nil {
		return nil, nilDependency("comment", "existenceChecker")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &commentServiceImpl{
		comments: comments,
		checker:  checker,
		logger:   logger.With(slog.String("component", "comment_service")),
	}, nil
}

// ListComments implements CommentService.ListComments
func (s *commentServiceImpl) ListComments(
	ctx context.Context,
	articleID int,
	filter query.CommentFilter,
) (*CommentPage, error) {
	err := store.RequireExists(ctx, s.checker, query.ArticleID, articleID, store.ErrArticleIDNotFound)
	if err != nil {
		return nil, NewServiceError("comment", "list_comments", "article lookup failed", err)
	}

	comments, err := s.comments.ListByArticle(ctx, articleID, filter)
	if err != nil {
		return nil, NewServiceError("comment", "list_comments", "failed to list comments", err)
	}

	total, err := s.comments.CountByArticle(ctx, articleID)
	if err != nil {
		return nil, NewServiceError("comment", "list_comments", "failed to count comments", err)
	}

	return &CommentPage{Comments: comments, Total: total}, nil
}

// AddComment implements CommentService.AddComment
func (s *commentServiceImpl) AddComment(
	ctx context.Context,
	articleID int,
	author, body string,
) (*domain.Comment, error) {
	comment, err := s.comments.Create(ctx, articleID, author, body)
	if err != nil {
		return nil, NewServiceError("comment", "add_comment", "failed to create comment", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("comment created",
		slog.Int("comment_id", comment.ID),
		slog.Int("article_id", articleID))
	return comment, nil
}

// VoteOnComment implements CommentService.VoteOnComment
func (s *commentServiceImpl) VoteOnComment(ctx context.Context, id, delta int) (*domain.Comment, error) {
	comment, err := s.comments.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, NewServiceError("comment", "vote_on_comment", "failed to update votes", err)
	}
	return comment, nil
}

// DeleteComment implements CommentService.DeleteComment
func (s *commentServiceImpl) DeleteComment(ctx context.Context, id int) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		return NewServiceError("comment", "delete_comment", "failed to delete comment", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("comment deleted", slog.Int("comment_id", id))
	return nil
}
