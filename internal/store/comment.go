package store

import (
	"context"
	"database/sql"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/query"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// ListByArticle returns one page of comments on an article. It does not
	// check that the article exists.
	ListByArticle(ctx context.Context, articleID int, filter query.CommentFilter) ([]domain.Comment, error)

	// CountByArticle returns the number of comments on an article.
	CountByArticle(ctx context.Context, articleID int) (int, error)

	// Create inserts a comment and returns the stored row.
	// Returns ErrInvalidReference if the article or author does not exist.
	Create(ctx context.Context, articleID int, author, body string) (*domain.Comment, error)

	// IncrementVotes adds delta to the comment's votes and returns the updated row.
	// Returns ErrCommentNotFound if the comment does not exist.
	IncrementVotes(ctx context.Context, id, delta int) (*domain.Comment, error)

	// Delete removes a comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, id int) error

	// DeleteByArticle removes every comment on an article and reports how many went.
	DeleteByArticle(ctx context.Context, articleID int) (int64, error)

	// WithTx returns a new CommentStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CommentStore
}
