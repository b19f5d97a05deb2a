package store

import (
	"context"
	"database/sql"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/query"
)

// ArticleStore defines the interface for article data persistence.
type ArticleStore interface {
	// List returns one page of articles matching the filter. Body is not
	// populated; CommentCount is.
	List(ctx context.Context, filter query.ArticleFilter) ([]domain.Article, error)

	// Count returns the number of articles matching topic, ignoring pagination.
	Count(ctx context.Context, topic string) (int, error)

	// GetByID retrieves an article with its comment count.
	// Returns ErrArticleIDNotFound if the article does not exist.
	GetByID(ctx context.Context, id int) (*domain.Article, error)

	// Create inserts an article and returns the stored row.
	// Returns ErrInvalidReference if the author or topic does not exist.
	Create(ctx context.Context, article domain.Article) (*domain.Article, error)

	// IncrementVotes adds delta to the article's votes and returns the updated row.
	// Returns ErrArticleIDNotFound if the article does not exist.
	IncrementVotes(ctx context.Context, id, delta int) (*domain.Article, error)

	// Delete removes an article. Its comments must already be gone.
	// Returns ErrArticleNotFound if the article does not exist.
	Delete(ctx context.Context, id int) error

	// WithTx returns a new ArticleStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ArticleStore
}
