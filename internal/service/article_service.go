package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/platform/logger"
	"github.com/newsboard/newsboard-api/internal/query"
	"github.com/newsboard/newsboard-api/internal/store"
)

// ArticlePage is one page of articles together with the number of articles
// matching the filter across all pages.
type ArticlePage struct {
	Articles []domain.Article
	Total    int
}

// ArticleService provides article-related operations
type ArticleService interface {
	// ListArticles returns a page of articles. An unknown topic filter yields
	// store.ErrTopicNotFound; a known topic with no articles yields an empty page.
	ListArticles(ctx context.Context, filter query.ArticleFilter) (*ArticlePage, error)

	// GetArticle returns one article with its comment count.
	GetArticle(ctx context.Context, id int) (*domain.Article, error)

	// CreateArticle inserts an article. Unknown authors or topics yield
	// store.ErrInvalidReference.
	CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error)

	// VoteOnArticle adds delta to the article's votes.
	VoteOnArticle(ctx context.Context, id, delta int) (*domain.Article, error)

	// DeleteArticle removes an article and all of its comments atomically.
	DeleteArticle(ctx context.Context, id int) error
}

type articleServiceImpl struct {
	db       *sql.DB
	articles store.ArticleStore
	comments store.CommentStore
	checker  store.ExistenceChecker
	logger   *slog.Logger
}

// NewArticleService creates a new ArticleService.
// It returns an error if any of the required dependencies are nil.
func NewArticleService(
	db *sql.DB,
	articles store.ArticleStore,
	comments store.CommentStore,
	checker store.ExistenceChecker,
	logger *slog.Logger,
) (ArticleService, error) {
	if db == nil {
		return nil, nilDependency("article", "db")
	}
	if articles == nil {
		return nil, nilDependency("article", "articleStore")
	}
	if comments == nil {
		return nil, nilDependency("article", "commentStore")
	}
	if checker == nil {
		return nil, nilDependency("article", "existenceChecker")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &articleServiceImpl{
		db:       db,
		articles: articles,
		comments: comments,
		checker:  checker,
		logger:   logger.With(slog.String("component", "article_service")),
	}, nil
}

// ListArticles implements ArticleService.ListArticles
func (s *articleServiceImpl) ListArticles(
	ctx context.Context,
	filter query.ArticleFilter,
) (*ArticlePage, error) {
	articles, err := s.articles.List(ctx, filter)
	if err != nil {
		return nil, NewServiceError("article", "list_articles", "failed to list articles", err)
	}

	// An empty page is ambiguous only when a topic filter is in play.
	if len(articles) == 0 && filter.Topic != "" {
		err := store.RequireExists(ctx, s.checker, query.TopicSlug, filter.Topic, store.ErrTopicNotFound)
		if err != nil {
			return nil, NewServiceError("article", "list_articles", "topic filter rejected", err)
		}
	}

	total, err := s.articles.Count(ctx, filter.Topic)
	if err != nil {
		return nil, NewServiceError("article", "list_articles", "failed to count articles", err)
	}

	return &ArticlePage{Articles: articles, Total: total}, nil
}

// GetArticle implements ArticleService.GetArticle
func (s *articleServiceImpl) GetArticle(ctx context.Context, id int) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("article", "get_article", "failed to get article", err)
	}
	return article, nil
}

// CreateArticle implements ArticleService.CreateArticle
func (s *articleServiceImpl) CreateArticle(
	ctx context.Context,
	article domain.Article,
) (*domain.Article, error) {
	created, err := s.articles.Create(ctx, article)
	if err != nil {
		return nil, NewServiceError("article", "create_article", "failed to create article", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("article created",
		slog.Int("article_id", created.ID),
		slog.String("topic", created.Topic))
	return created, nil
}

// VoteOnArticle implements ArticleService.VoteOnArticle
func (s *articleServiceImpl) VoteOnArticle(ctx context.Context, id, delta int) (*domain.Article, error) {
	article, err := s.articles.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, NewServiceError("article", "vote_on_article", "failed to update votes", err)
	}
	return article, nil
}

// DeleteArticle implements ArticleService.DeleteArticle
// Comments are removed first so the foreign key holds; a missing article
// rolls the comment deletion back.
func (s *articleServiceImpl) DeleteArticle(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var removed int64
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		n, err := s.comments.WithTx(tx).DeleteByArticle(ctx, id)
		if err != nil {
			return err
		}
		removed = n
		return s.articles.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return NewServiceError("article", "delete_article", "failed to delete article", err)
	}

	log.Info("article deleted",
		slog.Int("article_id", id),
		slog.Int64("comments_removed", removed))
	return nil
}
