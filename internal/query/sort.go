package query

import (
	"strings"

	"github.com/newsboard/newsboard-api/internal/domain"
)

// Order is a sort direction.
type Order int

const (
	// Descending is the default order.
	Descending Order = iota
	Ascending
)

// ParseOrder accepts "asc" or "desc" in any case. An empty token selects
// Descending.
func ParseOrder(token string) (Order, error) {
	switch strings.ToLower(token) {
	case "", "desc":
		return Descending, nil
	case "asc":
		return Ascending, nil
	default:
		return Descending, domain.NewValidationError("order", "must be asc or desc", domain.ErrBadSort)
	}
}

func (o Order) String() string {
	if o == Ascending {
		return "asc"
	}
	return "desc"
}

func (o Order) keyword() string {
	if o == Ascending {
		return "ASC"
	}
	return "DESC"
}

// ArticleSort enumerates the columns an article listing may be sorted by.
type ArticleSort int

const (
	ArticleSortCreatedAt ArticleSort = iota
	ArticleSortAuthor
	ArticleSortTitle
	ArticleSortArticleID
	ArticleSortTopic
	ArticleSortVotes
	ArticleSortArticleImgURL
	ArticleSortCommentCount
)

var articleSorts = []struct {
	token  string
	column string
}{
	ArticleSortCreatedAt:     {"created_at", "articles.created_at"},
	ArticleSortAuthor:        {"author", "articles.author"},
	ArticleSortTitle:         {"title", "articles.title"},
	ArticleSortArticleID:     {"article_id", "articles.article_id"},
	ArticleSortTopic:         {"topic", "articles.topic"},
	ArticleSortVotes:         {"votes", "articles.votes"},
	ArticleSortArticleImgURL: {"article_img_url", "articles.article_img_url"},
	ArticleSortCommentCount:  {"comment_count", "comment_count"},
}

// ParseArticleSort maps a sort_by token to its column. An empty token
// selects created_at.
func ParseArticleSort(token string) (ArticleSort, error) {
	if token == "" {
		return ArticleSortCreatedAt, nil
	}
	for i, s := range articleSorts {
		if s.token == token {
			return ArticleSort(i), nil
		}
	}
	return ArticleSortCreatedAt, domain.NewValidationError("sort_by", "is not a sortable article column", domain.ErrBadSort)
}

func (s ArticleSort) String() string {
	return articleSorts[s].token
}

func (s ArticleSort) column() string {
	return articleSorts[s].column
}

// CommentSort enumerates the columns a comment listing may be sorted by.
type CommentSort int

const (
	CommentSortCreatedAt CommentSort = iota
	CommentSortCommentID
	CommentSortArticleID
	CommentSortAuthor
	CommentSortBody
	CommentSortVotes
)

var commentSorts = []struct {
	token  string
	column string
}{
	CommentSortCreatedAt: {"created_at", "comments.created_at"},
	CommentSortCommentID: {"comment_id", "comments.comment_id"},
	CommentSortArticleID: {"article_id", "comments.article_id"},
	CommentSortAuthor:    {"author", "comments.author"},
	CommentSortBody:      {"body", "comments.body"},
	CommentSortVotes:     {"votes", "comments.votes"},
}

// ParseCommentSort maps a sort_by token to its column. An empty token
// selects created_at.
func ParseCommentSort(token string) (CommentSort, error) {
	if token == "" {
		return CommentSortCreatedAt, nil
	}
	for i, s := range commentSorts {
		if s.token == token {
			return CommentSort(i), nil
		}
	}
	return CommentSortCreatedAt, domain.NewValidationError("sort_by", "is not a sortable comment column", domain.ErrBadSort)
}

func (s CommentSort) String() string {
	return commentSorts[s].token
}

func (s CommentSort) column() string {
	return commentSorts[s].column
}
