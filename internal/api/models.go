package api

import (
	"encoding/json"
	"time"

	"github.com/newsboard/newsboard-api/internal/domain"
)

// Request bodies

// CreateTopicRequest defines the payload for POST /api/topics.
type CreateTopicRequest struct {
	Slug        string `json:"slug"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

// CreateArticleRequest defines the payload for POST /api/articles.
type CreateArticleRequest struct {
	Author        string `json:"author"          validate:"required"`
	Title         string `json:"title"           validate:"required"`
	Body          string `json:"body"            validate:"required"`
	Topic         string `json:"topic"           validate:"required"`
	ArticleImgURL string `json:"article_img_url"`
}

// CreateCommentRequest defines the payload for POST /api/articles/{id}/comments.
type CreateCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body"     validate:"required"`
}

// VoteRequest defines the payload for PATCH on articles and comments. The
// raw value lets numeric strings through; parseIncVotes decides.
type VoteRequest struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}

// Resources

// TopicResponse represents a topic.
type TopicResponse struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// UserResponse represents a user.
type UserResponse struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ArticleSummaryResponse is an article as it appears in listings, without body.
type ArticleSummaryResponse struct {
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	ArticleID     int       `json:"article_id"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// ArticleResponse is a single article including its body.
type ArticleResponse struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// CommentResponse represents a comment.
type CommentResponse struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// Envelopes

type topicsEnvelope struct {
	Topics []TopicResponse `json:"topics"`
}

type topicEnvelope struct {
	Topic TopicResponse `json:"topic"`
}

type usersEnvelope struct {
	Users []UserResponse `json:"users"`
}

type userEnvelope struct {
	User UserResponse `json:"user"`
}

type articlesEnvelope struct {
	Articles      []ArticleSummaryResponse `json:"articles"`
	ArticlesCount int                      `json:"articlesCount"`
}

type articleEnvelope struct {
	Article ArticleResponse `json:"article"`
}

type commentsEnvelope struct {
	Comments     []CommentResponse `json:"comments"`
	CommentCount int               `json:"commentCount"`
}

type commentEnvelope struct {
	Comment CommentResponse `json:"comment"`
}

type endpointsEnvelope struct {
	Endpoints json.RawMessage `json:"endpoints"`
}

// Assemblers

func topicToResponse(t domain.Topic) TopicResponse {
	return TopicResponse{Slug: t.Slug, Description: t.Description}
}

func userToResponse(u domain.User) UserResponse {
	return UserResponse{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL}
}

func articleToSummary(a domain.Article) ArticleSummaryResponse {
	return ArticleSummaryResponse{
		Author:        a.Author,
		Title:         a.Title,
		ArticleID:     a.ID,
		Topic:         a.Topic,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
		CommentCount:  a.CommentCount,
	}
}

func articleToResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ArticleID:     a.ID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		Body:          a.Body,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
		CommentCount:  a.CommentCount,
	}
}

func commentToResponse(c domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID: c.ID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Body:      c.Body,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
	}
}

// mapSlice converts every element with fn, returning an empty (not nil)
// slice so lists always encode as [].
func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
