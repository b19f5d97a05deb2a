package domain

import "time"

// DefaultArticleImageURL is used for articles created without an image.
const DefaultArticleImageURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is a post written by a user under a topic.
//
// CommentCount is derived from the live comments table on every read and is
// never stored.
type Article struct {
	ID            int
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAt     time.Time
	Votes         int
	ArticleImgURL string
	CommentCount  int
}
