package domain

import "time"

// Comment is a reply posted by a user on an article.
type Comment struct {
	ID        int
	ArticleID int
	Author    string
	Body      string
	Votes     int
	CreatedAt time.Time
}
