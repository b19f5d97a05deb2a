//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// Fixture data loaded by Reset. Ids are assigned in slice order starting
// at 1.
var (
	Topics = []domain.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "paper", Description: "what books are made of"},
	}

	Users = []domain.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/butter_bridge.jpg"},
		{Username: "icellusedkars", Name: "sam", AvatarURL: "https://example.com/icellusedkars.png"},
		{Username: "rogersop", Name: "paul", AvatarURL: "https://example.com/rogersop.jpg"},
		{Username: "lurker", Name: "do_nothing"},
	}

	Articles = []domain.Article{
		{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge",
			Body: "I find this existence challenging", CreatedAt: at(2020, 7, 9), Votes: 100},
		{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars",
			Body: "Call me Mitchell.", CreatedAt: at(2020, 10, 16)},
		{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars",
			Body: "some gifs", CreatedAt: at(2020, 11, 3)},
		{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop",
			Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: at(2020, 5, 6)},
		{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop",
			Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: at(2020, 8, 3)},
		{Title: "A", Topic: "mitch", Author: "icellusedkars",
			Body: "Delicious tin of cat food", CreatedAt: at(2020, 1, 4)},
	}

	// Article 2 deliberately has no comments.
	Comments = []domain.Comment{
		{ArticleID: 1, Author: "butter_bridge", Body: "Oh, I've got compassion running out of my nose, pal!",
			Votes: 16, CreatedAt: at(2020, 4, 6)},
		{ArticleID: 1, Author: "icellusedkars", Body: "Replacing the quiet elegance of the dark suit and tie.",
			Votes: 14, CreatedAt: at(2020, 10, 31)},
		{ArticleID: 1, Author: "icellusedkars", Body: "Lobster pot", Votes: 0, CreatedAt: at(2020, 5, 15)},
		{ArticleID: 3, Author: "icellusedkars", Body: "Ambidextrous marsupial", Votes: 0, CreatedAt: at(2020, 9, 19)},
		{ArticleID: 3, Author: "rogersop", Body: "git push origin master", Votes: 0, CreatedAt: at(2020, 6, 20)},
		{ArticleID: 5, Author: "butter_bridge", Body: "What do you see? I have no idea where this will lead us.",
			Votes: 16, CreatedAt: at(2020, 6, 9)},
	}
)

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// CommentCount returns the fixture comment count of the article with id.
func CommentCount(articleID int) int {
	n := 0
	for _, c := range Comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n
}

// Seed truncates every table and loads the fixture data.
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	for _, t := range Topics {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO topics (slug, description) VALUES ($1, $2)`, t.Slug, t.Description); err != nil {
			return fmt.Errorf("failed to seed topic %s: %w", t.Slug, err)
		}
	}

	for _, u := range Users {
		var avatar sql.NullString
		if u.AvatarURL != "" {
			avatar = sql.NullString{String: u.AvatarURL, Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`,
			u.Username, u.Name, avatar); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Username, err)
		}
	}

	for _, a := range Articles {
		imgURL := a.ArticleImgURL
		if imgURL == "" {
			imgURL = domain.DefaultArticleImageURL
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			a.Title, a.Topic, a.Author, a.Body, a.CreatedAt, a.Votes, imgURL); err != nil {
			return fmt.Errorf("failed to seed article %q: %w", a.Title, err)
		}
	}

	for _, c := range Comments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO comments (article_id, author, body, votes, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			c.ArticleID, c.Author, c.Body, c.Votes, c.CreatedAt); err != nil {
			return fmt.Errorf("failed to seed comment on article %d: %w", c.ArticleID, err)
		}
	}

	return tx.Commit()
}

// Reset reseeds db for the calling test.
func Reset(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	require.NoError(t, Seed(ctx, db), "failed to seed fixtures")
}

// CountRows returns the number of rows in table. table must be one of the
// fixture tables.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	switch table {
	case "topics", "users", "articles", "comments":
	default:
		t.Fatalf("unknown table %q", table)
	}

	var n int
	err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}
