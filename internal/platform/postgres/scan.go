package postgres

import (
	"database/sql"
	"fmt"

	"github.com/newsboard/newsboard-api/internal/domain"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanArticle reads the full article projection, optionally followed by
// comment_count.
func scanArticle(row rowScanner, withCount bool) (*domain.Article, error) {
	var a domain.Article
	dest := []any{
		&a.ID, &a.Title, &a.Topic, &a.Author,
		&a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	}
	if withCount {
		dest = append(dest, &a.CommentCount)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &a, nil
}

// scanArticleSummary reads one row of the article listing, which omits body.
func scanArticleSummary(row rowScanner) (domain.Article, error) {
	var a domain.Article
	err := row.Scan(
		&a.Author, &a.Title, &a.ID, &a.Topic,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	return a, err
}

func scanComment(row rowScanner) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u      domain.User
		avatar sql.NullString
	)
	if err := row.Scan(&u.Username, &u.Name, &avatar); err != nil {
		return nil, err
	}
	u.AvatarURL = avatar.String
	return &u, nil
}

// collect scans every row with fn and closes rows.
func collect[T any](rows *sql.Rows, fn func(rowScanner) (T, error)) ([]T, error) {
	defer func() { _ = rows.Close() }()

	items := []T{}
	for rows.Next() {
		item, err := fn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return items, nil
}
