package query

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Reference names a lookup column used to confirm that a row exists.
type Reference struct {
	Table  string
	Column string
}

// References checked by the application.
var (
	TopicSlug    = Reference{Table: "topics", Column: "slug"}
	ArticleID    = Reference{Table: "articles", Column: "article_id"}
	UserUsername = Reference{Table: "users", Column: "username"}
	CommentID    = Reference{Table: "comments", Column: "comment_id"}
)

func (r Reference) String() string {
	return r.Table + "." + r.Column
}

// Exists reports whether at least one row of ref matches value. Table and
// column names are quoted; the value is bound.
func Exists(ref Reference, value any) Query {
	return Query{
		SQL: fmt.Sprintf(
			"SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
			pgx.Identifier{ref.Table}.Sanitize(),
			pgx.Identifier{ref.Column}.Sanitize(),
		),
		Args: []any{value},
	}
}
