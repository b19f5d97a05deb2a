package query

// CommentFilter is the validated form of comment listing parameters.
type CommentFilter struct {
	SortBy CommentSort
	Order  Order
	Page   Page
}

const commentColumns = "comments.comment_id, comments.article_id, comments.author, comments.body, comments.votes, comments.created_at"

// ListComments selects one page of comments on an article.
func ListComments(articleID int, f CommentFilter) Query {
	var b builder
	b.write("SELECT ", commentColumns, "\nFROM comments\nWHERE comments.article_id = ", b.bind(articleID))
	b.write("\nORDER BY ", f.SortBy.column(), " ", f.Order.keyword())
	if f.SortBy != CommentSortCreatedAt {
		b.write(", comments.created_at DESC")
	}

	b.write("\nLIMIT ", b.bind(f.Page.limit()))
	if offset, ok := f.Page.Offset(); ok {
		b.write(" OFFSET ", b.bind(offset))
	}

	return b.query()
}

// CountComments counts all comments on an article.
func CountComments(articleID int) Query {
	var b builder
	b.write("SELECT COUNT(*)::INT FROM comments WHERE comments.article_id = ", b.bind(articleID))
	return b.query()
}

// InsertComment adds a comment to an article and returns the stored row.
func InsertComment(articleID int, author, body string) Query {
	var b builder
	b.write("INSERT INTO comments (article_id, author, body)\nVALUES (",
		b.bind(articleID), ", ",
		b.bind(author), ", ",
		b.bind(body), ")\nRETURNING ", commentColumns)
	return b.query()
}

// IncrementCommentVotes adds delta to a comment's votes and returns the
// updated row.
func IncrementCommentVotes(id, delta int) Query {
	var b builder
	b.write("UPDATE comments SET votes = votes + ", b.bind(delta),
		"\nWHERE comment_id = ", b.bind(id),
		"\nRETURNING ", commentColumns)
	return b.query()
}

// DeleteComment removes a single comment.
func DeleteComment(id int) Query {
	var b builder
	b.write("DELETE FROM comments WHERE comment_id = ", b.bind(id))
	return b.query()
}

// DeleteArticleComments removes every comment on an article.
func DeleteArticleComments(articleID int) Query {
	var b builder
	b.write("DELETE FROM comments WHERE article_id = ", b.bind(articleID))
	return b.query()
}
