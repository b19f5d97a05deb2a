package query

import "github.com/newsboard/newsboard-api/internal/domain"

// ArticleFilter is the validated form of GET /api/articles query parameters.
type ArticleFilter struct {
	Topic  string
	SortBy ArticleSort
	Order  Order
	Page   Page
}

// articleColumns is the full article projection shared by single-row reads
// and writes. Stores scan it in this order followed by comment_count.
const articleColumns = `articles.article_id, articles.title, articles.topic, articles.author,
	articles.body, articles.created_at, articles.votes, articles.article_img_url`

// ListArticles selects one page of article summaries with their comment
// counts. The body column is not part of the listing.
func ListArticles(f ArticleFilter) Query {
	var b builder
	b.write(`SELECT articles.author, articles.title, articles.article_id, articles.topic,
	articles.created_at, articles.votes, articles.article_img_url,
	COUNT(comments.comment_id)::INT AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id`)

	if f.Topic != "" {
		b.write("\nWHERE articles.topic = ", b.bind(f.Topic))
	}

	b.write("\nGROUP BY articles.article_id")
	b.write("\nORDER BY ", f.SortBy.column(), " ", f.Order.keyword())
	if f.SortBy != ArticleSortCreatedAt {
		b.write(", articles.created_at DESC")
	}

	b.write("\nLIMIT ", b.bind(f.Page.limit()))
	if offset, ok := f.Page.Offset(); ok {
		b.write(" OFFSET ", b.bind(offset))
	}

	return b.query()
}

// CountArticles counts every article matching the topic filter, ignoring
// pagination. An empty topic counts all articles.
func CountArticles(topic string) Query {
	var b builder
	b.write("SELECT COUNT(*)::INT FROM articles")
	if topic != "" {
		b.write(" WHERE articles.topic = ", b.bind(topic))
	}
	return b.query()
}

// GetArticle selects a single article with its live comment count.
func GetArticle(id int) Query {
	var b builder
	b.write("SELECT ", articleColumns, `,
	COUNT(comments.comment_id)::INT AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id
WHERE articles.article_id = `, b.bind(id), `
GROUP BY articles.article_id`)
	return b.query()
}

// InsertArticle inserts a new article and returns the stored row. An empty
// image URL is replaced by defaultImage.
func InsertArticle(a domain.Article, defaultImage string) Query {
	img := a.ArticleImgURL
	if img == "" {
		img = defaultImage
	}

	var b builder
	b.write("INSERT INTO articles (title, topic, author, body, article_img_url)\nVALUES (",
		b.bind(a.Title), ", ",
		b.bind(a.Topic), ", ",
		b.bind(a.Author), ", ",
		b.bind(a.Body), ", ",
		b.bind(img), ")\nRETURNING ", articleColumns)
	return b.query()
}

// IncrementArticleVotes adds delta to an article's votes and returns the
// updated row with its comment count in the same statement.
func IncrementArticleVotes(id, delta int) Query {
	var b builder
	b.write(`WITH updated AS (
	UPDATE articles SET votes = votes + `, b.bind(delta), `
	WHERE article_id = `, b.bind(id), `
	RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
)
SELECT `, articleColumns, `,
	(SELECT COUNT(*) FROM comments WHERE comments.article_id = articles.article_id)::INT AS comment_count
FROM updated AS articles`)
	return b.query()
}

// DeleteArticle removes a single article.
func DeleteArticle(id int) Query {
	var b builder
	b.write("DELETE FROM articles WHERE article_id = ", b.bind(id))
	return b.query()
}
