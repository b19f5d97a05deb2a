//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/platform/postgres"
	"github.com/newsboard/newsboard-api/internal/query"
	"github.com/newsboard/newsboard-api/internal/store"
	"github.com/newsboard/newsboard-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *sql.DB

func TestMain(m *testing.M) {
	os.Exit(testdb.Main(m, &testDB))
}

func defaultArticleFilter() query.ArticleFilter {
	return query.ArticleFilter{Page: query.Page{Limit: query.DefaultLimit}}
}

func TestArticleStoreIntegration(t *testing.T) {
	testdb.Reset(t, testDB)
	ctx := context.Background()
	articles := postgres.NewPostgresArticleStore(testDB, testdb.Logger(), "")

	t.Run("default listing is newest first with live comment counts", func(t *testing.T) {
		got, err := articles.List(ctx, defaultArticleFilter())
		require.NoError(t, err)
		require.Len(t, got, len(testdb.Articles))

		for i := 1; i < len(got); i++ {
			assert.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt))
		}
		for _, a := range got {
			assert.Equal(t, testdb.CommentCount(a.ID), a.CommentCount, "article %d", a.ID)
			assert.Empty(t, a.Body)
		}

		total, err := articles.Count(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, testdb.CountRows(t, testDB, "articles"), total)
	})

	t.Run("topic filter sort and pagination", func(t *testing.T) {
		f := query.ArticleFilter{
			Topic:  "mitch",
			SortBy: query.ArticleSortArticleID,
			Order:  query.Ascending,
			Page:   query.Page{Limit: 2, Number: 2},
		}
		got, err := articles.List(ctx, f)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 3, got[0].ID)
		assert.Equal(t, 4, got[1].ID)

		total, err := articles.Count(ctx, "mitch")
		require.NoError(t, err)
		assert.Equal(t, 5, total)
	})

	t.Run("sort by comment count", func(t *testing.T) {
		f := defaultArticleFilter()
		f.SortBy = query.ArticleSortCommentCount
		got, err := articles.List(ctx, f)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("topic without articles yields an empty page", func(t *testing.T) {
		f := defaultArticleFilter()
		f.Topic = "paper"
		got, err := articles.List(ctx, f)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("get by id", func(t *testing.T) {
		a, err := articles.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, testdb.Articles[0].Title, a.Title)
		assert.Equal(t, testdb.Articles[0].Body, a.Body)
		assert.Equal(t, 3, a.CommentCount)
		assert.Equal(t, domain.DefaultArticleImageURL, a.ArticleImgURL)

		_, err = articles.GetByID(ctx, 1000)
		assert.ErrorIs(t, err, store.ErrArticleIDNotFound)
	})

	t.Run("create applies defaults", func(t *testing.T) {
		a, err := articles.Create(ctx, domain.Article{
			Author: "lurker", Title: "Fresh", Body: "new", Topic: "paper",
		})
		require.NoError(t, err)
		assert.Equal(t, len(testdb.Articles)+1, a.ID)
		assert.Zero(t, a.Votes)
		assert.Zero(t, a.CommentCount)
		assert.Equal(t, domain.DefaultArticleImageURL, a.ArticleImgURL)
		assert.False(t, a.CreatedAt.IsZero())
	})

	t.Run("image url has no column default", func(t *testing.T) {
		_, err := testDB.ExecContext(ctx,
			`INSERT INTO articles (title, topic, author, body) VALUES ('x', 'mitch', 'lurker', 'x')`)
		assert.Error(t, err)
	})

	t.Run("create with unknown references leaves no row", func(t *testing.T) {
		before := testdb.CountRows(t, testDB, "articles")

		_, err := articles.Create(ctx, domain.Article{
			Author: "nobody", Title: "x", Body: "x", Topic: "mitch",
		})
		assert.ErrorIs(t, err, store.ErrInvalidReference)

		_, err = articles.Create(ctx, domain.Article{
			Author: "lurker", Title: "x", Body: "x", Topic: "dogs",
		})
		assert.ErrorIs(t, err, store.ErrInvalidReference)

		assert.Equal(t, before, testdb.CountRows(t, testDB, "articles"))
	})

	t.Run("votes", func(t *testing.T) {
		a, err := articles.IncrementVotes(ctx, 1, -100)
		require.NoError(t, err)
		assert.Equal(t, 0, a.Votes)
		assert.Equal(t, 3, a.CommentCount)

		_, err = articles.IncrementVotes(ctx, 1000, 1)
		assert.ErrorIs(t, err, store.ErrArticleIDNotFound)
	})
}

func TestVoteDeltasCommute(t *testing.T) {
	ctx := context.Background()
	articles := postgres.NewPostgresArticleStore(testDB, testdb.Logger(), "")

	apply := func(deltas ...int) int {
		testdb.Reset(t, testDB)
		var votes int
		for _, d := range deltas {
			a, err := articles.IncrementVotes(ctx, 2, d)
			require.NoError(t, err)
			votes = a.Votes
		}
		return votes
	}

	assert.Equal(t, apply(5, -3), apply(-3, 5))
	assert.Equal(t, testdb.Articles[1].Votes+2, apply(5, -3))
}

func TestCommentStoreIntegration(t *testing.T) {
	testdb.Reset(t, testDB)
	ctx := context.Background()
	comments := postgres.NewPostgresCommentStore(testDB, testdb.Logger())

	t.Run("list newest first", func(t *testing.T) {
		got, err := comments.ListByArticle(ctx, 1, query.CommentFilter{Page: query.Page{Limit: 10}})
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i := 1; i < len(got); i++ {
			assert.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt))
		}

		n, err := comments.CountByArticle(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("article without comments", func(t *testing.T) {
		got, err := comments.ListByArticle(ctx, 2, query.CommentFilter{Page: query.Page{Limit: 10}})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("create", func(t *testing.T) {
		c, err := comments.Create(ctx, 2, "lurker", "first")
		require.NoError(t, err)
		assert.Equal(t, 2, c.ArticleID)
		assert.Equal(t, "lurker", c.Author)
		assert.Zero(t, c.Votes)
	})

	t.Run("create with unknown references leaves no row", func(t *testing.T) {
		before := testdb.CountRows(t, testDB, "comments")

		_, err := comments.Create(ctx, 1000, "lurker", "x")
		assert.ErrorIs(t, err, store.ErrInvalidReference)
		_, err = comments.Create(ctx, 1, "nobody", "x")
		assert.ErrorIs(t, err, store.ErrInvalidReference)

		assert.Equal(t, before, testdb.CountRows(t, testDB, "comments"))
	})

	t.Run("votes and delete", func(t *testing.T) {
		c, err := comments.IncrementVotes(ctx, 1, 4)
		require.NoError(t, err)
		assert.Equal(t, 20, c.Votes)

		require.NoError(t, comments.Delete(ctx, 1))
		assert.ErrorIs(t, comments.Delete(ctx, 1), store.ErrCommentNotFound)
		_, err = comments.IncrementVotes(ctx, 1, 1)
		assert.ErrorIs(t, err, store.ErrCommentNotFound)
	})
}

func TestTopicRoundTrip(t *testing.T) {
	testdb.Reset(t, testDB)
	ctx := context.Background()
	topics := postgres.NewPostgresTopicStore(testDB, testdb.Logger())

	created, err := topics.Create(ctx, domain.Topic{Slug: "dogs", Description: "Not cats"})
	require.NoError(t, err)
	assert.Equal(t, "dogs", created.Slug)

	all, err := topics.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, all, domain.Topic{Slug: "dogs", Description: "Not cats"})

	_, err = topics.Create(ctx, domain.Topic{Slug: "dogs", Description: "again"})
	assert.ErrorIs(t, err, store.ErrTopicExists)
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestUserStoreIntegration(t *testing.T) {
	testdb.Reset(t, testDB)
	ctx := context.Background()
	users := postgres.NewPostgresUserStore(testDB, testdb.Logger())

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(testdb.Users))

	u, err := users.GetByUsername(ctx, "lurker")
	require.NoError(t, err)
	assert.Equal(t, "do_nothing", u.Name)
	assert.Empty(t, u.AvatarURL)

	_, err = users.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestExistenceCheckerIntegration(t *testing.T) {
	testdb.Reset(t, testDB)
	checker := postgres.NewExistenceChecker(testDB, testdb.Logger())
	ctx := context.Background()

	for _, tc := range []struct {
		ref   query.Reference
		value any
		want  bool
	}{
		{query.TopicSlug, "paper", true},
		{query.TopicSlug, "dogs", false},
		{query.ArticleID, 2, true},
		{query.ArticleID, 1000, false},
		{query.UserUsername, "lurker", true},
		{query.CommentID, 1000, false},
	} {
		got, err := checker.Exists(ctx, tc.ref, tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v %v", tc.ref, tc.value)
	}
}

func TestArticleDeleteRemovesComments(t *testing.T) {
	testdb.Reset(t, testDB)
	ctx := context.Background()
	articles := postgres.NewPostgresArticleStore(testDB, testdb.Logger(), "")
	comments := postgres.NewPostgresCommentStore(testDB, testdb.Logger())

	err := store.RunInTransaction(ctx, testDB, func(ctx context.Context, tx *sql.Tx) error {
		n, err := comments.WithTx(tx).DeleteByArticle(ctx, 1)
		if err != nil {
			return err
		}
		assert.EqualValues(t, 3, n)
		return articles.WithTx(tx).Delete(ctx, 1)
	})
	require.NoError(t, err)

	_, err = articles.GetByID(ctx, 1)
	assert.ErrorIs(t, err, store.ErrArticleIDNotFound)
	assert.Equal(t, len(testdb.Comments)-3, testdb.CountRows(t, testDB, "comments"))

	assert.ErrorIs(t, articles.Delete(ctx, 1), store.ErrArticleNotFound)
}

func TestStoresAcceptTransactions(t *testing.T) {
	testdb.Reset(t, testDB)
	ctx := context.Background()

	testdb.WithTx(t, testDB, func(t *testing.T, tx *sql.Tx) {
		topics := postgres.NewPostgresTopicStore(tx, testdb.Logger())
		_, err := topics.Create(ctx, domain.Topic{Slug: "birds", Description: "tweet"})
		require.NoError(t, err)

		inTx, err := topics.List(ctx)
		require.NoError(t, err)
		assert.Len(t, inTx, len(testdb.Topics)+1)
	})

	assert.Equal(t, len(testdb.Topics), testdb.CountRows(t, testDB, "topics"))
}
