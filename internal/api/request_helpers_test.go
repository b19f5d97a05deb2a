package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIncVotes(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "absent", raw: "", want: 0},
		{name: "null", raw: "null", want: 0},
		{name: "positive", raw: "5", want: 5},
		{name: "negative", raw: "-100", want: -100},
		{name: "numeric string", raw: `"7"`, want: 7},
		{name: "negative numeric string", raw: `" -3 "`, want: -3},
		{name: "word", raw: `"ten"`, wantErr: true},
		{name: "integral float", raw: "1.0", want: 1},
		{name: "negative integral float", raw: "-2.0", want: -2},
		{name: "exponent", raw: "1e2", want: 100},
		{name: "fraction", raw: "1.5", wantErr: true},
		{name: "float string", raw: `"1.0"`, wantErr: true},
		{name: "float overflow", raw: "3e9", wantErr: true},
		{name: "boolean", raw: "true", wantErr: true},
		{name: "object", raw: `{"n":1}`, wantErr: true},
		{name: "overflow", raw: "99999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIncVotes(json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeVoteDeltaIgnoresOtherFields(t *testing.T) {
	r := httptest.NewRequest(http.MethodPatch, "/api/articles/1",
		strings.NewReader(`{"inc_votes": 2, "title": "renamed", "votes": 1000}`))

	delta, err := decodeVoteDelta(r)
	require.NoError(t, err)
	assert.Equal(t, 2, delta)
}

func TestDecodeVoteDeltaEmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPatch, "/api/articles/1", strings.NewReader(`{}`))

	delta, err := decodeVoteDelta(r)
	require.NoError(t, err)
	assert.Zero(t, delta)
}

func TestParseArticleFilter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/articles", nil)

		f, err := parseArticleFilter(r)
		require.NoError(t, err)
		assert.Equal(t, query.ArticleFilter{
			SortBy: query.ArticleSortCreatedAt,
			Order:  query.Descending,
			Page:   query.Page{Limit: query.DefaultLimit},
		}, f)
	})

	t.Run("all parameters", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet,
			"/api/articles?topic=cats&sort_by=votes&order=ASC&limit=5&p=3", nil)

		f, err := parseArticleFilter(r)
		require.NoError(t, err)
		assert.Equal(t, "cats", f.Topic)
		assert.Equal(t, query.ArticleSortVotes, f.SortBy)
		assert.Equal(t, query.Ascending, f.Order)
		assert.Equal(t, query.Page{Limit: 5, Number: 3}, f.Page)
	})

	t.Run("errors", func(t *testing.T) {
		cases := map[string]error{
			"/api/articles?sort_by=body":         domain.ErrBadSort,
			"/api/articles?sort_by=votes%20DESC": domain.ErrBadSort,
			"/api/articles?order=sideways":       domain.ErrBadSort,
			"/api/articles?limit=ten":            domain.ErrInvalidRequest,
			"/api/articles?limit=0":              domain.ErrInvalidRequest,
			"/api/articles?p=-1":                 domain.ErrInvalidRequest,
			"/api/articles?sort_by=votes&p=x1":   domain.ErrInvalidRequest,
		}
		for target, want := range cases {
			r := httptest.NewRequest(http.MethodGet, target, nil)
			_, err := parseArticleFilter(r)
			assert.ErrorIs(t, err, want, target)
		}
	})
}

func TestParseCommentFilter(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/articles/1/comments?sort_by=votes&limit=2&p=2", nil)

	f, err := parseCommentFilter(r)
	require.NoError(t, err)
	assert.Equal(t, query.CommentSortVotes, f.SortBy)
	assert.Equal(t, query.Page{Limit: 2, Number: 2}, f.Page)

	r = httptest.NewRequest(http.MethodGet, "/api/articles/1/comments?sort_by=topic", nil)
	_, err = parseCommentFilter(r)
	assert.ErrorIs(t, err, domain.ErrBadSort)
}
