package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/newsboard/newsboard-api/internal/api/shared"
	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/query"
)

// Path and query parameter names.
const (
	paramArticleID = "article_id"
	paramCommentID = "comment_id"
	paramUsername  = "username"

	queryTopic  = "topic"
	querySortBy = "sort_by"
	queryOrder  = "order"
	queryLimit  = "limit"
	queryPage   = "p"
)

// getPathID extracts an integer id from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int, error) {
	return query.ParseID(paramName, chi.URLParam(r, paramName))
}

// parseArticleFilter reads the GET /api/articles query string.
func parseArticleFilter(r *http.Request) (query.ArticleFilter, error) {
	q := r.URL.Query()

	sortBy, err := query.ParseArticleSort(q.Get(querySortBy))
	if err != nil {
		return query.ArticleFilter{}, err
	}
	order, err := query.ParseOrder(q.Get(queryOrder))
	if err != nil {
		return query.ArticleFilter{}, err
	}
	page, err := query.ParsePage(q.Get(queryLimit), q.Get(queryPage))
	if err != nil {
		return query.ArticleFilter{}, err
	}

	return query.ArticleFilter{
		Topic:  q.Get(queryTopic),
		SortBy: sortBy,
		Order:  order,
		Page:   page,
	}, nil
}

// parseCommentFilter reads the comment listing query string.
func parseCommentFilter(r *http.Request) (query.CommentFilter, error) {
	q := r.URL.Query()

	sortBy, err := query.ParseCommentSort(q.Get(querySortBy))
	if err != nil {
		return query.CommentFilter{}, err
	}
	order, err := query.ParseOrder(q.Get(queryOrder))
	if err != nil {
		return query.CommentFilter{}, err
	}
	page, err := query.ParsePage(q.Get(queryLimit), q.Get(queryPage))
	if err != nil {
		return query.CommentFilter{}, err
	}

	return query.CommentFilter{SortBy: sortBy, Order: order, Page: page}, nil
}

// decodeAndValidate decodes the body into v and checks its required fields.
func decodeAndValidate(r *http.Request, v any) error {
	if err := shared.DecodeJSON(r, v); err != nil {
		return err
	}
	return shared.ValidateRequest(v)
}

// decodeVoteDelta reads inc_votes from a PATCH body. Absent or null means 0.
func decodeVoteDelta(r *http.Request) (int, error) {
	var req VoteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return 0, err
	}
	return parseIncVotes(req.IncVotes)
}

// parseIncVotes accepts a JSON integer or a string holding one. A bare JSON
// number with an integral value such as 1.0 or 1e2 also counts; strings must
// hold plain decimal digits.
func parseIncVotes(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}

	text := string(raw)
	quoted := strings.HasPrefix(text, `"`)
	if quoted {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, domain.NewValidationError("inc_votes", "is not a string", domain.ErrInvalidRequest)
		}
		text = strings.TrimSpace(text)
	}

	delta, err := strconv.ParseInt(text, 10, 32)
	if err == nil {
		return int(delta), nil
	}
	if !quoted {
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr == nil && f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32 {
			return int(f), nil
		}
	}
	return 0, domain.NewValidationError("inc_votes", "must be an integer", domain.ErrInvalidRequest)
}
