package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/newsboard/newsboard-api/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(rec *metrics.Recorder) http.Handler {
	r := chi.NewRouter()
	r.Use(rec.Middleware)
	r.Get("/api/articles/{article_id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
	return r
}

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	rec := metrics.NewRecorder()
	router := newRouter(rec)

	for _, target := range []string{"/api/articles/1", "/api/articles/2", "/health"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	expected := `
# HELP newsboard_http_requests_total HTTP requests processed, by method, route and status.
# TYPE newsboard_http_requests_total counter
newsboard_http_requests_total{method="GET",route="/api/articles/{article_id}",status="404"} 2
newsboard_http_requests_total{method="GET",route="/health",status="200"} 1
`
	require.NoError(t, testutil.GatherAndCompare(rec.Registry(), strings.NewReader(expected),
		"newsboard_http_requests_total"))
}

func TestMiddlewareUnmatchedRoute(t *testing.T) {
	rec := metrics.NewRecorder()
	router := newRouter(rec)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/1", nil))

	count, err := testutil.GatherAndCount(rec.Registry(), "newsboard_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	expected := `
# HELP newsboard_http_requests_total HTTP requests processed, by method, route and status.
# TYPE newsboard_http_requests_total counter
newsboard_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(rec.Registry(), strings.NewReader(expected),
		"newsboard_http_requests_total"))
}

func TestHandlerExposesMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	newRouter(rec).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "newsboard_http_request_duration_seconds")
	assert.Contains(t, string(body), "go_goroutines")
}
