package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/newsboard/newsboard-api/internal/api"
	apiMiddleware "github.com/newsboard/newsboard-api/internal/api/middleware"
	"github.com/newsboard/newsboard-api/internal/platform/metrics"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	return newRouter(app.logger, app.metrics, app.handlers)
}

func newRouter(logger *slog.Logger, recorder *metrics.Recorder, handlers api.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(logger))
	r.Use(recorder.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", slog.String("error", err.Error()))
		}
	})
	r.Method(http.MethodGet, "/metrics", recorder.Handler())

	api.RegisterRoutes(r, handlers)

	return r
}
