package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/newsboard/newsboard-api/internal/api"
	"github.com/newsboard/newsboard-api/internal/config"
	"github.com/newsboard/newsboard-api/internal/platform/metrics"
	"github.com/newsboard/newsboard-api/internal/platform/postgres"
	"github.com/newsboard/newsboard-api/internal/service"
)

// application holds the shared dependencies and releases them on shutdown.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	db      *sql.DB
	metrics *metrics.Recorder

	handlers api.Handlers
}

// newApplication opens the database and wires stores, services and
// handlers.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := postgres.Open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	handlers, err := buildHandlers(db, cfg, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		metrics:  metrics.NewRecorder(),
		handlers: handlers,
	}, nil
}

// buildHandlers constructs the store, service and handler layers over db.
func buildHandlers(db *sql.DB, cfg *config.Config, logger *slog.Logger) (api.Handlers, error) {
	topicStore := postgres.NewPostgresTopicStore(db, logger)
	userStore := postgres.NewPostgresUserStore(db, logger)
	articleStore := postgres.NewPostgresArticleStore(db, logger, cfg.Article.DefaultImageURL)
	commentStore := postgres.NewPostgresCommentStore(db, logger)
	checker := postgres.NewExistenceChecker(db, logger)

	topicService, err := service.NewTopicService(topicStore, logger)
	if err != nil {
		return api.Handlers{}, fmt.Errorf("failed to create topic service: %w", err)
	}
	userService, err := service.NewUserService(userStore, logger)
	if err != nil {
		return api.Handlers{}, fmt.Errorf("failed to create user service: %w", err)
	}
	articleService, err := service.NewArticleService(db, articleStore, commentStore, checker, logger)
	if err != nil {
		return api.Handlers{}, fmt.Errorf("failed to create article service: %w", err)
	}
	commentService, err := service.NewCommentService(commentStore, checker, logger)
	if err != nil {
		return api.Handlers{}, fmt.Errorf("failed to create comment service: %w", err)
	}

	return api.Handlers{
		Topics:   api.NewTopicHandler(topicService, logger),
		Articles: api.NewArticleHandler(articleService, logger),
		Comments: api.NewCommentHandler(commentService, logger),
		Users:    api.NewUserHandler(userService, logger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", slog.String("error", err.Error()))
		}
	}
}
