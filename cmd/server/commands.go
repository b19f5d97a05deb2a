package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/newsboard/newsboard-api/internal/config"
	"github.com/newsboard/newsboard-api/internal/platform/logger"
	"github.com/newsboard/newsboard-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

// newRootCommand builds the CLI. Running the binary without a subcommand
// starts the server.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "newsboard",
		Short: "Newsboard discussion board API",
		Long: `Newsboard serves a REST API for topics, articles, comments and users
backed by PostgreSQL.

Configuration is read from config.yaml, .env and NEWSBOARD_* environment
variables.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(newServeCommand(), newMigrateCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [" + strings.Join(postgres.MigrationCommands, "|") + "] [args...]",
		Short: "Run database migrations",
		Long: `Run the embedded goose migrations against the configured database.

Examples:
  newsboard migrate up       # apply pending migrations
  newsboard migrate status   # show applied and pending migrations
  newsboard migrate down     # roll back the latest migration`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: postgres.MigrationCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), args[0], args[1:]...)
		},
	}
}

// bootstrap loads configuration and installs the default logger.
func bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))
	return cfg, log, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.cleanup()

	return app.startHTTPServer(ctx, app.setupRouter())
}

func runMigrate(ctx context.Context, command string, args ...string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := postgres.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return postgres.Migrate(ctx, db, log, command, args...)
}
