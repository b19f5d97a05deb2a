package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/newsboard/newsboard-api/internal/config"
	"github.com/newsboard/newsboard-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for name, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(name), "level %q", name)
	}
}

func TestNewWritesJSONAtConfiguredLevel(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	var buf bytes.Buffer
	l := logger.New(&buf, config.ServerConfig{LogLevel: "warn"})

	l.Info("hidden")
	l.Warn("shown", "article_id", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.EqualValues(t, 3, entry["article_id"])

	assert.Same(t, l, slog.Default(), "New should install the logger as default")
}

func TestNewTextFormat(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	var buf bytes.Buffer
	l := logger.New(&buf, config.ServerConfig{LogLevel: "info", LogFormat: "text"})
	l.Info("hello", "topic", "cats")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "topic=cats")
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil)).With("trace_id", "abc")

	ctx := logger.WithLogger(context.Background(), l)
	assert.Same(t, l, logger.FromContext(ctx))

	fallback := slog.New(slog.NewJSONHandler(&buf, nil))
	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
}
