// Package logger provides structured logging for the application.
//
// It builds a log/slog logger from configuration and carries request-scoped
// loggers through context.Context so handlers and stores can log with the
// request's trace ID attached.
package logger
