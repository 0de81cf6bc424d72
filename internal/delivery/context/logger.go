package context

import (
	"context"
	"log/slog"

	logs "addressbook/internal/infra/log"
)

// WithLogger returns a new context with the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logs.WithContext(ctx, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := logs.FromContext(ctx); logger != nil {
		return logger
	}

	return fallback
}
