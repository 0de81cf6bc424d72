package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"addressbook/config"
	"addressbook/internal/errors"
	logs "addressbook/internal/infra/log"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// statementLogger routes GORM output to slog. Statements run with a request context
// are logged through that request's logger, so they carry its request id and username.
type statementLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &statementLogger{
		base:          base,
		level:         logger.Warn,
		slowThreshold: defaultSlowQueryThreshold,
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Env.Log.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Env.Log.SlowQueryThreshold
	}

	return l
}

func (l *statementLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *statementLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *statementLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *statementLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *statementLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	out := l.loggerFor(ctx)
	if l.level < threshold || out == nil {
		return
	}

	out.LogAttrs(ctx, level, "database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs one statement: failures at error, slow statements at warn, the rest
// only in debug mode. A missing row is an expected outcome, not a failure.
func (l *statementLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	out := l.loggerFor(ctx)
	if out == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(statementAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		out.LogAttrs(ctx, slog.LevelError, "database statement failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(statementAttrs(sqlAndRowsFn, elapsed), slog.Duration("slow_threshold", l.slowThreshold))
		out.LogAttrs(ctx, slog.LevelWarn, "database statement slow", attrs...)
	case l.level >= logger.Info:
		out.LogAttrs(ctx, slog.LevelDebug, "database statement", statementAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *statementLogger) loggerFor(ctx context.Context) *slog.Logger {
	if scoped := logs.FromContext(ctx); scoped != nil {
		return scoped
	}

	return l.base
}

func statementAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
