package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"audiotour/config"
	"audiotour/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Catalog lookups are single indexed reads; anything slower is worth a warning.
const catalogSlowQuery = 100 * time.Millisecond

// gormSlogLogger routes GORM output through slog. Missing routes are an
// expected outcome of FindRouteByID and are not logged as failures.
type gormSlogLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
	slow   time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger: base.With(slog.String("component", "route_catalog")),
		level:  level,
		slow:   catalogSlowQuery,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		l.query(ctx, slog.LevelError, "Catalog query failed", sqlAndRows, elapsed, slog.String("error", err.Error()))
	case elapsed > l.slow && l.level >= logger.Warn:
		l.query(ctx, slog.LevelWarn, "Slow catalog query", sqlAndRows, elapsed, slog.Duration("threshold", l.slow))
	case l.level >= logger.Info:
		l.query(ctx, slog.LevelDebug, "Catalog query", sqlAndRows, elapsed)
	}
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf(msg, args...))
}

func (l *gormSlogLogger) query(ctx context.Context, level slog.Level, msg string, sqlAndRows func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := sqlAndRows()
	attrs := append([]slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}
