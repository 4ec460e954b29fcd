package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dreamtree/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// slowQueryThreshold marks statements worth a warning. Connection callbacks
// and sync passes both sit on request paths, so slow SQL surfaces early.
const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger adapts GORM's logger interface onto the service's slog
// logger, so SQL logs carry the same shape as every other log line.
type gormSlogLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		base:          base,
		level:         level,
		slowThreshold: slowQueryThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) log(ctx context.Context, minLevel logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < minLevel {
		return
	}

	l.base.LogAttrs(ctx, level, "GORM message",
		slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs one finished statement: errors first, then slow queries, and the
// full query stream only when the level allows it.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fn func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case l.traceworthyError(err):
		l.base.LogAttrs(ctx, slog.LevelError, "Query failed",
			append(queryAttrs(fn, elapsed), slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.base.LogAttrs(ctx, slog.LevelWarn, "Slow query",
			append(queryAttrs(fn, elapsed), slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		l.base.LogAttrs(ctx, slog.LevelInfo, "Query", queryAttrs(fn, elapsed)...)
	}
}

// traceworthyError filters gorm.ErrRecordNotFound, which legitimate lookups
// (an unknown state token, a user with no session) produce constantly.
func (l *gormSlogLogger) traceworthyError(err error) bool {
	if err == nil || l.level < logger.Error {
		return false
	}

	return !errors.Is(err, gorm.ErrRecordNotFound)
}

func queryAttrs(fn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sqlText, rows := fn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sqlText),
	}
}
