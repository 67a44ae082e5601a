package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Ledger statements are single-row lookups and updates.
const ledgerSlowQueryThreshold = 100 * time.Millisecond

// ledgerLogger routes gorm output to slog, preferring the request logger so
// ledger queries carry the request ID.
type ledgerLogger struct {
	base  *slog.Logger
	level logger.LogLevel
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &ledgerLogger{base: base.With(slog.String("component", "checkout_ledger")), level: level}
}

func (l *ledgerLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &ledgerLogger{base: l.base, level: level}
}

func (l *ledgerLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *ledgerLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *ledgerLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *ledgerLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < min {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, slow statements, and every statement in debug mode.
// A missing record is how FindByKey reports an unknown key, so it is not a failure.
func (l *ledgerLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	var (
		level slog.Level
		msg   string
	)
	switch {
	case failed && l.level >= logger.Error:
		level, msg = slog.LevelError, "Ledger query failed"
	case elapsed > ledgerSlowQueryThreshold && l.level >= logger.Warn:
		level, msg = slog.LevelWarn, "Ledger query slow"
	case l.level >= logger.Info:
		level, msg = slog.LevelDebug, "Ledger query"
	default:
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if failed {
		attrs = append(attrs, slog.Any("error", err))
	}

	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *ledgerLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
