// Package log provides a concurrency-safe wrapper over log/slog with
// functional-option configuration shared by the library and the CLI.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger wraps slog.Logger with the package configuration applied.
// The zero value discards all records.
type Logger struct {
	*slog.Logger
}

// Make creates a new [Logger] that writes to the specified writer.
// The defaults are [FormatText] at [slog.LevelInfo]; override them with
// [WithFormat] and [WithLevel].
func Make(w io.Writer, opts ...Option) Logger {
	cfg := config{
		writer: w,
		format: FormatText,
		level:  slog.LevelInfo,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return Logger{Logger: slog.New(cfg.handler())}
}

// Wrap returns a new [Logger] that includes the given attributes in each
// log message.
func (l Logger) Wrap(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	return Logger{Logger: slog.New(l.Handler().WithAttrs(attrs))}
}

// Enabled reports whether the logger emits records at the given level.
func (l Logger) Enabled(ctx context.Context, level slog.Level) bool {
	if l.Logger == nil {
		return false
	}

	return l.Handler().Enabled(ctx, level)
}

// LogAttrs emits a record if the logger is configured; the zero Logger
// drops it.
func (l Logger) LogAttrs(
	ctx context.Context,
	level slog.Level,
	msg string,
	attrs ...slog.Attr,
) {
	if l.Logger == nil {
		return
	}

	l.Logger.LogAttrs(ctx, level, msg, attrs...)
}

// The package-level default logger, replaceable via [Config].
//
//nolint:gochecknoglobals
var defaultLogger atomic.Pointer[Logger]

//nolint:gochecknoinits
func init() {
	l := Make(os.Stderr)
	defaultLogger.Store(&l)
}

// Config replaces the package default logger with one built from opts,
// writing to stderr.
func Config(opts ...Option) {
	l := Make(os.Stderr, opts...)
	defaultLogger.Store(&l)
}

// Default returns the package default logger.
func Default() Logger { return *defaultLogger.Load() }

// Debug logs at [slog.LevelDebug] using the package default logger.
func Debug(msg string, attrs ...slog.Attr) {
	Default().LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// Info logs at [slog.LevelInfo] using the package default logger.
func Info(msg string, attrs ...slog.Attr) {
	Default().LogAttrs(context.Background(), slog.LevelInfo, msg, attrs...)
}

// Warn logs at [slog.LevelWarn] using the package default logger.
func Warn(msg string, attrs ...slog.Attr) {
	Default().LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
}

// Error logs at [slog.LevelError] using the package default logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

// DebugContext logs at [slog.LevelDebug] with the given context.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
