package log

import (
	"io"
	"log/slog"
	"strings"
)

// Format selects the output encoding of log records.
type Format int

const (
	// FormatText emits human-readable key=value records.
	FormatText Format = iota

	// FormatJSON emits one JSON object per record.
	FormatJSON
)

// ParseFormat maps a flag string to a [Format]. Unrecognized values fall
// back to [FormatText].
func ParseFormat(s string) Format {
	if strings.EqualFold(s, "json") {
		return FormatJSON
	}

	return FormatText
}

// ParseLevel maps a flag string to a [slog.Level]. Unrecognized values
// fall back to [slog.LevelInfo].
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type config struct {
	writer io.Writer
	format Format
	level  slog.Level
}

// Option configures a [Logger] built by [Make] or [Config].
type Option func(*config)

// WithFormat sets the record encoding.
func WithFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// WithLevel sets the minimum record level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithWriter sets the record destination.
func WithWriter(w io.Writer) Option {
	return func(c *config) { c.writer = w }
}

func (c *config) handler() slog.Handler {
	opts := &slog.HandlerOptions{Level: c.level}

	if c.format == FormatJSON {
		return slog.NewJSONHandler(c.writer, opts)
	}

	return slog.NewTextHandler(c.writer, opts)
}
