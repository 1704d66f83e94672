package logger

import (
	"io"
	"log/slog"
	"os"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

type config struct {
	level    slog.Level
	format   Format
	output   io.Writer
	attrs    []slog.Attr
	redacted []string
}

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

func WithFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithRedactedKeys replaces the default set of redacted attribute keys.
func WithRedactedKeys(keys ...string) Option {
	return func(c *config) {
		c.redacted = keys
	}
}

// New creates a slog.Logger: JSON at info level on stdout unless
// configured otherwise, with PII redaction applied last so it sees every
// attribute, including the static ones.
func New(opts ...Option) *slog.Logger {
	c := &config{
		level:    slog.LevelInfo,
		format:   FormatJSON,
		output:   os.Stdout,
		redacted: DefaultRedactedKeys(),
	}
	for _, opt := range opts {
		opt(c)
	}

	var handler slog.Handler
	handlerOpts := &slog.HandlerOptions{Level: c.level}
	switch c.format {
	case FormatText:
		handler = slog.NewTextHandler(c.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(c.output, handlerOpts)
	}

	if len(c.redacted) > 0 {
		handler = NewRedactingHandler(handler, c.redacted...)
	}
	if len(c.attrs) > 0 {
		handler = handler.WithAttrs(c.attrs)
	}

	return slog.New(handler)
}
