package logger

import (
	"context"
	"log/slog"
)

// Redaction is the replacement value for redacted attributes.
const Redaction = "***"

// DefaultRedactedKeys returns the attribute keys treated as personally
// identifiable information by default.
func DefaultRedactedKeys() []string {
	return []string{"name", "email", "phone", "ssn", "password"}
}

// RedactingHandler wraps a slog.Handler and replaces the values of
// configured attribute keys with Redaction before records reach the
// underlying handler. Group members are redacted recursively, so
// slog.Group("user", slog.String("email", ...)) is masked too.
type RedactingHandler struct {
	next slog.Handler
	keys map[string]struct{}
}

// NewRedactingHandler creates a redacting decorator over next.
func NewRedactingHandler(next slog.Handler, keys ...string) *RedactingHandler {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return &RedactingHandler{next: next, keys: set}
}

func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle rewrites the record with redacted attributes and delegates.
func (h *RedactingHandler) Handle(ctx context.Context, rec slog.Record) error {
	clean := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(attr slog.Attr) bool {
		clean.AddAttrs(h.redact(attr))
		return true
	})
	return h.next.Handle(ctx, clean)
}

// WithAttrs redacts the static attributes before handing them down, so
// attributes attached via Logger.With are masked like per-record ones.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		clean[i] = h.redact(attr)
	}
	return &RedactingHandler{next: h.next.WithAttrs(clean), keys: h.keys}
}

func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{next: h.next.WithGroup(name), keys: h.keys}
}

// redact masks the attribute value when its key is in the redacted set and
// descends into groups otherwise.
func (h *RedactingHandler) redact(attr slog.Attr) slog.Attr {
	if _, ok := h.keys[attr.Key]; ok {
		return slog.String(attr.Key, Redaction)
	}
	if attr.Value.Kind() == slog.KindGroup {
		members := attr.Value.Group()
		clean := make([]slog.Attr, len(members))
		for i, member := range members {
			clean[i] = h.redact(member)
		}
		return slog.Attr{Key: attr.Key, Value: slog.GroupValue(clean...)}
	}
	return attr
}

// Compile-time interface assertion
var _ slog.Handler = (*RedactingHandler)(nil)
