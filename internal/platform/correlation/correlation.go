// Package correlation tags each request with a short ID that follows it into
// every log line written with the request context.
package correlation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

const (
	// Header carries the ID in and out of the server.
	Header = "X-Request-ID"
	// AttrKey is the log attribute the ID is written under.
	AttrKey = "correlation_id"

	maxIncomingLen = 64
)

type ctxKey struct{}

// NewID returns a fresh 8-character hex ID.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// FromHeader keeps an ID supplied by a proxy or client when it is short and
// limited to [A-Za-z0-9_-]; anything else is replaced by a new ID.
func FromHeader(raw string) string {
	if raw == "" || len(raw) > maxIncomingLen {
		return NewID()
	}
	for _, r := range raw {
		ok := r == '-' || r == '_' ||
			(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !ok {
			return NewID()
		}
	}
	return raw
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// ID reports the ID stored in ctx; an empty ID counts as absent.
func ID(ctx context.Context) (string, bool) {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id, id != ""
}

// Handler decorates another slog.Handler with the context's ID.
type Handler struct {
	next slog.Handler
}

func NewHandler(next slog.Handler) *Handler {
	return &Handler{next: next}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := ID(ctx); ok {
		r = r.Clone()
		r.AddAttrs(slog.String(AttrKey, id))
	}
	if err := h.next.Handle(ctx, r); err != nil {
		return fmt.Errorf("write log record: %w", err)
	}
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewHandler(h.next.WithAttrs(attrs))
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return NewHandler(h.next.WithGroup(name))
}
