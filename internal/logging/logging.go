// Package logging builds the structured logger used across the service.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/forgo/users/api/internal/requestctx"
)

// Options configures New
type Options struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// New returns a logger and the LevelVar that controls it. The level can be
// changed at runtime through the returned LevelVar.
func New(opts Options) (*slog.Logger, *slog.LevelVar, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	levelVar := new(slog.LevelVar)
	levelVar.Set(lvl)
	handlerOpts := &slog.HandlerOptions{Level: levelVar}

	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(out, handlerOpts)
	} else {
		h = slog.NewTextHandler(out, handlerOpts)
	}
	return slog.New(&ContextHandler{Handler: h}), levelVar, nil
}

// ParseLevel maps a level name to a slog.Level. "trace" is accepted as an
// alias for debug.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// ContextHandler adds the request id carried by the record's context
type ContextHandler struct {
	slog.Handler
}

// Handle implements slog.Handler
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := requestctx.RequestID(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

// WithAttrs implements slog.Handler
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}
