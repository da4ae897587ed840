package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/eventplan-api/internal/platform/logger"
	"github.com/phrazzld/eventplan-api/internal/redact"
)

// NewRequestLogger returns chi's RequestLogger backed by slog. Each request
// is logged once on completion through the request-scoped logger, so apply
// it after NewTraceMiddleware to carry the trace ID.
func NewRequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return chimiddleware.RequestLogger(&slogFormatter{base: base})
}

type slogFormatter struct {
	base *slog.Logger
}

// NewLogEntry implements chimiddleware.LogFormatter.
func (f *slogFormatter) NewLogEntry(r *http.Request) chimiddleware.LogEntry {
	return &slogEntry{
		ctx: r.Context(),
		log: logger.FromContextOrDefault(r.Context(), f.base).With(
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", chimiddleware.GetReqID(r.Context())),
		),
	}
}

type slogEntry struct {
	ctx context.Context
	log *slog.Logger
}

func (e *slogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ any) {
	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	e.log.LogAttrs(e.ctx, level, "request completed",
		slog.Int("status", status),
		slog.Int("bytes", bytes),
		slog.Float64("duration_ms", float64(elapsed.Microseconds())/1000),
	)
}

func (e *slogEntry) Panic(v any, stack []byte) {
	e.log.LogAttrs(e.ctx, slog.LevelError, "panic recovered",
		slog.String("panic", redact.String(fmt.Sprint(v))),
		slog.String("stack", string(stack)),
	)
}
