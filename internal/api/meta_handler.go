package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/eventplan-api/internal/api/shared"
	"github.com/phrazzld/eventplan-api/internal/platform/logger"
)

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

const healthPingTimeout = 2 * time.Second

// MetaHandler serves the informational routes and the not-found fallback.
type MetaHandler struct {
	db              Pinger
	availableRoutes []string
	now             func() time.Time
	logger          *slog.Logger
}

// NewMetaHandler creates a MetaHandler. db may be nil when no database
// connection could be opened; health then reports it as down.
func NewMetaHandler(db Pinger, availableRoutes []string, log *slog.Logger) *MetaHandler {
	if log == nil {
		log = slog.Default()
	}
	return &MetaHandler{
		db:              db,
		availableRoutes: availableRoutes,
		now:             func() time.Time { return time.Now().UTC() },
		logger:          log.With("component", "meta_handler"),
	}
}

// Health handles GET /health. It answers 200 even when the database is down.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "Health check working!",
		Timestamp: h.now(),
		Database:  h.databaseStatus(r.Context()),
	})
}

func (h *MetaHandler) databaseStatus(ctx context.Context) string {
	if h.db == nil {
		return "down"
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("database ping failed", logger.Err(err))
		return "down"
	}
	return "up"
}

// Root handles GET /.
func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{
		Message:         "Server is running!",
		AvailableRoutes: h.availableRoutes,
		Timestamp:       h.now(),
	})
}

// Test handles GET /test.
func (h *MetaHandler) Test(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, TestResponse{
		Message: "Test route working!",
		Path:    r.URL.Path,
	})
}

// NotFound answers every unmatched method and path.
func (h *MetaHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusNotFound, NotFoundResponse{
		Error:           "Route not found",
		RequestedPath:   r.URL.Path,
		AvailableRoutes: h.availableRoutes,
	})
}
