package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/eventplan-api/internal/api/middleware"
	"github.com/phrazzld/eventplan-api/internal/service"
)

// Route is one entry of the routing table.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// String formats the route as "METHOD /pattern".
func (rt Route) String() string {
	return rt.Method + " " + rt.Pattern
}

// RouterConfig holds the collaborators and settings of the router.
type RouterConfig struct {
	Users  service.UserService
	Events service.EventService
	// DB is pinged by the health route; nil reports the database as down.
	DB                 Pinger
	AllowedOrigins     []string
	ExposeErrorDetails bool
	Logger             *slog.Logger
}

// routeTable lists every route in registration order. The informational
// routes are registered with handlers that read the finished table.
func routeTable(auth *AuthHandler, events *EventHandler, meta *MetaHandler) []Route {
	return []Route{
		{http.MethodGet, "/health", meta.Health},
		{http.MethodGet, "/", meta.Root},
		{http.MethodGet, "/test", meta.Test},
		{http.MethodPost, "/api/register", auth.Register},
		{http.MethodPost, "/api/login", auth.Login},
		{http.MethodGet, "/api/events", events.List},
		{http.MethodPost, "/api/events", events.Create},
		{http.MethodPut, "/api/events/{id}", events.Update},
		{http.MethodDelete, "/api/events/{id}", events.Delete},
	}
}

// AvailableRoutes returns the "METHOD /pattern" form of each route.
func AvailableRoutes(routes []Route) []string {
	out := make([]string, len(routes))
	for i, rt := range routes {
		out[i] = rt.String()
	}
	return out
}

// NewRouter builds the HTTP handler serving the route table. Requests that
// match no route, including a known path with the wrong method, get the
// JSON not-found response.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authHandler := NewAuthHandler(cfg.Users, cfg.ExposeErrorDetails, logger)
	eventHandler := NewEventHandler(cfg.Events, cfg.ExposeErrorDetails, logger)
	metaHandler := NewMetaHandler(cfg.DB, nil, logger)

	routes := routeTable(authHandler, eventHandler, metaHandler)
	metaHandler.availableRoutes = AvailableRoutes(routes)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewTraceMiddleware(logger))
	r.Use(middleware.NewRequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(middleware.NewCORS(cfg.AllowedOrigins))
	}

	for _, rt := range routes {
		r.Method(rt.Method, rt.Pattern, rt.Handler)
	}

	r.NotFound(metaHandler.NotFound)
	r.MethodNotAllowed(metaHandler.NotFound)

	return r
}
