package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/eventplan-api/internal/api/shared"
	"github.com/phrazzld/eventplan-api/internal/service"
)

// EventHandler handles the /api/events routes.
type EventHandler struct {
	events service.EventService
	errors errorResponder
	logger *slog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(events service.EventService, exposeDetails bool, logger *slog.Logger) *EventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventHandler{
		events: events,
		errors: errorResponder{exposeDetails: exposeDetails},
		logger: logger.With("component", "event_handler"),
	}
}

// List handles GET /api/events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		h.errors.respond(w, r, err, "Failed to fetch events")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, events)
}

// Create handles POST /api/events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeEvent(w, r, "Failed to create event")
	if !ok {
		return
	}

	event, err := h.events.Create(r.Context(), input)
	if err != nil {
		h.errors.respond(w, r, err, "Failed to create event")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, event)
}

// Update handles PUT /api/events/{id}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		h.errors.respond(w, r, err, "Failed to update event")
		return
	}

	input, ok := h.decodeEvent(w, r, "Failed to update event")
	if !ok {
		return
	}

	event, err := h.events.Update(r.Context(), id, input)
	if err != nil {
		h.errors.respond(w, r, err, "Failed to update event")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, event)
}

// Delete handles DELETE /api/events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		h.errors.respond(w, r, err, "Failed to delete event")
		return
	}

	if err := h.events.Delete(r.Context(), id); err != nil {
		h.errors.respond(w, r, err, "Failed to delete event")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Event deleted successfully"})
}

func (h *EventHandler) decodeEvent(w http.ResponseWriter, r *http.Request, fallback string) (service.EventInput, bool) {
	var req EventRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		h.errors.respond(w, r, err, fallback)
		return service.EventInput{}, false
	}
	if err := shared.ValidateRequest(req); err != nil {
		h.errors.respond(w, r, err, fallback)
		return service.EventInput{}, false
	}

	input, err := toEventInput(req)
	if err != nil {
		h.errors.respond(w, r, err, fallback)
		return service.EventInput{}, false
	}
	return input, true
}
