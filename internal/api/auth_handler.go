package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/eventplan-api/internal/api/shared"
	"github.com/phrazzld/eventplan-api/internal/service"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	users  service.UserService
	errors errorResponder
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(users service.UserService, exposeDetails bool, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		users:  users,
		errors: errorResponder{exposeDetails: exposeDetails},
		logger: logger.With("component", "auth_handler"),
	}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		h.errors.respond(w, r, err, "Failed to register user")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		h.errors.respond(w, r, err, "Failed to register user")
		return
	}

	user, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.errors.respond(w, r, err, "Failed to register user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newUserResponse(user))
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		h.errors.respond(w, r, err, "Failed to log in")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		h.errors.respond(w, r, err, "Failed to log in")
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errors.respond(w, r, err, "Failed to log in")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newUserResponse(user))
}
