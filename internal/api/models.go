package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/eventplan-api/internal/domain"
)

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// EventRequest is the body of POST /api/events and PUT /api/events/{id}.
// Start and End are timestamps in any layout domain.ParseTimestamp accepts.
type EventRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Start       string `json:"start"       validate:"required"`
	End         string `json:"end"         validate:"required"`
	AllDay      bool   `json:"allDay"`
}

// UserResponse is the public view of a user. It never carries the password hash.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// MessageResponse carries a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// RootResponse is the body of GET /.
type RootResponse struct {
	Message         string    `json:"message"`
	AvailableRoutes []string  `json:"availableRoutes"`
	Timestamp       time.Time `json:"timestamp"`
}

// TestResponse is the body of GET /test.
type TestResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// NotFoundResponse is the body returned for unmatched routes.
type NotFoundResponse struct {
	Error           string   `json:"error"`
	RequestedPath   string   `json:"requestedPath"`
	AvailableRoutes []string `json:"availableRoutes"`
}
