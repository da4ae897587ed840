package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/eventplan-api/internal/api/shared"
	"github.com/phrazzld/eventplan-api/internal/domain"
	"github.com/phrazzld/eventplan-api/internal/service/auth"
	"github.com/phrazzld/eventplan-api/internal/store"
)

// MapError maps a service error to a status code and a client-safe
// message. fallback is the message used for unexpected failures.
func MapError(err error, fallback string) (int, string) {
	var verr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "Invalid event ID"
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "Validation error"
	case errors.Is(err, shared.ErrInvalidBody):
		return http.StatusBadRequest, "Invalid request format"
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusBadRequest, "Email already exists"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, store.ErrEventNotFound):
		return http.StatusNotFound, "Event not found"
	default:
		return http.StatusInternalServerError, fallback
	}
}

// errorResponder writes mapped error responses, optionally exposing
// redacted details on server errors. Failed logins log at WARN.
type errorResponder struct {
	exposeDetails bool
}

func (e errorResponder) respond(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, message := MapError(err, fallback)
	opts := []shared.ResponseOption{
		shared.WithDetails(e.exposeDetails && status >= http.StatusInternalServerError),
	}
	if errors.Is(err, auth.ErrInvalidCredentials) {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
