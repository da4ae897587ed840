package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/eventplan-api/internal/domain"
	"github.com/phrazzld/eventplan-api/internal/service"
)

// getPathUUID parses the named chi path parameter as a UUID.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// toEventInput parses the timestamps of req.
func toEventInput(req EventRequest) (service.EventInput, error) {
	start, err := domain.ParseTimestamp(req.Start)
	if err != nil {
		return service.EventInput{}, domain.NewValidationError("start", "is not a valid timestamp", err)
	}
	end, err := domain.ParseTimestamp(req.End)
	if err != nil {
		return service.EventInput{}, domain.NewValidationError("end", "is not a valid timestamp", err)
	}

	return service.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Start:       start,
		End:         end,
		AllDay:      req.AllDay,
	}, nil
}
