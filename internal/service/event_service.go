package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/eventplan-api/internal/domain"
	"github.com/phrazzld/eventplan-api/internal/platform/logger"
	"github.com/phrazzld/eventplan-api/internal/store"
)

// EventInput carries the client-supplied fields of an event. Zero values of
// Description and AllDay are the defaults.
type EventInput struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	AllDay      bool
}

// EventService provides the calendar event use cases.
type EventService interface {
	// List returns all events ordered by start ascending.
	List(ctx context.Context) ([]*domain.Event, error)

	// Create validates input and stores a new event.
	Create(ctx context.Context, input EventInput) (*domain.Event, error)

	// Update replaces every mutable field of event id with input.
	// Returns store.ErrEventNotFound when id does not exist.
	Update(ctx context.Context, id uuid.UUID, input EventInput) (*domain.Event, error)

	// Delete removes event id.
	// Returns store.ErrEventNotFound when id does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventServiceImpl implements the EventService interface
type EventServiceImpl struct {
	eventStore store.EventStore
	logger     *slog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventStore store.EventStore, logger *slog.Logger) *EventServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventServiceImpl{
		eventStore: eventStore,
		logger:     logger.With("component", "event_service"),
	}
}

var _ EventService = (*EventServiceImpl)(nil)

// List implements EventService.
func (s *EventServiceImpl) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list events", logger.Err(err))
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// Create implements EventService.
func (s *EventServiceImpl) Create(ctx context.Context, input EventInput) (*domain.Event, error) {
	event, err := domain.NewEvent(input.Title, input.Description, input.Start, input.End, input.AllDay)
	if err != nil {
		return nil, err
	}

	if err := s.eventStore.Create(ctx, event); err != nil {
		s.logger.Error("failed to create event", logger.Err(err))
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Debug("event created", "event_id", event.ID)
	return event, nil
}

// Update implements EventService.
func (s *EventServiceImpl) Update(ctx context.Context, id uuid.UUID, input EventInput) (*domain.Event, error) {
	replacement, err := domain.NewEvent(input.Title, input.Description, input.Start, input.End, input.AllDay)
	if err != nil {
		return nil, err
	}
	replacement.ID = id

	updated, err := s.eventStore.Update(ctx, replacement)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("update of unknown event", "event_id", id)
		} else {
			s.logger.Error("failed to update event", logger.Err(err), "event_id", id)
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return updated, nil
}

// Delete implements EventService.
func (s *EventServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.eventStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("delete of unknown event", "event_id", id)
		} else {
			s.logger.Error("failed to delete event", logger.Err(err), "event_id", id)
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.logger.Debug("event deleted", "event_id", id)
	return nil
}
