package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/eventplan-api/internal/domain"
)

// EventStore defines the interface for calendar event persistence.
// The store is the sole authority for identifiers and stored state.
type EventStore interface {
	// Create persists a new event. The store keeps event.ID when set and
	// assigns one otherwise; timestamps are set on the passed event.
	Create(ctx context.Context, event *domain.Event) error

	// List returns every event ordered by start ascending, ties broken by
	// creation order. Returns an empty, non-nil slice when there are none.
	List(ctx context.Context) ([]*domain.Event, error)

	// Update replaces the mutable fields of the event with event.ID and
	// returns the stored result.
	// Returns ErrEventNotFound if the event does not exist.
	Update(ctx context.Context, event *domain.Event) (*domain.Event, error)

	// Delete removes an event by ID.
	// Returns ErrEventNotFound if the event does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
