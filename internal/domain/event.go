package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is a calendar entry with a time range and descriptive fields.
//
// End is not checked against Start; an event may end before it begins.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	AllDay      bool      `json:"allDay"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewEvent builds an Event with a fresh ID. Start and End are normalized to
// UTC at microsecond precision, the resolution Postgres stores.
func NewEvent(title, description string, start, end time.Time, allDay bool) (*Event, error) {
	now := time.Now().UTC()
	event := &Event{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Description: description,
		Start:       start.UTC().Truncate(time.Microsecond),
		End:         end.UTC().Truncate(time.Microsecond),
		AllDay:      allDay,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate checks that the required fields are present.
func (e *Event) Validate() error {
	if e.ID == uuid.Nil {
		return NewValidationError("id", "is required", ErrInvalidID)
	}
	if e.Title == "" {
		return NewValidationError("title", "is required", nil)
	}
	if e.Start.IsZero() {
		return NewValidationError("start", "is required", nil)
	}
	if e.End.IsZero() {
		return NewValidationError("end", "is required", nil)
	}
	return nil
}

// Replace overwrites every mutable field of e with the values of other,
// keeping e's identity and creation time.
func (e *Event) Replace(other *Event) {
	e.Title = other.Title
	e.Description = other.Description
	e.Start = other.Start
	e.End = other.End
	e.AllDay = other.AllDay
	e.UpdatedAt = time.Now().UTC()
}
