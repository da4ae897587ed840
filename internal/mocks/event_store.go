package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/eventplan-api/internal/domain"
	"github.com/phrazzld/eventplan-api/internal/store"
)

// MockEventStore implements store.EventStore in memory.
// Listing orders by start, then by insertion.
type MockEventStore struct {
	// Errors returned by the default implementation when set
	CreateError error
	ListError   error
	UpdateError error
	DeleteError error

	mu     sync.Mutex
	seq    int
	events map[uuid.UUID]*storedEvent
}

type storedEvent struct {
	event domain.Event
	seq   int
}

// NewMockEventStore creates an empty in-memory event store.
func NewMockEventStore() *MockEventStore {
	return &MockEventStore{
		events: make(map[uuid.UUID]*storedEvent),
	}
}

var _ store.EventStore = (*MockEventStore)(nil)

// Create implements store.EventStore.
func (m *MockEventStore) Create(ctx context.Context, event *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateError != nil {
		return m.CreateError
	}

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	now := time.Now().UTC()
	event.CreatedAt, event.UpdatedAt = now, now

	m.seq++
	m.events[event.ID] = &storedEvent{event: *event, seq: m.seq}
	return nil
}

// List implements store.EventStore.
func (m *MockEventStore) List(ctx context.Context) ([]*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListError != nil {
		return nil, m.ListError
	}

	stored := make([]*storedEvent, 0, len(m.events))
	for _, s := range m.events {
		stored = append(stored, s)
	}
	sort.Slice(stored, func(i, j int) bool {
		if !stored[i].event.Start.Equal(stored[j].event.Start) {
			return stored[i].event.Start.Before(stored[j].event.Start)
		}
		return stored[i].seq < stored[j].seq
	})

	events := make([]*domain.Event, 0, len(stored))
	for _, s := range stored {
		e := s.event
		events = append(events, &e)
	}
	return events, nil
}

// Update implements store.EventStore.
func (m *MockEventStore) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateError != nil {
		return nil, m.UpdateError
	}

	s, ok := m.events[event.ID]
	if !ok {
		return nil, store.ErrEventNotFound
	}
	s.event.Replace(event)

	e := s.event
	return &e, nil
}

// Delete implements store.EventStore.
func (m *MockEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteError != nil {
		return m.DeleteError
	}
	if _, ok := m.events[id]; !ok {
		return store.ErrEventNotFound
	}
	delete(m.events, id)
	return nil
}
