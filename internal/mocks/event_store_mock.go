package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/eventplan-api/internal/domain"
	"github.com/phrazzld/eventplan-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockEventStore is a mock of store.EventStore for use with testify/mock
type TestifyMockEventStore struct {
	mock.Mock
}

var _ store.EventStore = (*TestifyMockEventStore)(nil)

// Create is a mock implementation of store.EventStore.Create
func (m *TestifyMockEventStore) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// List is a mock implementation of store.EventStore.List
func (m *TestifyMockEventStore) List(ctx context.Context) ([]*domain.Event, error) {
	args := m.Called(ctx)
	if events, ok := args.Get(0).([]*domain.Event); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.EventStore.Update
func (m *TestifyMockEventStore) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	args := m.Called(ctx, event)
	if updated, ok := args.Get(0).(*domain.Event); ok {
		return updated, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.EventStore.Delete
func (m *TestifyMockEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
