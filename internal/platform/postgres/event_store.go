package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/eventplan-api/internal/domain"
	"github.com/phrazzld/eventplan-api/internal/platform/logger"
	"github.com/phrazzld/eventplan-api/internal/store"
)

// PostgresEventStore implements store.EventStore on the events table.
type PostgresEventStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEventStore creates a PostgresEventStore.
func NewPostgresEventStore(db store.DBTX, log *slog.Logger) *PostgresEventStore {
	if log == nil {
		log = slog.Default()
	}
	return &PostgresEventStore{
		db:     db,
		logger: log.With("component", "event_store"),
	}
}

var _ store.EventStore = (*PostgresEventStore)(nil)

const eventColumns = `id, title, description, start_time, end_time, all_day, created_at, updated_at`

// Create implements store.EventStore.
func (s *PostgresEventStore) Create(ctx context.Context, event *domain.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO events (id, title, description, start_time, end_time, all_day)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		event.ID, event.Title, event.Description, event.Start, event.End, event.AllDay,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return store.NewStoreError("event", "create", "insert failed", MapError(err))
	}

	normalize(event)
	return nil
}

// List implements store.EventStore.
func (s *PostgresEventStore) List(ctx context.Context) ([]*domain.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY start_time ASC, created_at ASC`)
	if err != nil {
		return nil, store.NewStoreError("event", "list", "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("failed to close rows", logger.Err(cerr))
		}
	}()

	events := []*domain.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, store.NewStoreError("event", "list", "scan failed", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("event", "list", "iteration failed", MapError(err))
	}

	return events, nil
}

// Update implements store.EventStore.
func (s *PostgresEventStore) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE events
		 SET title = $2, description = $3, start_time = $4, end_time = $5, all_day = $6, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+eventColumns,
		event.ID, event.Title, event.Description, event.Start, event.End, event.AllDay,
	)
	updated, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEventNotFound
		}
		return nil, store.NewStoreError("event", "update", "update failed", MapError(err))
	}
	return updated, nil
}

// Delete implements store.EventStore.
func (s *PostgresEventStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return store.NewStoreError("event", "delete", "delete failed", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrEventNotFound)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*domain.Event, error) {
	var event domain.Event
	if err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Start,
		&event.End,
		&event.AllDay,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		return nil, err
	}
	normalize(&event)
	return &event, nil
}

func normalize(event *domain.Event) {
	event.Start = event.Start.UTC()
	event.End = event.End.UTC()
	event.CreatedAt = event.CreatedAt.UTC()
	event.UpdatedAt = event.UpdatedAt.UTC()
}
