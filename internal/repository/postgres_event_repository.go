package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Emmanuel-365/event-app/internal/domain"
)

// PostgresEventRepository implements EventRepository using pgx
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new event repository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

const eventColumns = `id, organizer_id, title, description, location, start_date, end_date, capacity, remaining_places, status, created_at, updated_at`

// Create inserts a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO events (`+eventColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		event.ID, event.OrganizerID, event.Title, event.Description, event.Location,
		event.StartDate, event.EndDate, event.Capacity, event.RemainingPlaces,
		event.Status.String(), event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetByID fetches an event by id
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// List returns events ordered by start date, paginated
func (r *PostgresEventRepository) List(ctx context.Context, limit, offset int) ([]*domain.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+` FROM events
		ORDER BY start_date ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return collectEvents(rows)
}

// ListByOrganizer returns an organizer's events
func (r *PostgresEventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+` FROM events
		WHERE organizer_id = $1 ORDER BY start_date ASC`,
		organizerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return collectEvents(rows)
}

// Update persists every field change in one guarded statement. The target
// capacity travels in event.Capacity; remaining places shift by the same
// delta and the guard keeps them non-negative, so a shrink below the sold
// places is rejected without touching any other field.
func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE events
		SET title = $2, description = $3, location = $4, start_date = $5,
		    end_date = $6, status = $7,
		    remaining_places = remaining_places + ($8 - capacity),
		    capacity = $8, updated_at = NOW()
		WHERE id = $1 AND remaining_places + ($8 - capacity) >= 0
		RETURNING `+eventColumns,
		event.ID, event.Title, event.Description, event.Location,
		event.StartDate, event.EndDate, event.Status.String(), event.Capacity,
	)
	updated, err := scanEvent(row)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	if _, err := r.GetByID(ctx, event.ID); err != nil {
		return nil, err
	}
	return nil, domain.ErrCapacityExceeded
}

// Delete removes an event
func (r *PostgresEventRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	event := &domain.Event{}
	var status string
	err := row.Scan(
		&event.ID, &event.OrganizerID, &event.Title, &event.Description, &event.Location,
		&event.StartDate, &event.EndDate, &event.Capacity, &event.RemainingPlaces,
		&status, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	event.Status = domain.EventStatus(status)
	return event, nil
}

func collectEvents(rows pgx.Rows) ([]*domain.Event, error) {
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}
