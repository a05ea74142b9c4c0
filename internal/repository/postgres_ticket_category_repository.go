package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Emmanuel-365/event-app/internal/domain"
)

// PostgresTicketCategoryRepository implements TicketCategoryRepository using pgx
type PostgresTicketCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTicketCategoryRepository creates a new ticket category repository
func NewPostgresTicketCategoryRepository(pool *pgxpool.Pool) *PostgresTicketCategoryRepository {
	return &PostgresTicketCategoryRepository{pool: pool}
}

// Create inserts a new category
func (r *PostgresTicketCategoryRepository) Create(ctx context.Context, cat *domain.TicketCategory) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ticket_categories (id, event_id, name, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		cat.ID, cat.EventID, cat.Name, cat.Price, cat.CreatedAt, cat.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// GetByID fetches a category by id
func (r *PostgresTicketCategoryRepository) GetByID(ctx context.Context, id string) (*domain.TicketCategory, error) {
	cat := &domain.TicketCategory{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, event_id, name, price, created_at, updated_at
		FROM ticket_categories WHERE id = $1`,
		id,
	).Scan(&cat.ID, &cat.EventID, &cat.Name, &cat.Price, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return cat, nil
}

// ListByEvent returns all categories of an event
func (r *PostgresTicketCategoryRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.TicketCategory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, event_id, name, price, created_at, updated_at
		FROM ticket_categories WHERE event_id = $1 ORDER BY price ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var cats []*domain.TicketCategory
	for rows.Next() {
		cat := &domain.TicketCategory{}
		if err := rows.Scan(&cat.ID, &cat.EventID, &cat.Name, &cat.Price, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return cats, nil
}

// Update persists category changes
func (r *PostgresTicketCategoryRepository) Update(ctx context.Context, cat *domain.TicketCategory) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE ticket_categories
		SET name = $2, price = $3, updated_at = NOW()
		WHERE id = $1`,
		cat.ID, cat.Name, cat.Price,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a category
func (r *PostgresTicketCategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ticket_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
