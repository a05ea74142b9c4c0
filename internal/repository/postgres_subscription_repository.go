package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Emmanuel-365/event-app/internal/domain"
)

const uniqueViolation = "23505"

// PostgresSubscriptionRepository implements SubscriptionRepository using pgx
type PostgresSubscriptionRepository struct {
	pool   *pgxpool.Pool
	ledger capacityLedger
}

// NewPostgresSubscriptionRepository creates a new subscription repository
func NewPostgresSubscriptionRepository(pool *pgxpool.Pool) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{pool: pool}
}

// CreateWithReservation inserts the subscription and decrements the event's
// remaining places in one transaction. Either both happen or neither does.
func (r *PostgresSubscriptionRepository) CreateWithReservation(ctx context.Context, sub *domain.Subscription) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.ledger.Reserve(ctx, tx, sub.EventID, sub.Places); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO subscriptions (id, event_id, category_id, user_id, ticket_code, places, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		sub.ID, sub.EventID, sub.CategoryID, sub.UserID, sub.TicketCode,
		sub.Places, sub.Amount, sub.Status.String(), sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrCodeConflict
		}
		return fmt.Errorf("failed to insert subscription: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteWithRelease removes the subscription and returns its places to the
// event in one transaction.
func (r *PostgresSubscriptionRepository) DeleteWithRelease(ctx context.Context, sub *domain.Subscription) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM subscriptions WHERE id = $1`, sub.ID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err := r.ledger.Release(ctx, tx, sub.EventID, sub.Places); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetByID fetches a subscription by id
func (r *PostgresSubscriptionRepository) GetByID(ctx context.Context, id string) (*domain.Subscription, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

// GetByCode fetches a subscription by ticket code
func (r *PostgresSubscriptionRepository) GetByCode(ctx context.Context, ticketCode string) (*domain.Subscription, error) {
	return r.getBy(ctx, `WHERE ticket_code = $1`, ticketCode)
}

func (r *PostgresSubscriptionRepository) getBy(ctx context.Context, where string, arg any) (*domain.Subscription, error) {
	sub := &domain.Subscription{}
	var status string
	err := r.pool.QueryRow(ctx, `
		SELECT id, event_id, category_id, user_id, ticket_code, places, amount, status, created_at, updated_at
		FROM subscriptions `+where,
		arg,
	).Scan(
		&sub.ID, &sub.EventID, &sub.CategoryID, &sub.UserID, &sub.TicketCode,
		&sub.Places, &sub.Amount, &status, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	sub.Status = domain.SubscriptionStatus(status)
	return sub, nil
}

// ListByUser returns a user's subscriptions, newest first
func (r *PostgresSubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Subscription, error) {
	return r.list(ctx, `WHERE user_id = $1`, userID)
}

// ListByEvent returns an event's subscriptions, newest first
func (r *PostgresSubscriptionRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Subscription, error) {
	return r.list(ctx, `WHERE event_id = $1`, eventID)
}

func (r *PostgresSubscriptionRepository) list(ctx context.Context, where string, arg any) ([]*domain.Subscription, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, event_id, category_id, user_id, ticket_code, places, amount, status, created_at, updated_at
		FROM subscriptions `+where+` ORDER BY created_at DESC`,
		arg,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []*domain.Subscription
	for rows.Next() {
		sub := &domain.Subscription{}
		var status string
		if err := rows.Scan(
			&sub.ID, &sub.EventID, &sub.CategoryID, &sub.UserID, &sub.TicketCode,
			&sub.Places, &sub.Amount, &status, &sub.CreatedAt, &sub.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		sub.Status = domain.SubscriptionStatus(status)
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscriptions: %w", err)
	}
	return subs, nil
}

// ExistsCode reports whether a ticket code is already taken
func (r *PostgresSubscriptionRepository) ExistsCode(ctx context.Context, ticketCode string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM subscriptions WHERE ticket_code = $1)`, ticketCode,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ticket code: %w", err)
	}
	return exists, nil
}

// UpdateStatus transitions a subscription from one status to another.
// The WHERE guard makes the transition atomic under concurrent calls:
// when zero rows match, the current row is re-read to classify the failure.
func (r *PostgresSubscriptionRepository) UpdateStatus(ctx context.Context, id string, from, to domain.SubscriptionStatus) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE subscriptions
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2`,
		id, from.String(), to.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription status: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status == domain.SubscriptionUsed {
		return domain.ErrTicketAlreadyUsed
	}
	return domain.ErrInvalidState
}
