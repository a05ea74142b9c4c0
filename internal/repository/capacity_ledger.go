package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Emmanuel-365/event-app/internal/domain"
)

// capacityLedger applies capacity changes to an event row inside a caller
// supplied transaction. Both operations are single guarded UPDATEs so a
// concurrent reservation can never push remaining places below zero or
// above the event capacity.
type capacityLedger struct{}

// Reserve decrements remaining places by qty. Returns ErrCapacityExceeded
// when the event does not hold enough places, ErrNotFound when the event
// does not exist.
func (capacityLedger) Reserve(ctx context.Context, tx pgx.Tx, eventID string, qty int) error {
	var remaining int
	err := tx.QueryRow(ctx, `
		UPDATE events
		SET remaining_places = remaining_places - $2, updated_at = NOW()
		WHERE id = $1 AND remaining_places >= $2
		RETURNING remaining_places`,
		eventID, qty,
	).Scan(&remaining)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to reserve places: %w", err)
	}

	// The guard rejected the update, tell apart missing event from full event
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrCapacityExceeded
}

// Release returns qty places to the event. The guard keeps remaining
// places from exceeding the event capacity.
func (capacityLedger) Release(ctx context.Context, tx pgx.Tx, eventID string, qty int) error {
	var remaining int
	err := tx.QueryRow(ctx, `
		UPDATE events
		SET remaining_places = remaining_places + $2, updated_at = NOW()
		WHERE id = $1 AND remaining_places + $2 <= capacity
		RETURNING remaining_places`,
		eventID, qty,
	).Scan(&remaining)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to release places: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return fmt.Errorf("release of %d places would exceed event capacity", qty)
}
