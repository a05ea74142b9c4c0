package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Emmanuel-365/event-app/internal/domain"
)

// PostgresStatsRepository implements StatsRepository using pgx.
// Pending subscriptions count toward sold places (they hold capacity),
// revenue only counts confirmed and used tickets.
type PostgresStatsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresStatsRepository creates a new stats repository
func NewPostgresStatsRepository(pool *pgxpool.Pool) *PostgresStatsRepository {
	return &PostgresStatsRepository{pool: pool}
}

const eventStatsQuery = `
	SELECT e.id, e.title, e.capacity,
	       COALESCE(SUM(s.places), 0) AS sold_places,
	       COALESCE(SUM(s.amount) FILTER (WHERE s.status IN ('REUSSI', 'UTILISE')), 0) AS revenue,
	       COALESCE(SUM(s.places) FILTER (WHERE s.status = 'UTILISE'), 0) AS tickets_used
	FROM events e
	LEFT JOIN subscriptions s ON s.event_id = e.id`

// EventStats aggregates one event's sales
func (r *PostgresStatsRepository) EventStats(ctx context.Context, eventID string) (*EventStatsRow, error) {
	row := r.pool.QueryRow(ctx, eventStatsQuery+`
		WHERE e.id = $1
		GROUP BY e.id, e.title, e.capacity`,
		eventID,
	)
	stats := &EventStatsRow{}
	err := row.Scan(&stats.EventID, &stats.Title, &stats.Capacity, &stats.SoldPlaces, &stats.Revenue, &stats.TicketsUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event stats: %w", err)
	}
	return stats, nil
}

// OrganizerStats aggregates sales per event for one organizer
func (r *PostgresStatsRepository) OrganizerStats(ctx context.Context, organizerID string) ([]*EventStatsRow, error) {
	rows, err := r.pool.Query(ctx, eventStatsQuery+`
		WHERE e.organizer_id = $1
		GROUP BY e.id, e.title, e.capacity
		ORDER BY e.start_date ASC`,
		organizerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizer stats: %w", err)
	}
	defer rows.Close()

	var out []*EventStatsRow
	for rows.Next() {
		stats := &EventStatsRow{}
		if err := rows.Scan(&stats.EventID, &stats.Title, &stats.Capacity, &stats.SoldPlaces, &stats.Revenue, &stats.TicketsUsed); err != nil {
			return nil, fmt.Errorf("failed to scan event stats: %w", err)
		}
		out = append(out, stats)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event stats: %w", err)
	}
	return out, nil
}

// TrendingEvents ranks events by fill rate (confirmed and used places over
// capacity). Events with no confirmed places are dropped from the ranking.
func (r *PostgresStatsRepository) TrendingEvents(ctx context.Context, limit int) ([]*TrendingRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.id, e.title, e.location, e.capacity,
		       COALESCE(SUM(s.places) FILTER (WHERE s.status IN ('REUSSI', 'UTILISE')), 0) AS sold_places
		FROM events e
		LEFT JOIN subscriptions s ON s.event_id = e.id
		GROUP BY e.id, e.title, e.location, e.capacity
		HAVING COALESCE(SUM(s.places) FILTER (WHERE s.status IN ('REUSSI', 'UTILISE')), 0) > 0
		ORDER BY COALESCE(SUM(s.places) FILTER (WHERE s.status IN ('REUSSI', 'UTILISE')), 0)::FLOAT / e.capacity DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get trending events: %w", err)
	}
	defer rows.Close()

	var out []*TrendingRow
	for rows.Next() {
		t := &TrendingRow{}
		if err := rows.Scan(&t.EventID, &t.Title, &t.Location, &t.Capacity, &t.SoldPlaces); err != nil {
			return nil, fmt.Errorf("failed to scan trending event: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trending events: %w", err)
	}
	return out, nil
}

// TopLocations ranks locations by total subscriptions
func (r *PostgresStatsRepository) TopLocations(ctx context.Context, limit int) ([]*LocationRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.location, COUNT(DISTINCT e.id) AS events, COUNT(s.id) AS subscriptions
		FROM events e
		LEFT JOIN subscriptions s ON s.event_id = e.id
		GROUP BY e.location
		ORDER BY subscriptions DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get top locations: %w", err)
	}
	defer rows.Close()

	var out []*LocationRow
	for rows.Next() {
		l := &LocationRow{}
		if err := rows.Scan(&l.Location, &l.Events, &l.Subscriptions); err != nil {
			return nil, fmt.Errorf("failed to scan location stats: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate location stats: %w", err)
	}
	return out, nil
}

// LocationPerformance averages the confirmed subscription revenue of an
// organizer's finished events per location, best first
func (r *PostgresStatsRepository) LocationPerformance(ctx context.Context, organizerID string) ([]*LocationPerformanceRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.location, AVG(s.amount) AS average_revenue
		FROM events e
		JOIN subscriptions s ON s.event_id = e.id
		WHERE e.organizer_id = $1
		  AND e.status = 'TERMINE'
		  AND s.status IN ('REUSSI', 'UTILISE')
		GROUP BY e.location
		ORDER BY average_revenue DESC`,
		organizerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get location performance: %w", err)
	}
	defer rows.Close()

	var out []*LocationPerformanceRow
	for rows.Next() {
		l := &LocationPerformanceRow{}
		if err := rows.Scan(&l.Location, &l.AverageRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan location performance: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate location performance: %w", err)
	}
	return out, nil
}

// MonthPerformance averages the confirmed subscription revenue of an
// organizer's finished events per start month, best first
func (r *PostgresStatsRepository) MonthPerformance(ctx context.Context, organizerID string) ([]*MonthPerformanceRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT EXTRACT(MONTH FROM e.start_date)::INT AS month, AVG(s.amount) AS average_revenue
		FROM events e
		JOIN subscriptions s ON s.event_id = e.id
		WHERE e.organizer_id = $1
		  AND e.status = 'TERMINE'
		  AND s.status IN ('REUSSI', 'UTILISE')
		GROUP BY month
		ORDER BY average_revenue DESC`,
		organizerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get month performance: %w", err)
	}
	defer rows.Close()

	var out []*MonthPerformanceRow
	for rows.Next() {
		m := &MonthPerformanceRow{}
		if err := rows.Scan(&m.Month, &m.AverageRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan month performance: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate month performance: %w", err)
	}
	return out, nil
}

// SubscriptionsByMonth aggregates an organizer's subscriptions per month
func (r *PostgresStatsRepository) SubscriptionsByMonth(ctx context.Context, organizerID string) ([]*MonthRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT TO_CHAR(s.created_at, 'YYYY-MM') AS month,
		       COUNT(s.id) AS subscriptions,
		       COALESCE(SUM(s.amount) FILTER (WHERE s.status IN ('REUSSI', 'UTILISE')), 0) AS revenue
		FROM subscriptions s
		JOIN events e ON e.id = s.event_id
		WHERE e.organizer_id = $1
		GROUP BY month
		ORDER BY month DESC`,
		organizerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly stats: %w", err)
	}
	defer rows.Close()

	var out []*MonthRow
	for rows.Next() {
		m := &MonthRow{}
		if err := rows.Scan(&m.Month, &m.Subscriptions, &m.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan monthly stats: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly stats: %w", err)
	}
	return out, nil
}
