package repository

import (
	"context"

	"github.com/Emmanuel-365/event-app/internal/domain"
)

// EventRepository persists events.
// Update applies every field change, capacity included, in one guarded
// statement so a rejected capacity change leaves the row untouched.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}

// SubscriptionRepository persists subscriptions.
// CreateWithReservation and DeleteWithRelease pair the row change with
// the event capacity change in a single transaction.
type SubscriptionRepository interface {
	CreateWithReservation(ctx context.Context, sub *domain.Subscription) error
	DeleteWithRelease(ctx context.Context, sub *domain.Subscription) error
	GetByID(ctx context.Context, id string) (*domain.Subscription, error)
	GetByCode(ctx context.Context, ticketCode string) (*domain.Subscription, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Subscription, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Subscription, error)
	ExistsCode(ctx context.Context, ticketCode string) (bool, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.SubscriptionStatus) error
}

// TicketCategoryRepository persists ticket categories
type TicketCategoryRepository interface {
	Create(ctx context.Context, cat *domain.TicketCategory) error
	GetByID(ctx context.Context, id string) (*domain.TicketCategory, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.TicketCategory, error)
	Update(ctx context.Context, cat *domain.TicketCategory) error
	Delete(ctx context.Context, id string) error
}

// UserRepository persists user accounts
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// StatsRepository answers aggregate queries over events and subscriptions
type StatsRepository interface {
	EventStats(ctx context.Context, eventID string) (*EventStatsRow, error)
	OrganizerStats(ctx context.Context, organizerID string) ([]*EventStatsRow, error)
	TrendingEvents(ctx context.Context, limit int) ([]*TrendingRow, error)
	TopLocations(ctx context.Context, limit int) ([]*LocationRow, error)
	SubscriptionsByMonth(ctx context.Context, organizerID string) ([]*MonthRow, error)
	LocationPerformance(ctx context.Context, organizerID string) ([]*LocationPerformanceRow, error)
	MonthPerformance(ctx context.Context, organizerID string) ([]*MonthPerformanceRow, error)
}

// EventStatsRow is one event's aggregated sales
type EventStatsRow struct {
	EventID     string
	Title       string
	Capacity    int
	SoldPlaces  int
	Revenue     int
	TicketsUsed int
}

// TrendingRow ranks an event by fill rate
type TrendingRow struct {
	EventID    string
	Title      string
	Location   string
	Capacity   int
	SoldPlaces int
}

// LocationPerformanceRow is the average confirmed revenue of an organizer's
// finished events at one location
type LocationPerformanceRow struct {
	Location       string
	AverageRevenue float64
}

// MonthPerformanceRow is the average confirmed revenue of an organizer's
// finished events starting in one calendar month (1-12)
type MonthPerformanceRow struct {
	Month          int
	AverageRevenue float64
}

// LocationRow ranks a location by subscription count
type LocationRow struct {
	Location      string
	Events        int
	Subscriptions int
}

// MonthRow aggregates subscriptions per calendar month
type MonthRow struct {
	Month         string
	Subscriptions int
	Revenue       int
}
