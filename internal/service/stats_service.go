package service

import (
	"context"
	"fmt"

	"github.com/Emmanuel-365/event-app/internal/domain"
	"github.com/Emmanuel-365/event-app/internal/dto"
	"github.com/Emmanuel-365/event-app/internal/repository"
)

// StatsService answers reporting queries for organizers and admins
type StatsService interface {
	EventStats(ctx context.Context, requester domain.Identity, eventID string) (*dto.EventStatsResponse, error)
	OrganizerStats(ctx context.Context, requester domain.Identity) (*dto.OrganizerStatsResponse, error)
	TrendingEvents(ctx context.Context, limit int) ([]*dto.TrendingEventResponse, error)
	TopLocations(ctx context.Context, limit int) ([]*dto.LocationStatsResponse, error)
	SubscriptionsByMonth(ctx context.Context, requester domain.Identity) ([]*dto.MonthStatsResponse, error)
	BestLocations(ctx context.Context, requester domain.Identity) ([]*dto.LocationPerformanceResponse, error)
	BestMonths(ctx context.Context, requester domain.Identity) ([]*dto.MonthPerformanceResponse, error)
	Recommendation(ctx context.Context, requester domain.Identity) (*dto.RecommendationResponse, error)
}

type statsService struct {
	stats  repository.StatsRepository
	events repository.EventRepository
}

// NewStatsService creates a new stats service
func NewStatsService(stats repository.StatsRepository, events repository.EventRepository) StatsService {
	return &statsService{stats: stats, events: events}
}

// EventStats returns one event's sales, visible to its organizer or an admin
func (s *statsService) EventStats(ctx context.Context, requester domain.Identity, eventID string) (*dto.EventStatsResponse, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(requester.UserID) && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	row, err := s.stats.EventStats(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return toEventStats(row), nil
}

// OrganizerStats aggregates the requester's whole portfolio
func (s *statsService) OrganizerStats(ctx context.Context, requester domain.Identity) (*dto.OrganizerStatsResponse, error) {
	if !requester.IsOrganizer() && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	rows, err := s.stats.OrganizerStats(ctx, requester.UserID)
	if err != nil {
		return nil, err
	}

	out := &dto.OrganizerStatsResponse{
		TotalEvents: len(rows),
		Events:      make([]*dto.EventStatsResponse, 0, len(rows)),
	}
	for _, row := range rows {
		stats := toEventStats(row)
		out.TotalRevenue += stats.Revenue
		out.TotalSold += stats.SoldPlaces
		out.Events = append(out.Events, stats)
	}
	return out, nil
}

// TrendingEvents ranks events by occupancy rate, public access. Events
// without any confirmed place are not trending.
func (s *statsService) TrendingEvents(ctx context.Context, limit int) ([]*dto.TrendingEventResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	rows, err := s.stats.TrendingEvents(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TrendingEventResponse, 0, len(rows))
	for _, row := range rows {
		rate := 0.0
		if row.Capacity > 0 {
			rate = float64(row.SoldPlaces) / float64(row.Capacity) * 100
		}
		out = append(out, &dto.TrendingEventResponse{
			EventID:       row.EventID,
			Title:         row.Title,
			Location:      row.Location,
			Capacity:      row.Capacity,
			SoldPlaces:    row.SoldPlaces,
			OccupancyRate: rate,
		})
	}
	return out, nil
}

// TopLocations ranks locations by total subscriptions, public access
func (s *statsService) TopLocations(ctx context.Context, limit int) ([]*dto.LocationStatsResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	rows, err := s.stats.TopLocations(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LocationStatsResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, &dto.LocationStatsResponse{
			Location:      row.Location,
			Events:        row.Events,
			Subscriptions: row.Subscriptions,
		})
	}
	return out, nil
}

// SubscriptionsByMonth returns the requester's monthly sales history
func (s *statsService) SubscriptionsByMonth(ctx context.Context, requester domain.Identity) ([]*dto.MonthStatsResponse, error) {
	if !requester.IsOrganizer() && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	rows, err := s.stats.SubscriptionsByMonth(ctx, requester.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MonthStatsResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, &dto.MonthStatsResponse{
			Month:         row.Month,
			Subscriptions: row.Subscriptions,
			Revenue:       row.Revenue,
		})
	}
	return out, nil
}

// monthNames maps a calendar month (1-12) to its French name
var monthNames = [...]string{
	"Janvier", "Fevrier", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Aout", "Septembre", "Octobre", "Novembre", "Decembre",
}

func monthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// BestLocations ranks the requester's venues by average revenue of their
// finished events, best first
func (s *statsService) BestLocations(ctx context.Context, requester domain.Identity) ([]*dto.LocationPerformanceResponse, error) {
	if !requester.IsOrganizer() && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	rows, err := s.stats.LocationPerformance(ctx, requester.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LocationPerformanceResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, &dto.LocationPerformanceResponse{
			Location:       row.Location,
			AverageRevenue: row.AverageRevenue,
		})
	}
	return out, nil
}

// BestMonths ranks calendar months by average revenue of the requester's
// finished events, best first
func (s *statsService) BestMonths(ctx context.Context, requester domain.Identity) ([]*dto.MonthPerformanceResponse, error) {
	if !requester.IsOrganizer() && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	rows, err := s.stats.MonthPerformance(ctx, requester.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MonthPerformanceResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, &dto.MonthPerformanceResponse{
			Month:          row.Month,
			MonthName:      monthName(row.Month),
			AverageRevenue: row.AverageRevenue,
		})
	}
	return out, nil
}

// Recommendation combines the best venue and the best period into a single
// suggestion for the requester's next event. With no finished-event history
// the response only carries an explanatory message.
func (s *statsService) Recommendation(ctx context.Context, requester domain.Identity) (*dto.RecommendationResponse, error) {
	locations, err := s.BestLocations(ctx, requester)
	if err != nil {
		return nil, err
	}
	months, err := s.BestMonths(ctx, requester)
	if err != nil {
		return nil, err
	}

	if len(locations) == 0 || len(months) == 0 {
		return &dto.RecommendationResponse{
			Recommendation: "Historique insuffisant. Organisez plus d'evenements termines avec des billets confirmes pour obtenir une analyse.",
		}, nil
	}

	best := locations[0]
	bestMonth := months[0]
	return &dto.RecommendationResponse{
		BestLocation: best,
		BestMonth:    bestMonth,
		Recommendation: fmt.Sprintf(
			"Au vu de vos evenements passes, le lieu le plus rentable est %s (moyenne : %.0f FCFA). La meilleure periode est %s (moyenne : %.0f FCFA). Organisez votre prochain evenement a %s en %s.",
			best.Location, best.AverageRevenue, bestMonth.MonthName, bestMonth.AverageRevenue,
			best.Location, bestMonth.MonthName,
		),
	}, nil
}

func toEventStats(row *repository.EventStatsRow) *dto.EventStatsResponse {
	rate := 0.0
	if row.Capacity > 0 {
		rate = float64(row.SoldPlaces) / float64(row.Capacity) * 100
	}
	return &dto.EventStatsResponse{
		EventID:       row.EventID,
		Title:         row.Title,
		Capacity:      row.Capacity,
		SoldPlaces:    row.SoldPlaces,
		OccupancyRate: rate,
		Revenue:       row.Revenue,
		TicketsUsed:   row.TicketsUsed,
	}
}
