package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Emmanuel-365/event-app/internal/domain"
	"github.com/Emmanuel-365/event-app/internal/dto"
	"github.com/Emmanuel-365/event-app/internal/repository"
	"github.com/Emmanuel-365/event-app/pkg/logger"
)

// EventService manages events
type EventService interface {
	Create(ctx context.Context, requester domain.Identity, req *dto.CreateEventRequest) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error)
	Update(ctx context.Context, requester domain.Identity, id string, req *dto.UpdateEventRequest) (*domain.Event, error)
	Delete(ctx context.Context, requester domain.Identity, id string) error
}

type eventService struct {
	events repository.EventRepository
	logger *logger.Logger
}

// NewEventService creates a new event service
func NewEventService(events repository.EventRepository, log *logger.Logger) EventService {
	return &eventService{events: events, logger: log}
}

// Create registers a new event owned by the requesting organizer
func (s *eventService) Create(ctx context.Context, requester domain.Identity, req *dto.CreateEventRequest) (*domain.Event, error) {
	if !requester.IsOrganizer() && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if req.Capacity < 1 || !req.EndDate.After(req.StartDate) {
		return nil, domain.ErrValidation
	}

	event := domain.NewEvent(
		requester.UserID, req.Title, req.Description, req.Location,
		req.StartDate, req.EndDate, req.Capacity,
	)

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("event created",
		zap.String("event_id", event.ID),
		zap.String("organizer_id", event.OrganizerID),
		zap.Int("capacity", event.Capacity),
	)
	return event, nil
}

// GetByID fetches an event
func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

// List returns events with pagination
func (s *eventService) List(ctx context.Context, limit, offset int) ([]*domain.Event, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.events.List(ctx, limit, offset)
}

// ListByOrganizer returns an organizer's events
func (s *eventService) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	return s.events.ListByOrganizer(ctx, organizerID)
}

// Update changes event fields. Only the owning organizer or an admin may
// update. All input is validated before anything is written, and the
// repository applies the whole change in one guarded statement, so a
// rejected update leaves the event exactly as it was. The status is
// re-derived from the (possibly new) date range, and a capacity change
// preserves already sold places.
func (s *eventService) Update(ctx context.Context, requester domain.Identity, id string, req *dto.UpdateEventRequest) (*domain.Event, error) {
	if req.Capacity != nil && *req.Capacity < 1 {
		return nil, domain.ErrValidation
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(requester.UserID) && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if !event.EndDate.After(event.StartDate) {
		return nil, domain.ErrValidation
	}
	event.Status = domain.DeriveEventStatus(event.StartDate, event.EndDate, time.Now())
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}

	updated, err := s.events.Update(ctx, event)
	if err != nil {
		return nil, err
	}

	s.logger.Info("event updated", zap.String("event_id", updated.ID))
	return updated, nil
}

// Delete removes an event. Only the owning organizer or an admin may delete.
func (s *eventService) Delete(ctx context.Context, requester domain.Identity, id string) error {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !event.IsOwnedBy(requester.UserID) && !requester.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("event deleted", zap.String("event_id", id))
	return nil
}
