package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Emmanuel-365/event-app/internal/domain"
	"github.com/Emmanuel-365/event-app/internal/dto"
	"github.com/Emmanuel-365/event-app/internal/repository"
	"github.com/Emmanuel-365/event-app/pkg/logger"
)

// TicketCategoryService manages the priced tiers of an event
type TicketCategoryService interface {
	Create(ctx context.Context, requester domain.Identity, eventID string, req *dto.CreateCategoryRequest) (*domain.TicketCategory, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.TicketCategory, error)
	Update(ctx context.Context, requester domain.Identity, id string, req *dto.UpdateCategoryRequest) (*domain.TicketCategory, error)
	Delete(ctx context.Context, requester domain.Identity, id string) error
}

type ticketCategoryService struct {
	cats   repository.TicketCategoryRepository
	events repository.EventRepository
	logger *logger.Logger
}

// NewTicketCategoryService creates a new ticket category service
func NewTicketCategoryService(cats repository.TicketCategoryRepository, events repository.EventRepository, log *logger.Logger) TicketCategoryService {
	return &ticketCategoryService{cats: cats, events: events, logger: log}
}

// Create adds a category to an event owned by the requester
func (s *ticketCategoryService) Create(ctx context.Context, requester domain.Identity, eventID string, req *dto.CreateCategoryRequest) (*domain.TicketCategory, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(requester.UserID) && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if req.Price < 0 {
		return nil, domain.ErrValidation
	}

	cat := domain.NewTicketCategory(eventID, req.Name, req.Price)
	if err := s.cats.Create(ctx, cat); err != nil {
		return nil, err
	}

	s.logger.Info("category created",
		zap.String("category_id", cat.ID),
		zap.String("event_id", eventID),
	)
	return cat, nil
}

// ListByEvent returns an event's categories
func (s *ticketCategoryService) ListByEvent(ctx context.Context, eventID string) ([]*domain.TicketCategory, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.cats.ListByEvent(ctx, eventID)
}

// Update changes a category owned by the requester's event
func (s *ticketCategoryService) Update(ctx context.Context, requester domain.Identity, id string, req *dto.UpdateCategoryRequest) (*domain.TicketCategory, error) {
	cat, err := s.cats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event, err := s.events.GetByID(ctx, cat.EventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(requester.UserID) && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, domain.ErrValidation
		}
		cat.Price = *req.Price
	}

	if err := s.cats.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete removes a category owned by the requester's event
func (s *ticketCategoryService) Delete(ctx context.Context, requester domain.Identity, id string) error {
	cat, err := s.cats.GetByID(ctx, id)
	if err != nil {
		return err
	}
	event, err := s.events.GetByID(ctx, cat.EventID)
	if err != nil {
		return err
	}
	if !event.IsOwnedBy(requester.UserID) && !requester.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.cats.Delete(ctx, id)
}
