package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Emmanuel-365/event-app/internal/domain"
	"github.com/Emmanuel-365/event-app/internal/dto"
	"github.com/Emmanuel-365/event-app/internal/metrics"
	"github.com/Emmanuel-365/event-app/internal/notifier"
	"github.com/Emmanuel-365/event-app/internal/repository"
	"github.com/Emmanuel-365/event-app/pkg/logger"
)

// SubscriptionService drives the subscription lifecycle
type SubscriptionService interface {
	Reserve(ctx context.Context, requester domain.Identity, req *dto.ReserveRequest) (*domain.Subscription, error)
	ConfirmPayment(ctx context.Context, requester domain.Identity, subscriptionID string) (*domain.Subscription, error)
	Cancel(ctx context.Context, requester domain.Identity, subscriptionID string) error
	ValidateAtDoor(ctx context.Context, requester domain.Identity, ticketCode string) (*domain.Subscription, error)
	GetByID(ctx context.Context, requester domain.Identity, subscriptionID string) (*domain.Subscription, error)
	ListMine(ctx context.Context, requester domain.Identity) ([]*domain.Subscription, error)
	ListForEvent(ctx context.Context, requester domain.Identity, eventID string) ([]*domain.Subscription, error)
}

type subscriptionService struct {
	subs     repository.SubscriptionRepository
	events   repository.EventRepository
	cats     repository.TicketCategoryRepository
	users    repository.UserRepository
	codes    *TicketCodeGenerator
	notifier notifier.Notifier
	logger   *logger.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	subs repository.SubscriptionRepository,
	events repository.EventRepository,
	cats repository.TicketCategoryRepository,
	users repository.UserRepository,
	codes *TicketCodeGenerator,
	n notifier.Notifier,
	log *logger.Logger,
) SubscriptionService {
	return &subscriptionService{
		subs:     subs,
		events:   events,
		cats:     cats,
		users:    users,
		codes:    codes,
		notifier: n,
		logger:   log,
	}
}

// Reserve books places on an event for a visitor. Free tickets are confirmed
// immediately, paid ones stay pending until the payment comes through.
func (s *subscriptionService) Reserve(ctx context.Context, requester domain.Identity, req *dto.ReserveRequest) (*domain.Subscription, error) {
	start := time.Now()

	if !requester.IsVisitor() {
		return nil, domain.ErrForbidden
	}
	if req.Places < 1 {
		return nil, domain.ErrValidation
	}

	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	cat, err := s.cats.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !cat.BelongsTo(event.ID) {
		return nil, domain.ErrNotFound
	}

	code, err := s.codes.Generate(ctx)
	if err != nil {
		return nil, err
	}

	sub := domain.NewSubscription(event.ID, cat.ID, requester.UserID, code, req.Places, cat.Price)

	if err := s.subs.CreateWithReservation(ctx, sub); err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			metrics.CapacityExceededTotal.Inc()
			metrics.ReservationsTotal.WithLabelValues("capacity_exceeded").Inc()
		} else {
			metrics.ReservationsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.ReservationsTotal.WithLabelValues("success").Inc()
	metrics.ReservationDuration.Observe(time.Since(start).Seconds())

	s.logger.Info("subscription created",
		zap.String("subscription_id", sub.ID),
		zap.String("event_id", event.ID),
		zap.String("status", sub.Status.String()),
		zap.Int("places", sub.Places),
	)

	if sub.Status == domain.SubscriptionConfirmed {
		s.notifyAsync(sub, event.Title)
	}

	return sub, nil
}

// ConfirmPayment moves a pending subscription to confirmed once the payment
// is settled. Only the subscription owner or an admin may confirm.
func (s *subscriptionService) ConfirmPayment(ctx context.Context, requester domain.Identity, subscriptionID string) (*domain.Subscription, error) {
	sub, err := s.subs.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.UserID != requester.UserID && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if !sub.Status.CanConfirm() {
		return nil, domain.ErrInvalidState
	}

	if err := s.subs.UpdateStatus(ctx, sub.ID, domain.SubscriptionPending, domain.SubscriptionConfirmed); err != nil {
		return nil, err
	}
	sub.Status = domain.SubscriptionConfirmed

	metrics.PaymentsConfirmedTotal.Inc()
	s.logger.Info("payment confirmed", zap.String("subscription_id", sub.ID))

	title := ""
	if event, err := s.events.GetByID(ctx, sub.EventID); err == nil {
		title = event.Title
	}
	s.notifyAsync(sub, title)

	return sub, nil
}

// Cancel deletes a subscription and returns its places to the event.
// Only the owner or an admin may cancel.
func (s *subscriptionService) Cancel(ctx context.Context, requester domain.Identity, subscriptionID string) error {
	sub, err := s.subs.GetByID(ctx, subscriptionID)
	if err != nil {
		return err
	}
	if sub.UserID != requester.UserID && !requester.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.subs.DeleteWithRelease(ctx, sub); err != nil {
		return err
	}

	metrics.CancellationsTotal.Inc()
	s.logger.Info("subscription cancelled",
		zap.String("subscription_id", sub.ID),
		zap.String("event_id", sub.EventID),
		zap.Int("places", sub.Places),
	)
	return nil
}

// ValidateAtDoor marks a ticket as used at the entrance. Only the organizer
// of the event the ticket belongs to may validate it.
func (s *subscriptionService) ValidateAtDoor(ctx context.Context, requester domain.Identity, ticketCode string) (*domain.Subscription, error) {
	if !requester.IsOrganizer() && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	sub, err := s.subs.GetByCode(ctx, ticketCode)
	if err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, sub.EventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(requester.UserID) && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if sub.Status == domain.SubscriptionUsed {
		metrics.TicketValidationsTotal.WithLabelValues("already_used").Inc()
		return nil, domain.ErrTicketAlreadyUsed
	}
	if !sub.Status.CanUse() {
		metrics.TicketValidationsTotal.WithLabelValues("invalid_state").Inc()
		return nil, domain.ErrInvalidState
	}

	if err := s.subs.UpdateStatus(ctx, sub.ID, domain.SubscriptionConfirmed, domain.SubscriptionUsed); err != nil {
		if errors.Is(err, domain.ErrTicketAlreadyUsed) {
			metrics.TicketValidationsTotal.WithLabelValues("already_used").Inc()
		}
		return nil, err
	}
	sub.Status = domain.SubscriptionUsed

	metrics.TicketValidationsTotal.WithLabelValues("success").Inc()
	s.logger.Info("ticket validated",
		zap.String("subscription_id", sub.ID),
		zap.String("ticket_code", sub.TicketCode),
	)
	return sub, nil
}

// GetByID fetches a subscription the requester is allowed to see:
// the owner, the event organizer, or an admin.
func (s *subscriptionService) GetByID(ctx context.Context, requester domain.Identity, subscriptionID string) (*domain.Subscription, error) {
	sub, err := s.subs.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if sub.UserID == requester.UserID || requester.IsAdmin() {
		return sub, nil
	}
	event, err := s.events.GetByID(ctx, sub.EventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(requester.UserID) {
		return nil, domain.ErrForbidden
	}
	return sub, nil
}

// ListMine returns the requester's own subscriptions
func (s *subscriptionService) ListMine(ctx context.Context, requester domain.Identity) ([]*domain.Subscription, error) {
	return s.subs.ListByUser(ctx, requester.UserID)
}

// ListForEvent returns an event's subscriptions for its organizer or an admin
func (s *subscriptionService) ListForEvent(ctx context.Context, requester domain.Identity, eventID string) ([]*domain.Subscription, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(requester.UserID) && !requester.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.subs.ListByEvent(ctx, eventID)
}

// notifyAsync mails the ticket without blocking the request. Delivery is
// best effort, failures are only logged.
func (s *subscriptionService) notifyAsync(sub *domain.Subscription, eventTitle string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := s.users.GetByID(ctx, sub.UserID)
		if err != nil {
			s.logger.Warn("failed to load user for notification",
				zap.String("user_id", sub.UserID), zap.Error(err))
			return
		}

		err = s.notifier.SendTicket(ctx, notifier.TicketEmail{
			To:          user.Email,
			VisitorName: user.FullName(),
			EventTitle:  eventTitle,
			TicketCode:  sub.TicketCode,
			Places:      sub.Places,
			Amount:      sub.Amount,
		})
		if err != nil {
			s.logger.Warn("failed to send ticket email",
				zap.String("subscription_id", sub.ID), zap.Error(err))
		}
	}()
}
