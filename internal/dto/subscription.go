package dto

import (
	"time"

	"github.com/Emmanuel-365/event-app/internal/domain"
)

// ReserveRequest is the payload to reserve places for an event
type ReserveRequest struct {
	EventID    string `json:"event_id" binding:"required,uuid"`
	CategoryID string `json:"category_id" binding:"required,uuid"`
	Places     int    `json:"places" binding:"required,min=1"`
}

// SubscriptionResponse is the API representation of a subscription
type SubscriptionResponse struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	CategoryID string    `json:"category_id"`
	UserID     string    `json:"user_id"`
	TicketCode string    `json:"ticket_code"`
	Places     int       `json:"places"`
	Amount     int       `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToSubscriptionResponse converts a domain subscription to its API shape
func ToSubscriptionResponse(s *domain.Subscription) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:         s.ID,
		EventID:    s.EventID,
		CategoryID: s.CategoryID,
		UserID:     s.UserID,
		TicketCode: s.TicketCode,
		Places:     s.Places,
		Amount:     s.Amount,
		Status:     s.Status.String(),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// ToSubscriptionResponses converts a list of subscriptions
func ToSubscriptionResponses(subs []*domain.Subscription) []*SubscriptionResponse {
	out := make([]*SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, ToSubscriptionResponse(s))
	}
	return out
}

// ValidateTicketRequest is the payload for door validation
type ValidateTicketRequest struct {
	TicketCode string `json:"ticket_code" binding:"required"`
}
