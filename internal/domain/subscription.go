package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the lifecycle state of a subscription
type SubscriptionStatus string

const (
	// SubscriptionPending means payment is still expected
	SubscriptionPending SubscriptionStatus = "EN_ATTENTE"
	// SubscriptionConfirmed means the ticket is paid (or free) and usable
	SubscriptionConfirmed SubscriptionStatus = "REUSSI"
	// SubscriptionUsed means the ticket was validated at the door
	SubscriptionUsed SubscriptionStatus = "UTILISE"
)

// IsValid checks if the status is a known value
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionPending, SubscriptionConfirmed, SubscriptionUsed:
		return true
	}
	return false
}

// String returns the string representation
func (s SubscriptionStatus) String() string {
	return string(s)
}

// CanConfirm reports whether a payment confirmation is allowed from this status
func (s SubscriptionStatus) CanConfirm() bool {
	return s == SubscriptionPending
}

// CanUse reports whether door validation is allowed from this status
func (s SubscriptionStatus) CanUse() bool {
	return s == SubscriptionConfirmed
}

// Subscription is a visitor's reservation of places for an event
type Subscription struct {
	ID         string             `json:"id"`
	EventID    string             `json:"event_id"`
	CategoryID string             `json:"category_id"`
	UserID     string             `json:"user_id"`
	TicketCode string             `json:"ticket_code"`
	Places     int                `json:"places"`
	Amount     int                `json:"amount"`
	Status     SubscriptionStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// NewSubscription creates a subscription for the given reservation.
// A free ticket is confirmed immediately, a paid one awaits payment.
func NewSubscription(eventID, categoryID, userID, ticketCode string, places, unitPrice int) *Subscription {
	status := SubscriptionPending
	if unitPrice == 0 {
		status = SubscriptionConfirmed
	}
	now := time.Now()
	return &Subscription{
		ID:         uuid.New().String(),
		EventID:    eventID,
		CategoryID: categoryID,
		UserID:     userID,
		TicketCode: ticketCode,
		Places:     places,
		Amount:     places * unitPrice,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsFree reports whether the subscription carries no amount due
func (s *Subscription) IsFree() bool {
	return s.Amount == 0
}

// Confirm transitions the subscription to confirmed after payment
func (s *Subscription) Confirm() error {
	if !s.Status.CanConfirm() {
		return ErrInvalidState
	}
	s.Status = SubscriptionConfirmed
	s.UpdatedAt = time.Now()
	return nil
}

// Use transitions the subscription to used at door validation
func (s *Subscription) Use() error {
	if s.Status == SubscriptionUsed {
		return ErrTicketAlreadyUsed
	}
	if !s.Status.CanUse() {
		return ErrInvalidState
	}
	s.Status = SubscriptionUsed
	s.UpdatedAt = time.Now()
	return nil
}
