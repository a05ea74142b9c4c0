package domain

import (
	"time"

	"github.com/google/uuid"
)

// TicketCategory is a priced tier of places within an event (e.g. Standard, VIP)
type TicketCategory struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	Price     int       `json:"price"` // unit price in CFA francs, 0 means free
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTicketCategory creates a category for an event
func NewTicketCategory(eventID, name string, price int) *TicketCategory {
	now := time.Now()
	return &TicketCategory{
		ID:        uuid.New().String(),
		EventID:   eventID,
		Name:      name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsFree reports whether this category costs nothing
func (t *TicketCategory) IsFree() bool {
	return t.Price == 0
}

// BelongsTo reports whether the category belongs to the given event
func (t *TicketCategory) BelongsTo(eventID string) bool {
	return t.EventID == eventID
}
