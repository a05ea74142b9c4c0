package dto

import (
	"time"

	"github.com/Emmanuel-365/event-app/internal/domain"
)

// CreateCategoryRequest is the payload to add a ticket category to an event
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Price int    `json:"price" binding:"min=0"`
}

// UpdateCategoryRequest is the payload to update a ticket category
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Price *int    `json:"price"`
}

// CategoryResponse is the API representation of a ticket category
type CategoryResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	Price     int       `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a domain category to its API shape
func ToCategoryResponse(c *domain.TicketCategory) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		EventID:   c.EventID,
		Name:      c.Name,
		Price:     c.Price,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCategoryResponses converts a list of categories
func ToCategoryResponses(cats []*domain.TicketCategory) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}
