package dto

import (
	"time"

	"github.com/Emmanuel-365/event-app/internal/domain"
)

// CreateEventRequest is the payload to create an event
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	Capacity    int       `json:"capacity" binding:"required,min=1"`
}

// UpdateEventRequest is the payload to update an event.
// Pointer fields distinguish "absent" from zero values.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Capacity    *int       `json:"capacity"`
}

// EventResponse is the API representation of an event
type EventResponse struct {
	ID              string    `json:"id"`
	OrganizerID     string    `json:"organizer_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Capacity        int       `json:"capacity"`
	RemainingPlaces int       `json:"remaining_places"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToEventResponse converts a domain event to its API shape
func ToEventResponse(e *domain.Event) *EventResponse {
	return &EventResponse{
		ID:              e.ID,
		OrganizerID:     e.OrganizerID,
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		StartDate:       e.StartDate,
		EndDate:         e.EndDate,
		Capacity:        e.Capacity,
		RemainingPlaces: e.RemainingPlaces,
		Status:          e.Status.String(),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ToEventResponses converts a list of events
func ToEventResponses(events []*domain.Event) []*EventResponse {
	out := make([]*EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ToEventResponse(e))
	}
	return out
}
