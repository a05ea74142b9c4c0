package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus reflects where the event sits relative to its date range
type EventStatus string

const (
	// EventUpcoming means the event has not started yet
	EventUpcoming EventStatus = "PROCHAINEMENT"
	// EventOngoing means the event is currently running
	EventOngoing EventStatus = "EN_COURS"
	// EventFinished means the event is over
	EventFinished EventStatus = "TERMINE"
)

// IsValid checks if the status is a known value
func (s EventStatus) IsValid() bool {
	switch s {
	case EventUpcoming, EventOngoing, EventFinished:
		return true
	}
	return false
}

// String returns the string representation
func (s EventStatus) String() string {
	return string(s)
}

// Event is a scheduled happening visitors can subscribe to
type Event struct {
	ID              string      `json:"id"`
	OrganizerID     string      `json:"organizer_id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Location        string      `json:"location"`
	StartDate       time.Time   `json:"start_date"`
	EndDate         time.Time   `json:"end_date"`
	Capacity        int         `json:"capacity"`
	RemainingPlaces int         `json:"remaining_places"`
	Status          EventStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// NewEvent creates an event with full remaining capacity
func NewEvent(organizerID, title, description, location string, start, end time.Time, capacity int) *Event {
	now := time.Now()
	return &Event{
		ID:              uuid.New().String(),
		OrganizerID:     organizerID,
		Title:           title,
		Description:     description,
		Location:        location,
		StartDate:       start,
		EndDate:         end,
		Capacity:        capacity,
		RemainingPlaces: capacity,
		Status:          DeriveEventStatus(start, end, now),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// DeriveEventStatus computes the status from the date range
func DeriveEventStatus(start, end, at time.Time) EventStatus {
	switch {
	case at.Before(start):
		return EventUpcoming
	case at.After(end):
		return EventFinished
	default:
		return EventOngoing
	}
}

// IsOwnedBy reports whether the given user organizes this event
func (e *Event) IsOwnedBy(userID string) bool {
	return e.OrganizerID == userID
}

// SoldPlaces returns the number of places currently reserved
func (e *Event) SoldPlaces() int {
	return e.Capacity - e.RemainingPlaces
}

// OccupancyRate returns the fill ratio in percent
func (e *Event) OccupancyRate() float64 {
	if e.Capacity == 0 {
		return 0
	}
	return float64(e.SoldPlaces()) / float64(e.Capacity) * 100
}
