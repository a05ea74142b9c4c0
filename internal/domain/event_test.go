package domain

import (
	"testing"
	"time"
)

func TestDeriveEventStatus(t *testing.T) {
	start := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 1, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want EventStatus
	}{
		{"before start", start.Add(-time.Hour), EventUpcoming},
		{"at start", start, EventOngoing},
		{"during", start.Add(time.Hour), EventOngoing},
		{"at end", end, EventOngoing},
		{"after end", end.Add(time.Minute), EventFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveEventStatus(start, end, tt.at); got != tt.want {
				t.Errorf("DeriveEventStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewEvent_FullCapacity(t *testing.T) {
	start := time.Now().Add(24 * time.Hour)
	end := start.Add(4 * time.Hour)

	evt := NewEvent("org-1", "Concert", "desc", "Yaounde", start, end, 500)

	if evt.RemainingPlaces != 500 {
		t.Errorf("RemainingPlaces = %d, want 500", evt.RemainingPlaces)
	}
	if evt.Capacity != 500 {
		t.Errorf("Capacity = %d, want 500", evt.Capacity)
	}
	if evt.Status != EventUpcoming {
		t.Errorf("Status = %v, want %v", evt.Status, EventUpcoming)
	}
}

func TestEvent_OccupancyRate(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		remaining int
		want      float64
	}{
		{"empty", 100, 100, 0},
		{"half", 100, 50, 50},
		{"full", 100, 0, 100},
		{"zero capacity", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := &Event{Capacity: tt.capacity, RemainingPlaces: tt.remaining}
			if got := evt.OccupancyRate(); got != tt.want {
				t.Errorf("OccupancyRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvent_IsOwnedBy(t *testing.T) {
	evt := &Event{OrganizerID: "org-1"}

	if !evt.IsOwnedBy("org-1") {
		t.Error("IsOwnedBy(org-1) = false, want true")
	}
	if evt.IsOwnedBy("org-2") {
		t.Error("IsOwnedBy(org-2) = true, want false")
	}
}
