package domain

import (
	"errors"
	"testing"
)

func TestSubscriptionStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status SubscriptionStatus
		want   bool
	}{
		{"pending", SubscriptionPending, true},
		{"confirmed", SubscriptionConfirmed, true},
		{"used", SubscriptionUsed, true},
		{"unknown", SubscriptionStatus("ANNULE"), false},
		{"empty", SubscriptionStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSubscription_FreeTicketConfirmedImmediately(t *testing.T) {
	sub := NewSubscription("evt-1", "cat-1", "user-1", "TICKET-AB12CD34", 2, 0)

	if sub.Status != SubscriptionConfirmed {
		t.Errorf("free subscription status = %v, want %v", sub.Status, SubscriptionConfirmed)
	}
	if sub.Amount != 0 {
		t.Errorf("free subscription amount = %d, want 0", sub.Amount)
	}
	if !sub.IsFree() {
		t.Error("IsFree() = false, want true")
	}
}

func TestNewSubscription_PaidTicketPending(t *testing.T) {
	sub := NewSubscription("evt-1", "cat-1", "user-1", "TICKET-AB12CD34", 3, 5000)

	if sub.Status != SubscriptionPending {
		t.Errorf("paid subscription status = %v, want %v", sub.Status, SubscriptionPending)
	}
	if sub.Amount != 15000 {
		t.Errorf("amount = %d, want 15000", sub.Amount)
	}
}

func TestSubscription_Confirm(t *testing.T) {
	tests := []struct {
		name    string
		status  SubscriptionStatus
		wantErr error
	}{
		{"from pending", SubscriptionPending, nil},
		{"already confirmed", SubscriptionConfirmed, ErrInvalidState},
		{"already used", SubscriptionUsed, ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &Subscription{Status: tt.status}
			err := sub.Confirm()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Confirm() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && sub.Status != SubscriptionConfirmed {
				t.Errorf("status after Confirm() = %v, want %v", sub.Status, SubscriptionConfirmed)
			}
		})
	}
}

func TestSubscription_Use(t *testing.T) {
	tests := []struct {
		name    string
		status  SubscriptionStatus
		wantErr error
	}{
		{"from confirmed", SubscriptionConfirmed, nil},
		{"still pending", SubscriptionPending, ErrInvalidState},
		{"already used", SubscriptionUsed, ErrTicketAlreadyUsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &Subscription{Status: tt.status}
			err := sub.Use()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Use() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && sub.Status != SubscriptionUsed {
				t.Errorf("status after Use() = %v, want %v", sub.Status, SubscriptionUsed)
			}
		})
	}
}

func TestSubscription_UseThenUseAgain(t *testing.T) {
	sub := &Subscription{Status: SubscriptionConfirmed}

	if err := sub.Use(); err != nil {
		t.Fatalf("first Use() error = %v", err)
	}
	if err := sub.Use(); !errors.Is(err, ErrTicketAlreadyUsed) {
		t.Errorf("second Use() error = %v, want %v", err, ErrTicketAlreadyUsed)
	}
}
