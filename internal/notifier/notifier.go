package notifier

import "context"

// TicketEmail carries the details of a ticket delivery mail
type TicketEmail struct {
	To          string
	VisitorName string
	EventTitle  string
	TicketCode  string
	Places      int
	Amount      int
}

// Notifier delivers ticket notifications to visitors
type Notifier interface {
	SendTicket(ctx context.Context, email TicketEmail) error
}

// NoOpNotifier discards notifications, used when mail is not configured
type NoOpNotifier struct{}

// NewNoOpNotifier creates a notifier that does nothing
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// SendTicket discards the notification
func (n *NoOpNotifier) SendTicket(ctx context.Context, email TicketEmail) error {
	return nil
}
