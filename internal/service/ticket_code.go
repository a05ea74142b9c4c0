package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Emmanuel-365/event-app/internal/domain"
)

// CodeChecker reports whether a ticket code is already in use
type CodeChecker interface {
	ExistsCode(ctx context.Context, ticketCode string) (bool, error)
}

// TicketCodeGenerator produces unique door codes of the form TICKET-XXXXXXXX
type TicketCodeGenerator struct {
	checker     CodeChecker
	maxAttempts int
}

// NewTicketCodeGenerator creates a generator that retries on collisions
func NewTicketCodeGenerator(checker CodeChecker, maxAttempts int) *TicketCodeGenerator {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &TicketCodeGenerator{checker: checker, maxAttempts: maxAttempts}
}

// Generate returns a ticket code not currently in use. After maxAttempts
// collisions it gives up with ErrCodeConflict. The check is advisory: the
// unique index on ticket_code is the real guarantee at insert time.
func (g *TicketCodeGenerator) Generate(ctx context.Context) (string, error) {
	for i := 0; i < g.maxAttempts; i++ {
		code := newTicketCode()
		exists, err := g.checker.ExistsCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", domain.ErrCodeConflict
}

func newTicketCode() string {
	return "TICKET-" + strings.ToUpper(uuid.New().String()[:8])
}
