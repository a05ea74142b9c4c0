package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Emmanuel-365/event-app/internal/domain"
)

type codeCheckerFunc func(ctx context.Context, code string) (bool, error)

func (f codeCheckerFunc) ExistsCode(ctx context.Context, code string) (bool, error) {
	return f(ctx, code)
}

var ticketCodePattern = regexp.MustCompile(`^TICKET-[0-9A-F]{8}$`)

func TestTicketCodeGenerator_Format(t *testing.T) {
	gen := NewTicketCodeGenerator(codeCheckerFunc(func(ctx context.Context, code string) (bool, error) {
		return false, nil
	}), 5)

	for i := 0; i < 100; i++ {
		code, err := gen.Generate(context.Background())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if !ticketCodePattern.MatchString(code) {
			t.Fatalf("Generate() = %q, want match for %v", code, ticketCodePattern)
		}
	}
}

func TestTicketCodeGenerator_RetriesOnCollision(t *testing.T) {
	calls := 0
	gen := NewTicketCodeGenerator(codeCheckerFunc(func(ctx context.Context, code string) (bool, error) {
		calls++
		// First two candidates collide
		return calls <= 2, nil
	}), 5)

	code, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if code == "" {
		t.Error("Generate() returned empty code")
	}
	if calls != 3 {
		t.Errorf("checker called %d times, want 3", calls)
	}
}

func TestTicketCodeGenerator_GivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	gen := NewTicketCodeGenerator(codeCheckerFunc(func(ctx context.Context, code string) (bool, error) {
		calls++
		return true, nil
	}), 3)

	_, err := gen.Generate(context.Background())
	if !errors.Is(err, domain.ErrCodeConflict) {
		t.Errorf("Generate() error = %v, want %v", err, domain.ErrCodeConflict)
	}
	if calls != 3 {
		t.Errorf("checker called %d times, want 3", calls)
	}
}

func TestTicketCodeGenerator_PropagatesCheckerError(t *testing.T) {
	checkErr := errors.New("db down")
	gen := NewTicketCodeGenerator(codeCheckerFunc(func(ctx context.Context, code string) (bool, error) {
		return false, checkErr
	}), 5)

	_, err := gen.Generate(context.Background())
	if !errors.Is(err, checkErr) {
		t.Errorf("Generate() error = %v, want %v", err, checkErr)
	}
}
