package testutil

import (
	"context"
	"sync"

	appdeck "github.com/preston-bernstein/nba-daily-deck/internal/app/deck"
)

// StubDeckService returns a fixed outcome and records the dates it was asked for.
type StubDeckService struct {
	Outcome appdeck.Outcome

	mu    sync.Mutex
	dates []string
}

// DailyDeck returns the configured outcome.
func (s *StubDeckService) DailyDeck(ctx context.Context, requestedDate string) appdeck.Outcome {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dates = append(s.dates, requestedDate)
	return s.Outcome
}

// Dates returns the requested dates in call order.
func (s *StubDeckService) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.dates...)
}
