package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
)

// StubWarmer is a test double for poller.Warmer.
type StubWarmer struct {
	mu     sync.Mutex
	err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// SetErr changes the error returned by subsequent Warm calls.
func (s *StubWarmer) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Warm returns the configured error while tracking calls.
func (s *StubWarmer) Warm(ctx context.Context) error {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Scoreboard deck.GameDate
	Schedule   []deck.GameDate
	BoxScores  map[string]deck.RawBoxScore
	Err        error

	ScoreboardCalls atomic.Int32
	ScheduleCalls   atomic.Int32
	BoxScoreCalls   atomic.Int32
}

// FetchScoreboard returns the configured scoreboard.
func (s *StubProvider) FetchScoreboard(ctx context.Context) (deck.GameDate, error) {
	_ = ctx
	s.ScoreboardCalls.Add(1)
	if s.Err != nil {
		return deck.GameDate{}, s.Err
	}
	return s.Scoreboard, nil
}

// FetchSchedule returns the configured schedule.
func (s *StubProvider) FetchSchedule(ctx context.Context) ([]deck.GameDate, error) {
	_ = ctx
	s.ScheduleCalls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Schedule, nil
}

// FetchBoxScore returns the configured box score for gameID; unknown ids yield an empty box score.
func (s *StubProvider) FetchBoxScore(ctx context.Context, gameID string) (deck.RawBoxScore, error) {
	_ = ctx
	s.BoxScoreCalls.Add(1)
	if s.Err != nil {
		return deck.RawBoxScore{}, s.Err
	}
	return s.BoxScores[gameID], nil
}
