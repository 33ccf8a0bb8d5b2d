package boxscore

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
	"github.com/preston-bernstein/nba-daily-deck/internal/metrics"
)

type stubBoxScores struct {
	delay    time.Duration
	failIDs  map[string]bool
	panicIDs map[string]bool

	calls    atomic.Int32
	inFlight atomic.Int32
	mu       sync.Mutex
	maxSeen  int32
}

func (s *stubBoxScores) FetchBoxScore(ctx context.Context, gameID string) (deck.RawBoxScore, error) {
	s.calls.Add(1)
	current := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	s.mu.Lock()
	if current > s.maxSeen {
		s.maxSeen = current
	}
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return deck.RawBoxScore{}, ctx.Err()
		case <-time.After(s.delay):
		}
	}
	if s.panicIDs[gameID] {
		panic("corrupt box score " + gameID)
	}
	if s.failIDs[gameID] {
		return deck.RawBoxScore{}, errors.New("upstream timeout")
	}
	return deck.RawBoxScore{
		GameID: gameID,
		Teams: []deck.RawTeam{{
			TeamID:  1,
			Tricode: "AAA",
			Players: []deck.RawPlayer{
				{PersonID: 1, Name: gameID + "-a", Statistics: map[string]any{"minutes": "20:00", "points": float64(10)}},
				{PersonID: 2, Name: gameID + "-b", Statistics: map[string]any{"minutes": "18:00", "points": float64(8)}},
			},
		}},
	}, nil
}

func gameIDs(results []Result) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.GameID)
	}
	sort.Strings(ids)
	return ids
}

func TestFetchAllIsolatesFailuresAndPanics(t *testing.T) {
	stub := &stubBoxScores{
		failIDs:  map[string]bool{"002": true},
		panicIDs: map[string]bool{"003": true},
	}
	rec := metrics.NewRecorder()
	f := NewFetcher(stub, 5, nil, rec)

	results := f.FetchAll(context.Background(), []string{"001", "002", "003", "004"})
	if len(results) != 4 {
		t.Fatalf("expected a result per game, got %d", len(results))
	}
	if got := gameIDs(results); got[0] != "001" || got[3] != "004" {
		t.Fatalf("unexpected game ids %v", got)
	}

	for _, r := range results {
		switch r.GameID {
		case "001", "004":
			if r.Err != nil || len(r.Players) != 2 {
				t.Fatalf("expected healthy game %s, got %+v", r.GameID, r)
			}
		case "002", "003":
			if r.Err == nil {
				t.Fatalf("expected error for game %s", r.GameID)
			}
			if r.Players == nil || len(r.Players) != 0 {
				t.Fatalf("expected empty non-nil players for failed game %s", r.GameID)
			}
		}
	}

	snap := rec.Deck()
	if snap.BoxScoresOK != 2 || snap.BoxScoresFailed != 2 {
		t.Fatalf("unexpected box score metrics %+v", snap)
	}
}

func TestFetchAllBoundsConcurrency(t *testing.T) {
	stub := &stubBoxScores{delay: 20 * time.Millisecond}
	f := NewFetcher(stub, 2, nil, nil)

	ids := []string{"1", "2", "3", "4", "5", "6", "7"}
	results := f.FetchAll(context.Background(), ids)
	if len(results) != len(ids) {
		t.Fatalf("expected %d results, got %d", len(ids), len(results))
	}
	if stub.maxSeen > 2 {
		t.Fatalf("expected at most 2 concurrent fetches, saw %d", stub.maxSeen)
	}
	if int(stub.calls.Load()) != len(ids) {
		t.Fatalf("expected one call per game, got %d", stub.calls.Load())
	}
}

func TestFetchAllEmptyInput(t *testing.T) {
	stub := &stubBoxScores{}
	results := NewFetcher(stub, 0, nil, nil).FetchAll(context.Background(), nil)
	if results == nil || len(results) != 0 {
		t.Fatalf("expected empty results, got %v", results)
	}
	if stub.calls.Load() != 0 {
		t.Fatalf("expected no upstream calls")
	}
}

func TestFetchGameSwallowsErrors(t *testing.T) {
	stub := &stubBoxScores{failIDs: map[string]bool{"bad": true}}
	f := NewFetcher(stub, 1, nil, nil)

	if players := f.FetchGame(context.Background(), "bad"); players == nil || len(players) != 0 {
		t.Fatalf("expected empty players on failure, got %v", players)
	}
	if players := f.FetchGame(context.Background(), "good"); len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
}

func TestFetchGameWithoutProvider(t *testing.T) {
	f := NewFetcher(nil, 0, nil, nil)
	if f.workers != DefaultWorkers {
		t.Fatalf("expected default workers, got %d", f.workers)
	}
	if players := f.FetchGame(context.Background(), "001"); len(players) != 0 {
		t.Fatalf("expected no players, got %v", players)
	}
}
