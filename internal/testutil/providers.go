package testutil

import (
	"context"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
	"github.com/preston-bernstein/nba-daily-deck/internal/providers"
)

// ErrProvider fails every call with Err.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchScoreboard(ctx context.Context) (deck.GameDate, error) {
	return deck.GameDate{}, p.Err
}

func (p ErrProvider) FetchSchedule(ctx context.Context) ([]deck.GameDate, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchBoxScore(ctx context.Context, gameID string) (deck.RawBoxScore, error) {
	return deck.RawBoxScore{}, p.Err
}

// EmptyProvider reports no games anywhere.
type EmptyProvider struct{}

func (EmptyProvider) FetchScoreboard(ctx context.Context) (deck.GameDate, error) {
	return deck.GameDate{}, nil
}

func (EmptyProvider) FetchSchedule(ctx context.Context) ([]deck.GameDate, error) {
	return []deck.GameDate{}, nil
}

func (EmptyProvider) FetchBoxScore(ctx context.Context, gameID string) (deck.RawBoxScore, error) {
	return deck.RawBoxScore{GameID: gameID}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchScoreboard(ctx context.Context) (deck.GameDate, error) {
	return deck.GameDate{}, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchSchedule(ctx context.Context) ([]deck.GameDate, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchBoxScore(ctx context.Context, gameID string) (deck.RawBoxScore, error) {
	return deck.RawBoxScore{}, providers.ErrProviderUnavailable
}

var (
	_ providers.DataProvider = ErrProvider{}
	_ providers.DataProvider = EmptyProvider{}
	_ providers.DataProvider = UnavailableProvider{}
)
