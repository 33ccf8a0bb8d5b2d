package providers

import (
	"context"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
)

// ScoreboardProvider fetches the live "today" scoreboard.
// The returned GameDate carries the scoreboard's own date (MM/DD/YYYY) when the upstream reports one.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context) (deck.GameDate, error)
}

// ScheduleProvider fetches the full season schedule.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context) ([]deck.GameDate, error)
}

// BoxScoreProvider fetches one game's box score.
type BoxScoreProvider interface {
	FetchBoxScore(ctx context.Context, gameID string) (deck.RawBoxScore, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScoreboardProvider
	ScheduleProvider
	BoxScoreProvider
}
