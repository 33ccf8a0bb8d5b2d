package resolver

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
	"github.com/preston-bernstein/nba-daily-deck/internal/logging"
	"github.com/preston-bernstein/nba-daily-deck/internal/providers"
	"github.com/preston-bernstein/nba-daily-deck/internal/timeutil"
)

// DefaultLookbackDays bounds how far back the resolver searches for finished games.
const DefaultLookbackDays = 7

// ScheduleSource answers which games on a date are final.
type ScheduleSource interface {
	GamesForDate(ctx context.Context, date string) []string
}

// Resolution is a game date (MM/DD/YYYY) with its completed game ids.
type Resolution struct {
	Date    string
	GameIDs []string
}

// Resolver picks the most recent date with completed games.
type Resolver struct {
	scoreboard providers.ScoreboardProvider
	schedule   ScheduleSource
	lookback   int
	now        func() time.Time
	loc        *time.Location
	logger     *slog.Logger
}

// New builds a Resolver. lookbackDays <= 0 uses DefaultLookbackDays.
func New(scoreboard providers.ScoreboardProvider, schedule ScheduleSource, lookbackDays int, logger *slog.Logger) *Resolver {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return &Resolver{
		scoreboard: scoreboard,
		schedule:   schedule,
		lookback:   lookbackDays,
		now:        time.Now,
		loc:        timeutil.LeagueLocation(),
		logger:     logger,
	}
}

// WithClock overrides the time source.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	if now != nil {
		r.now = now
	}
	return r
}

// Resolve returns the target game date as MM/DD/YYYY.
func (r *Resolver) Resolve(ctx context.Context) string {
	return r.ResolveGames(ctx).Date
}

// ResolveGames checks the live scoreboard first, then walks the schedule back
// one day at a time, and finally falls back to yesterday with no games.
// Upstream errors are logged and treated as "no games".
func (r *Resolver) ResolveGames(ctx context.Context) Resolution {
	today := r.now().In(r.loc)
	logger := logging.FromContext(ctx, r.logger)

	if board, ok := r.liveScoreboard(ctx); ok {
		if ids := board.FinalGameIDs(); len(ids) > 0 {
			date := board.Date
			if date == "" {
				date = timeutil.FormatScheduleDate(today)
			}
			logging.Info(logger, "resolved date from live scoreboard",
				slog.String(logging.FieldDate, date),
				slog.Int(logging.FieldCount, len(ids)),
			)
			return Resolution{Date: date, GameIDs: ids}
		}
	}

	for back := 1; back <= r.lookback; back++ {
		date := timeutil.FormatScheduleDate(today.AddDate(0, 0, -back))
		ids := r.scheduleGames(ctx, date)
		if len(ids) > 0 {
			logging.Info(logger, "resolved date from schedule",
				slog.String(logging.FieldDate, date),
				slog.Int(logging.FieldCount, len(ids)),
			)
			return Resolution{Date: date, GameIDs: ids}
		}
	}

	date := timeutil.FormatScheduleDate(today.AddDate(0, 0, -1))
	logging.Warn(logger, "no completed games in lookback window, falling back to yesterday",
		slog.String(logging.FieldDate, date),
		slog.Int("lookback_days", r.lookback),
	)
	return Resolution{Date: date, GameIDs: []string{}}
}

// GamesFor returns the completed games on an explicit date. When the date is
// the live scoreboard's date, its final games are merged in since the
// schedule snapshot can lag behind.
func (r *Resolver) GamesFor(ctx context.Context, date string) Resolution {
	normalized := timeutil.NormalizeScheduleDate(date)
	if normalized == "" {
		return Resolution{Date: date, GameIDs: []string{}}
	}

	ids := r.scheduleGames(ctx, normalized)
	if !r.mayBeLive(normalized) {
		return Resolution{Date: normalized, GameIDs: ids}
	}

	board, ok := r.liveScoreboard(ctx)
	if !ok || board.Date != normalized {
		return Resolution{Date: normalized, GameIDs: ids}
	}
	ids = append(make([]string, 0, len(ids)), ids...)
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	for _, id := range board.FinalGameIDs() {
		if _, dup := seen[id]; !dup {
			ids = append(ids, id)
			seen[id] = struct{}{}
		}
	}
	return Resolution{Date: normalized, GameIDs: ids}
}

// mayBeLive reports whether date is today or yesterday in league time; the
// live scoreboard rolls over in the morning, so it can still show yesterday.
func (r *Resolver) mayBeLive(date string) bool {
	today := r.now().In(r.loc)
	return date == timeutil.FormatScheduleDate(today) ||
		date == timeutil.FormatScheduleDate(today.AddDate(0, 0, -1))
}

func (r *Resolver) liveScoreboard(ctx context.Context) (board deck.GameDate, ok bool) {
	if r.scoreboard == nil {
		return board, false
	}
	board, err := r.scoreboard.FetchScoreboard(ctx)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, r.logger), "live scoreboard probe failed", slog.Any("error", err))
		return board, false
	}
	return board, true
}

func (r *Resolver) scheduleGames(ctx context.Context, date string) []string {
	if r.schedule == nil {
		return []string{}
	}
	ids := r.schedule.GamesForDate(ctx, date)
	if ids == nil {
		return []string{}
	}
	return ids
}
