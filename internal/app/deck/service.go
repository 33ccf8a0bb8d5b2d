package deck

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-daily-deck/internal/boxscore"
	"github.com/preston-bernstein/nba-daily-deck/internal/cache"
	domaindeck "github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
	"github.com/preston-bernstein/nba-daily-deck/internal/logging"
	"github.com/preston-bernstein/nba-daily-deck/internal/metrics"
	"github.com/preston-bernstein/nba-daily-deck/internal/resolver"
	"github.com/preston-bernstein/nba-daily-deck/internal/timeutil"
)

// InvalidDateMessage is returned when the caller's date is not YYYY-MM-DD.
const InvalidDateMessage = "Invalid date format. Use YYYY-MM-DD."

// NoGamesMessage is returned when the resolved date has no completed games.
func NoGamesMessage(date string) string {
	return fmt.Sprintf("No completed games found for %s.", date)
}

// Store caches computed decks by key.
type Store interface {
	Get(key string) ([]domaindeck.Pair, bool)
	Set(key string, pairs []domaindeck.Pair)
}

// DateResolver picks the target date and its completed games.
type DateResolver interface {
	ResolveGames(ctx context.Context) resolver.Resolution
	GamesFor(ctx context.Context, date string) resolver.Resolution
}

// BoxScoreFetcher fans out per-game fetches.
type BoxScoreFetcher interface {
	FetchAll(ctx context.Context, gameIDs []string) []boxscore.Result
}

// Ranker trims one game's players down to each team's best.
type Ranker interface {
	Rank(players []domaindeck.PlayerStat) []domaindeck.PlayerStat
}

// Pairer turns the pooled players into pairs.
type Pairer interface {
	Pair(pool []domaindeck.PlayerStat) []domaindeck.Pair
}

// Dependencies wires the pipeline stages.
type Dependencies struct {
	Resolver DateResolver
	Fetcher  BoxScoreFetcher
	Ranker   Ranker
	Pairer   Pairer
	Store    Store
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Outcome is the result of one deck request. Message is set instead of Pairs
// when there was nothing to pair.
type Outcome struct {
	Date    string
	Pairs   []domaindeck.Pair
	Message string
	Cached  bool
}

// Service runs the daily deck pipeline.
type Service struct {
	deps Dependencies
}

// NewService constructs a Service.
func NewService(deps Dependencies) *Service {
	return &Service{deps: deps}
}

// DailyDeck builds (or serves from cache) the pairs for requestedDate.
// An empty requestedDate resolves the most recent date with completed games;
// otherwise requestedDate must be YYYY-MM-DD.
func (s *Service) DailyDeck(ctx context.Context, requestedDate string) Outcome {
	logger := logging.FromContext(ctx, s.deps.Logger)

	var res resolver.Resolution
	if requestedDate == "" {
		res = s.deps.Resolver.ResolveGames(ctx)
	} else {
		scheduleDate, err := timeutil.ToScheduleDate(requestedDate)
		if err != nil {
			return Outcome{Message: InvalidDateMessage, Pairs: []domaindeck.Pair{}}
		}
		res = s.deps.Resolver.GamesFor(ctx, scheduleDate)
	}

	if len(res.GameIDs) == 0 {
		logging.Info(logger, "no completed games", slog.String(logging.FieldDate, res.Date))
		return Outcome{Date: res.Date, Message: NoGamesMessage(res.Date), Pairs: []domaindeck.Pair{}}
	}

	key := cache.Key(res.Date)
	if pairs, ok := s.deps.Store.Get(key); ok {
		s.deps.Metrics.RecordCacheLookup(true)
		return Outcome{Date: res.Date, Pairs: pairs, Cached: true}
	}
	s.deps.Metrics.RecordCacheLookup(false)

	start := time.Now()
	pool := s.buildPool(ctx, res.GameIDs, logger)
	pairs := s.deps.Pairer.Pair(pool)
	// A deck cut short by the request deadline is served but not cached.
	if len(pairs) > 0 && ctx.Err() == nil {
		s.deps.Store.Set(key, pairs)
	}

	logging.Info(logger, "daily deck built",
		slog.String(logging.FieldDate, res.Date),
		slog.Int("games", len(res.GameIDs)),
		slog.Int("players", len(pool)),
		slog.Int(logging.FieldCount, len(pairs)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return Outcome{Date: res.Date, Pairs: pairs}
}

// buildPool ranks each game separately and unions the survivors in game id
// order so the pool is deterministic before shuffling.
func (s *Service) buildPool(ctx context.Context, gameIDs []string, logger *slog.Logger) []domaindeck.PlayerStat {
	byGame := make(map[string]boxscore.Result, len(gameIDs))
	for _, r := range s.deps.Fetcher.FetchAll(ctx, gameIDs) {
		byGame[r.GameID] = r
	}

	pool := make([]domaindeck.PlayerStat, 0)
	failed := 0
	for _, id := range gameIDs {
		r, ok := byGame[id]
		if !ok || r.Err != nil {
			failed++
			continue
		}
		pool = append(pool, s.deps.Ranker.Rank(r.Players)...)
	}
	if failed > 0 {
		logging.Warn(logger, "some games contributed no players",
			slog.Int("failed_games", failed),
			slog.Int("games", len(gameIDs)),
		)
	}
	return pool
}
