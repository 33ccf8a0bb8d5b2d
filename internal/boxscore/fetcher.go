package boxscore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
	"github.com/preston-bernstein/nba-daily-deck/internal/logging"
	"github.com/preston-bernstein/nba-daily-deck/internal/metrics"
	"github.com/preston-bernstein/nba-daily-deck/internal/providers"
)

// DefaultWorkers bounds concurrent box score requests.
const DefaultWorkers = 5

// Result is the outcome of one game's fetch. Players is empty when Err is set.
type Result struct {
	GameID  string
	Players []deck.PlayerStat
	Err     error
}

// Fetcher downloads and normalizes box scores on a bounded worker pool.
type Fetcher struct {
	provider providers.BoxScoreProvider
	workers  int
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewFetcher builds a Fetcher. workers <= 0 falls back to DefaultWorkers.
func NewFetcher(provider providers.BoxScoreProvider, workers int, logger *slog.Logger, recorder *metrics.Recorder) *Fetcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Fetcher{
		provider: provider,
		workers:  workers,
		logger:   logger,
		metrics:  recorder,
	}
}

// FetchGame returns the normalized players of one game. Failures are logged
// and yield an empty slice.
func (f *Fetcher) FetchGame(ctx context.Context, gameID string) []deck.PlayerStat {
	res := f.run(ctx, gameID)
	if res.Err != nil {
		return []deck.PlayerStat{}
	}
	return res.Players
}

// FetchAll fetches every game concurrently. A failing or panicking game never
// affects the others. Results arrive in completion order.
func (f *Fetcher) FetchAll(ctx context.Context, gameIDs []string) []Result {
	if len(gameIDs) == 0 {
		return []Result{}
	}

	results := make(chan Result, len(gameIDs))
	pool, err := ants.NewPool(f.workers)
	if err != nil {
		logging.Warn(f.logger, "worker pool unavailable, fetching sequentially", "error", err)
		for _, id := range gameIDs {
			results <- f.run(ctx, id)
		}
		close(results)
		return collect(results, len(gameIDs))
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, id := range gameIDs {
		id := id
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results <- f.run(ctx, id)
		}); err != nil {
			workers.Done()
			results <- Result{GameID: id, Players: []deck.PlayerStat{}, Err: errors.Wrap(err, "submit box score task")}
		}
	}

	workers.Wait()
	close(results)
	return collect(results, len(gameIDs))
}

func collect(results <-chan Result, n int) []Result {
	out := make([]Result, 0, n)
	for res := range results {
		out = append(out, res)
	}
	return out
}

// run fetches one game with panic isolation and records the outcome.
func (f *Fetcher) run(ctx context.Context, gameID string) Result {
	start := time.Now()
	res := Result{GameID: gameID, Players: []deck.PlayerStat{}}

	var pc panics.Catcher
	pc.Try(func() {
		res.Players, res.Err = f.fetch(ctx, gameID)
	})
	if recovered := pc.Recovered(); recovered != nil {
		res.Players = []deck.PlayerStat{}
		res.Err = errors.Wrapf(recovered.AsError(), "box score %s panicked", gameID)
	}

	f.metrics.RecordBoxScore(time.Since(start), res.Err)
	logger := logging.FromContext(ctx, f.logger)
	if res.Err != nil {
		logging.Warn(logger, "box score fetch failed",
			slog.String(logging.FieldGameID, gameID),
			slog.Any("error", res.Err),
		)
	} else if logger != nil {
		logger.Debug("box score fetched",
			slog.String(logging.FieldGameID, gameID),
			slog.Int(logging.FieldCount, len(res.Players)),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
	}
	return res
}

func (f *Fetcher) fetch(ctx context.Context, gameID string) ([]deck.PlayerStat, error) {
	if f.provider == nil {
		return []deck.PlayerStat{}, providers.ErrProviderUnavailable
	}
	box, err := f.provider.FetchBoxScore(ctx, gameID)
	if err != nil {
		return []deck.PlayerStat{}, errors.Wrapf(err, "fetch box score %s", gameID)
	}
	return ParseBoxScore(box, logging.FromContext(ctx, f.logger)), nil
}
