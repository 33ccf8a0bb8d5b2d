package providers

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
	"github.com/preston-bernstein/nba-daily-deck/internal/metrics"
)

const (
	defaultRetryAttempts = 2
	defaultBackoff       = 200 * time.Millisecond
	// defaultMaxRetryAfter bounds how long a rate-limited call may wait before its retry.
	// Longer Retry-After hints end the retry loop instead.
	defaultMaxRetryAfter = time.Second

	opScoreboard = "scoreboard"
	opSchedule   = "schedule"
	opBoxScore   = "boxscore"
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff behavior and call metrics.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc
	maxRetryWait time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, backoff time.Duration) DataProvider {
	return NewRetryingProviderWithRNG(inner, logger, recorder, providerName, nil, maxAttempts, backoff)
}

// NewRetryingProviderWithRNG is NewRetryingProvider with an explicit jitter source.
func NewRetryingProviderWithRNG(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, rng *rand.Rand, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
		maxRetryWait: defaultMaxRetryAfter,
		rng:          rng,
	}
}

func (r *retryingProvider) FetchScoreboard(ctx context.Context) (deck.GameDate, error) {
	return withRetry(ctx, r, opScoreboard, func(ctx context.Context) (deck.GameDate, error) {
		return r.inner.FetchScoreboard(ctx)
	})
}

func (r *retryingProvider) FetchSchedule(ctx context.Context) ([]deck.GameDate, error) {
	return withRetry(ctx, r, opSchedule, func(ctx context.Context) ([]deck.GameDate, error) {
		return r.inner.FetchSchedule(ctx)
	})
}

func (r *retryingProvider) FetchBoxScore(ctx context.Context, gameID string) (deck.RawBoxScore, error) {
	return withRetry(ctx, r, opBoxScore, func(ctx context.Context) (deck.RawBoxScore, error) {
		return r.inner.FetchBoxScore(ctx, gameID)
	}, slog.String("game_id", gameID))
}

// metricKey scopes provider stats per upstream operation.
func (r *retryingProvider) metricKey(op string) string {
	return r.providerName + "." + op
}

func withRetry[T any](ctx context.Context, r *retryingProvider, op string, call func(context.Context) (T, error), attrs ...any) (T, error) {
	var zero T
	if r.inner == nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider unavailable", slog.String("op", op))
		return zero, ErrProviderUnavailable
	}

	key := r.metricKey(op)
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		result, err := call(ctx)
		r.metrics.RecordProviderAttempt(key, time.Since(start), err)
		if err == nil {
			return result, nil
		}
		lastErr = err

		rlErr, limited := AsRateLimitError(err)
		if limited {
			r.metrics.RecordRateLimit(key, rlErr.RetryAfter)
		}
		if attempt == r.maxAttempts || !IsRetryable(err) {
			break
		}
		if limited && rlErr.RetryAfter > r.maxRetryWait {
			logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider retry-after exceeds wait budget",
				append([]any{"op", op, "retry_after_ms", rlErr.RetryAfter.Milliseconds(), "max_wait_ms", r.maxRetryWait.Milliseconds()}, attrs...)...)
			break
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry",
			append([]any{"op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "error", err}, attrs...)...)

		delay := r.computeDelay(err, attempt)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed",
		append([]any{"op", op, "error", lastErr}, attrs...)...)
	return zero, lastErr
}

// computeDelay honours Retry-After for rate limits, capped at maxRetryWait, otherwise applies jitter in [base/2, base].
func (r *retryingProvider) computeDelay(err error, attempt int) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		return min(rlErr.RetryAfter, r.maxRetryWait)
	}
	base := r.backoffFn(attempt)
	if base <= 0 {
		return 0
	}
	half := base / 2
	r.rngMu.Lock()
	jitter := time.Duration(r.rng.Int63n(int64(half) + 1))
	r.rngMu.Unlock()
	return half + jitter
}
