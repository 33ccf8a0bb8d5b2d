package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type deckStats struct {
	cacheHits         int
	cacheMisses       int
	boxScoresOK       int
	boxScoresFailed   int
	scheduleRefreshes int
	scheduleFailures  int
}

// Recorder captures lightweight, in-memory metrics about provider calls and the
// deck pipeline, mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	deck  deckStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordCacheLookup counts deck cache hits and misses.
func (r *Recorder) RecordCacheLookup(hit bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	if hit {
		r.deck.cacheHits++
	} else {
		r.deck.cacheMisses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		outcome := OutcomeMiss
		if hit {
			outcome = OutcomeHit
		}
		r.otel.recordCacheLookup(outcome)
	}
}

// RecordBoxScore counts per-game box score outcomes.
func (r *Recorder) RecordBoxScore(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	if err != nil {
		r.deck.boxScoresFailed++
	} else {
		r.deck.boxScoresOK++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordBoxScore(duration, err)
	}
}

// RecordScheduleRefresh counts schedule snapshot refresh attempts.
func (r *Recorder) RecordScheduleRefresh(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.deck.scheduleRefreshes++
	if err != nil {
		r.deck.scheduleFailures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordScheduleRefresh(duration, err)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// DeckSnapshot is a copy of the pipeline counters.
type DeckSnapshot struct {
	CacheHits         int
	CacheMisses       int
	BoxScoresOK       int
	BoxScoresFailed   int
	ScheduleRefreshes int
	ScheduleFailures  int
}

// Deck returns a copy of the pipeline counters.
func (r *Recorder) Deck() DeckSnapshot {
	if r == nil {
		return DeckSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return DeckSnapshot{
		CacheHits:         r.deck.cacheHits,
		CacheMisses:       r.deck.cacheMisses,
		BoxScoresOK:       r.deck.boxScoresOK,
		BoxScoresFailed:   r.deck.boxScoresFailed,
		ScheduleRefreshes: r.deck.scheduleRefreshes,
		ScheduleFailures:  r.deck.scheduleFailures,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordWarmCycle tracks schedule warmer cycles and errors.
func (r *Recorder) RecordWarmCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordWarm(duration, err)
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
