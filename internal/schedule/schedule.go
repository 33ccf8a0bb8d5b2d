package schedule

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
	"github.com/preston-bernstein/nba-daily-deck/internal/logging"
	"github.com/preston-bernstein/nba-daily-deck/internal/metrics"
	"github.com/preston-bernstein/nba-daily-deck/internal/providers"
	"github.com/preston-bernstein/nba-daily-deck/internal/timeutil"
)

// DefaultTTL is how long a fetched schedule is trusted.
const DefaultTTL = 3600 * time.Second

const refreshKey = "schedule"

// Snapshot is an immutable copy of the season schedule.
type Snapshot struct {
	GameDates []deck.GameDate
	FetchedAt time.Time
}

// Provider serves the season schedule from an hourly snapshot.
type Provider struct {
	upstream providers.ScheduleProvider
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
	metrics  *metrics.Recorder

	mu         sync.RWMutex
	snapshot   *Snapshot
	group      singleflight.Group
	refreshing atomic.Bool
}

// New builds a schedule Provider. ttl <= 0 uses DefaultTTL.
func New(upstream providers.ScheduleProvider, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *Provider {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Provider{
		upstream: upstream,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
		metrics:  recorder,
	}
}

// WithClock overrides the time source.
func (p *Provider) WithClock(now func() time.Time) *Provider {
	if now != nil {
		p.now = now
	}
	return p
}

// Schedule returns the current snapshot's game dates, refreshing it first when stale.
// While a refresh is in flight, callers holding a stale snapshot get it back
// immediately; only the caller that starts the refresh, or callers with no
// snapshot at all, wait for the upstream. Upstream failures leave the previous
// snapshot in place.
func (p *Provider) Schedule(ctx context.Context) []deck.GameDate {
	snap, fresh := p.peek()
	if fresh {
		return snap.GameDates
	}
	if snap != nil {
		if !p.refreshing.CompareAndSwap(false, true) {
			return snap.GameDates
		}
		defer p.refreshing.Store(false)
	}
	return p.refresh(ctx).GameDates
}

// GamesForDate returns the FINAL game ids on date, in upstream order.
// date may be MM/DD/YYYY, YYYY-MM-DD or carry a time-of-day suffix.
func (p *Provider) GamesForDate(ctx context.Context, date string) []string {
	want := timeutil.NormalizeScheduleDate(date)
	if want == "" {
		return []string{}
	}
	for _, gd := range p.Schedule(ctx) {
		if timeutil.NormalizeScheduleDate(gd.Date) == want {
			return gd.FinalGameIDs()
		}
	}
	return []string{}
}

// Warm refreshes the snapshot if it is missing or stale and reports the upstream error, if any.
func (p *Provider) Warm(ctx context.Context) error {
	_, err := p.load(ctx)
	return err
}

// Current returns the held snapshot without refreshing. ok is false before the first successful fetch.
func (p *Provider) Current() (Snapshot, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.snapshot == nil {
		return Snapshot{}, false
	}
	return *p.snapshot, true
}

func (p *Provider) fresh() *Snapshot {
	if snap, ok := p.peek(); ok {
		return snap
	}
	return nil
}

// peek returns the held snapshot, possibly nil, and whether it is within the TTL.
func (p *Provider) peek() (*Snapshot, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.snapshot == nil {
		return nil, false
	}
	return p.snapshot, p.now().Sub(p.snapshot.FetchedAt) <= p.ttl
}

// refresh always returns a usable snapshot: the new one, the previous one, or an empty one.
func (p *Provider) refresh(ctx context.Context) *Snapshot {
	snap, err := p.load(ctx)
	if err == nil {
		return snap
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.snapshot != nil {
		return p.snapshot
	}
	return &Snapshot{GameDates: []deck.GameDate{}}
}

func (p *Provider) load(ctx context.Context) (*Snapshot, error) {
	v, err, _ := p.group.Do(refreshKey, func() (any, error) {
		// Another caller may have refreshed while we waited.
		if snap := p.fresh(); snap != nil {
			return snap, nil
		}
		// Warm does not claim the flag itself, so mark the fetch here too.
		p.refreshing.Store(true)
		defer p.refreshing.Store(false)
		return p.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

func (p *Provider) fetch(ctx context.Context) (*Snapshot, error) {
	if p.upstream == nil {
		return nil, providers.ErrProviderUnavailable
	}

	start := time.Now()
	dates, err := p.upstream.FetchSchedule(ctx)
	p.metrics.RecordScheduleRefresh(time.Since(start), err)
	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logging.Warn(logger, "schedule refresh failed, keeping previous snapshot", slog.Any("error", err))
		return nil, err
	}

	snap := &Snapshot{GameDates: dates, FetchedAt: p.now()}
	if snap.GameDates == nil {
		snap.GameDates = []deck.GameDate{}
	}
	p.mu.Lock()
	p.snapshot = snap
	p.mu.Unlock()

	logging.Info(logger, "schedule refreshed",
		slog.Int(logging.FieldCount, len(dates)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return snap, nil
}
