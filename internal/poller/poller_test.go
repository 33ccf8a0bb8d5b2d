package poller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-daily-deck/internal/metrics"
	"github.com/preston-bernstein/nba-daily-deck/internal/teststubs"
)

func TestPollerWarmsOnStartAndOnTick(t *testing.T) {
	warmer := &teststubs.StubWarmer{Notify: make(chan struct{})}

	p := New(warmer, nil, metrics.NewRecorder(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-warmer.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial warm")
	}

	deadline := time.Now().Add(500 * time.Millisecond)
	for warmer.Calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	_ = p.Stop(context.Background())

	if warmer.Calls.Load() < 2 {
		t.Fatalf("expected a warm on boot and on tick, got %d", warmer.Calls.Load())
	}
	if !p.Status().IsReady() {
		t.Fatalf("expected ready after successful warm")
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	warmer := &teststubs.StubWarmer{Notify: make(chan struct{})}

	p := New(warmer, nil, nil, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)

	select {
	case <-warmer.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial warm")
	}

	cancel()
	_ = p.Stop(context.Background())
	time.Sleep(10 * time.Millisecond) // allow the loop to observe the stop

	callsAfterStop := warmer.Calls.Load()
	time.Sleep(20 * time.Millisecond)
	if warmer.Calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional warms after stop; before=%d after=%d", callsAfterStop, warmer.Calls.Load())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubWarmer{}, nil, nil, time.Hour)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubWarmer{}, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx) // should no-op

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}

func TestPollerDefaultsInterval(t *testing.T) {
	p := New(&teststubs.StubWarmer{}, nil, nil, 0)
	if p.interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, p.interval)
	}
}

func TestPollerStartReturnsWhenAlreadyStarted(t *testing.T) {
	p := New(&teststubs.StubWarmer{}, nil, nil, time.Hour)
	p.started = true
	p.Start(context.Background())
	if p.ticker != nil {
		t.Fatalf("expected ticker not to be created when already started")
	}
}

func TestPollerStatusTracksFailuresAndSuccess(t *testing.T) {
	warmer := &teststubs.StubWarmer{}
	warmer.SetErr(errors.New("boom"))

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	p := New(warmer, logger, nil, time.Millisecond)
	ctx := context.Background()

	p.warmOnce(ctx)
	status := p.Status()
	if status.ConsecutiveFailures != 1 {
		t.Fatalf("expected 1 failure, got %d", status.ConsecutiveFailures)
	}
	if status.LastError == "" {
		t.Fatalf("expected last error recorded")
	}
	if !status.LastSuccess.IsZero() {
		t.Fatalf("expected no success recorded yet")
	}
	if status.IsReady() {
		t.Fatalf("expected not ready after failure")
	}

	warmer.SetErr(nil)
	p.warmOnce(ctx)
	status = p.Status()
	if status.ConsecutiveFailures != 0 {
		t.Fatalf("expected failures reset, got %d", status.ConsecutiveFailures)
	}
	if !status.IsReady() {
		t.Fatalf("expected ready after success")
	}
}

func TestStatusNotReadyAfterRepeatedFailures(t *testing.T) {
	s := Status{LastSuccess: time.Now(), ConsecutiveFailures: 3}
	if s.IsReady() {
		t.Fatalf("expected not ready after 3 consecutive failures")
	}
}

func TestPollerNilWarmerDoesNotPanic(t *testing.T) {
	p := New(nil, nil, nil, time.Minute)
	p.warmOnce(context.Background())
	if !p.Status().LastAttempt.IsZero() {
		t.Fatalf("expected no attempt without a warmer")
	}
}

func BenchmarkPollerWarmOnce(b *testing.B) {
	p := New(&teststubs.StubWarmer{}, nil, nil, time.Second)
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.warmOnce(ctx)
	}
}
