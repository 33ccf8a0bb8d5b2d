package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "nba-daily-deck",
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
	defer func() { _ = shutdown(context.Background()) }()

	// Exercise otel-backed recorders to ensure no panic.
	rec.RecordHTTPRequest("GET", "/api/daily-deck", 200, time.Millisecond)
	rec.RecordWarmCycle(time.Millisecond, nil)
	rec.RecordWarmCycle(time.Millisecond, errors.New("boom"))
	rec.RecordProviderAttempt("nbacdn", time.Millisecond, nil)
	rec.RecordRateLimit("nbacdn", time.Second)
	rec.RecordCacheLookup(true)
	rec.RecordBoxScore(time.Millisecond, errors.New("boom"))
	rec.RecordScheduleRefresh(time.Millisecond, nil)

	if got := rec.Deck().CacheHits; got != 1 {
		t.Fatalf("expected in-memory counters alongside otel, got %d hits", got)
	}
}

func TestSetupPropagatesReaderErrors(t *testing.T) {
	orig := promReaderFactory
	defer func() { promReaderFactory = orig }()
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("boom")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatal("expected error from reader factory")
	}
}
