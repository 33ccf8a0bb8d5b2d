package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.NbaCdn.BaseURL != defaultCdnBaseURL {
		t.Fatalf("expected default cdn base url %s, got %s", defaultCdnBaseURL, cfg.NbaCdn.BaseURL)
	}
	if cfg.NbaCdn.ScoreboardTimeout >= cfg.NbaCdn.BoxScoreTimeout {
		t.Fatalf("expected scoreboard timeout shorter than box score timeout, got %s vs %s", cfg.NbaCdn.ScoreboardTimeout, cfg.NbaCdn.BoxScoreTimeout)
	}
	if cfg.Deck.CacheTTL != 1800*time.Second {
		t.Fatalf("expected 1800s cache ttl, got %s", cfg.Deck.CacheTTL)
	}
	if cfg.Deck.ScheduleTTL != 3600*time.Second {
		t.Fatalf("expected 3600s schedule ttl, got %s", cfg.Deck.ScheduleTTL)
	}
	if cfg.Deck.RequestTimeout != 20*time.Second {
		t.Fatalf("expected 20s deck request timeout, got %s", cfg.Deck.RequestTimeout)
	}
	if cfg.Deck.Workers != 5 || cfg.Deck.TopPerTeam != 6 || cfg.Deck.LookbackDays != 7 {
		t.Fatalf("unexpected deck defaults %+v", cfg.Deck)
	}
	if len(cfg.Cors.AllowedOrigins) != 2 || cfg.Cors.AllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected default origins %v", cfg.Cors.AllowedOrigins)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envCdnBaseURL, "http://example.com")
	t.Setenv(envBoxScoreTimeout, "20s")
	t.Setenv(envCacheTTL, "1m")
	t.Setenv(envWorkers, "2")
	t.Setenv(envCorsOrigins, " https://deck.example.com , ,https://www.example.com")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.NbaCdn.BaseURL != "http://example.com" {
		t.Fatalf("expected base url override, got %s", cfg.NbaCdn.BaseURL)
	}
	if cfg.NbaCdn.BoxScoreTimeout != 20*time.Second {
		t.Fatalf("expected box score timeout 20s, got %s", cfg.NbaCdn.BoxScoreTimeout)
	}
	if cfg.Deck.CacheTTL != time.Minute {
		t.Fatalf("expected cache ttl 1m, got %s", cfg.Deck.CacheTTL)
	}
	if cfg.Deck.Workers != 2 {
		t.Fatalf("expected 2 workers, got %d", cfg.Deck.Workers)
	}
	origins := cfg.Cors.AllowedOrigins
	if len(origins) != 2 || origins[0] != "https://deck.example.com" || origins[1] != "https://www.example.com" {
		t.Fatalf("unexpected origins %v", origins)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envCacheTTL, "not-a-duration")

	cfg := Load()

	if cfg.Deck.CacheTTL != defaultCacheTTL {
		t.Fatalf("expected default cache ttl on invalid value, got %s", cfg.Deck.CacheTTL)
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	t.Setenv(envScheduleTTL, "0s")
	t.Setenv(envWorkers, "-3")

	cfg := Load()

	if cfg.Deck.ScheduleTTL != defaultScheduleTTL {
		t.Fatalf("expected default schedule ttl on non-positive value, got %s", cfg.Deck.ScheduleTTL)
	}
	if cfg.Deck.Workers != defaultWorkers {
		t.Fatalf("expected default workers on non-positive value, got %d", cfg.Deck.Workers)
	}
}
