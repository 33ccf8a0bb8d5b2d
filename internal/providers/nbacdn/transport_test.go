package nbacdn

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultBaseURL},
		{"https://cdn.example.com/", "https://cdn.example.com"},
		{" https://cdn.example.com ", "https://cdn.example.com"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	if client := resolveHTTPClient(custom); client != custom {
		t.Fatalf("expected provided client to be used")
	}
}

func TestResolveTimeout(t *testing.T) {
	if got := resolveTimeout(0, time.Second); got != time.Second {
		t.Fatalf("expected fallback, got %s", got)
	}
	if got := resolveTimeout(3*time.Second, time.Second); got != 3*time.Second {
		t.Fatalf("expected explicit value, got %s", got)
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2025, 11, 18, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", 0},
		{"12", 12 * time.Second},
		{"-3", 0},
		{now.Add(90 * time.Second).Format(http.TimeFormat), 90 * time.Second},
		{now.Add(-time.Minute).Format(http.TimeFormat), 0},
		{"soon", 0},
	}
	for _, c := range cases {
		if got := parseRetryAfter(c.raw, now); got != c.want {
			t.Fatalf("parseRetryAfter(%q): expected %s, got %s", c.raw, c.want, got)
		}
	}
}
