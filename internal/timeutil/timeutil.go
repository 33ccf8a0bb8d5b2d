package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the canonical request date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ScheduleLayout is the MM/DD/YYYY form used for resolved dates and schedule matching.
const ScheduleLayout = "01/02/2006"

// LeagueTimezone is where the league's calendar day is anchored.
const LeagueTimezone = "America/New_York"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatScheduleDate formats a time as MM/DD/YYYY in its current location.
func FormatScheduleDate(t time.Time) string {
	return t.Format(ScheduleLayout)
}

// ToScheduleDate converts a YYYY-MM-DD string into MM/DD/YYYY.
func ToScheduleDate(value string) (string, error) {
	t, err := ParseDate(value)
	if err != nil {
		return "", err
	}
	return FormatScheduleDate(t), nil
}

// NormalizeScheduleDate reduces an upstream date to MM/DD/YYYY, dropping any
// time-of-day component. Accepts "MM/DD/YYYY[ hh:mm:ss]", "YYYY-MM-DD" and
// RFC3339 timestamps. Returns "" when nothing parses.
func NormalizeScheduleDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if i := strings.IndexAny(raw, " T"); i > 0 {
		raw = raw[:i]
	}
	if t, err := time.Parse(ScheduleLayout, raw); err == nil {
		return FormatScheduleDate(t)
	}
	if t, err := time.Parse("1/2/2006", raw); err == nil {
		return FormatScheduleDate(t)
	}
	if t, err := ParseDate(raw); err == nil {
		return FormatScheduleDate(t)
	}
	return ""
}

// LeagueLocation returns the league timezone, falling back to UTC.
func LeagueLocation() *time.Location {
	if loc, err := time.LoadLocation(LeagueTimezone); err == nil {
		return loc
	}
	return time.UTC
}
