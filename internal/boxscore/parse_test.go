package boxscore

import (
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
)

var lakers = deck.RawTeam{TeamID: 1610612747, Tricode: "LAL"}

func rawPlayer(stats map[string]any) deck.RawPlayer {
	return deck.RawPlayer{
		PersonID:   2544,
		FirstName:  "LeBron",
		FamilyName: "James",
		Name:       "LeBron James",
		Statistics: stats,
	}
}

func TestNormalizeMinutes(t *testing.T) {
	cases := []struct {
		in   any
		want string
		ok   bool
	}{
		{"PT33M07S", "33:07", true},
		{"PT33M07.00S", "33:07", true},
		{"PT05M30.50S", "5:30", true},
		{"PT00M45.00S", "0:45", true},
		{"PT1H02M03S", "62:03", true},
		{"33:07", "33:07", true},
		{"0:30", "0:30", true},
		{"PT00M00.00S", "", false},
		{"00:00", "", false},
		{"", "", false},
		{"PT", "", false},
		{"DNP", "", false},
		{"12:75", "", false},
		{nil, "", false},
		{float64(33), "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeMinutes(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("NormalizeMinutes(%v): expected (%q,%v), got (%q,%v)", c.in, c.want, c.ok, got, ok)
		}
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		made, attempted int
		want            float64
	}{
		{0, 0, 0},
		{3, 0, 0},
		{11, 22, 50},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{7, 7, 100},
	}
	for _, c := range cases {
		if got := Percentage(c.made, c.attempted); got != c.want {
			t.Fatalf("Percentage(%d,%d): expected %v, got %v", c.made, c.attempted, c.want, got)
		}
	}
}

func TestParsePlayerMapsAllFields(t *testing.T) {
	stat, err := ParsePlayer(lakers, rawPlayer(map[string]any{
		"minutes":                "PT35M05.00S",
		"points":                 float64(27),
		"reboundsTotal":          "8",
		"assists":                json.Number("10"),
		"steals":                 1,
		"blocks":                 int64(2),
		"turnovers":              float64(4),
		"fieldGoalsMade":         float64(10),
		"fieldGoalsAttempted":    float64(19),
		"threePointersMade":      float64(0),
		"threePointersAttempted": float64(0),
		"freeThrowsMade":         float64(5),
		"freeThrowsAttempted":    float64(7),
		"plusMinusPoints":        float64(-8),
	}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := deck.PlayerStat{
		PlayerID:         2544,
		DisplayName:      "LeBron James",
		TeamID:           1610612747,
		TeamAbbreviation: "LAL",
		Points:           27,
		Rebounds:         8,
		Assists:          10,
		Steals:           1,
		Blocks:           2,
		Turnovers:        4,
		FieldGoalPct:     52.6,
		ThreePointPct:    0,
		FreeThrowPct:     71.4,
		PlusMinus:        -8,
		MinutesPlayed:    "35:05",
	}
	if stat != want {
		t.Fatalf("unexpected stat\n got %+v\nwant %+v", stat, want)
	}
}

func TestParsePlayerAbsentStatsReadAsZero(t *testing.T) {
	stat, err := ParsePlayer(lakers, rawPlayer(map[string]any{"minutes": "12:00"}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stat.Points != 0 || stat.FieldGoalPct != 0 || stat.PlusMinus != 0 {
		t.Fatalf("expected zero stats, got %+v", stat)
	}
}

func TestParsePlayerExcludesZeroMinutes(t *testing.T) {
	for _, minutes := range []any{"PT00M00.00S", "00:00", "", nil} {
		_, err := ParsePlayer(lakers, rawPlayer(map[string]any{"minutes": minutes, "points": float64(10)}))
		if !errors.Is(err, ErrDidNotPlay) {
			t.Fatalf("minutes %v: expected ErrDidNotPlay, got %v", minutes, err)
		}
	}
}

func TestParsePlayerRejectsWrongTypes(t *testing.T) {
	cases := []map[string]any{
		{"minutes": "10:00", "points": "lots"},
		{"minutes": "10:00", "assists": true},
		{"minutes": "10:00", "plusMinusPoints": map[string]any{}},
	}
	for _, stats := range cases {
		if _, err := ParsePlayer(lakers, rawPlayer(stats)); !errors.Is(err, ErrBadField) {
			t.Fatalf("stats %v: expected ErrBadField, got %v", stats, err)
		}
	}
}

func TestParsePlayerRejectsFractionalCounts(t *testing.T) {
	cases := []map[string]any{
		{"minutes": "10:00", "points": 12.6},
		{"minutes": "10:00", "reboundsTotal": "7.5"},
		{"minutes": "10:00", "fieldGoalsAttempted": json.Number("9.2")},
		{"minutes": "10:00", "assists": "NaN"},
	}
	for _, stats := range cases {
		if _, err := ParsePlayer(lakers, rawPlayer(stats)); !errors.Is(err, ErrBadField) {
			t.Fatalf("stats %v: expected ErrBadField, got %v", stats, err)
		}
	}
}

func TestParsePlayerKeepsWholeFloatsAndFractionalPlusMinus(t *testing.T) {
	stats := map[string]any{"minutes": "10:00", "points": 12.0, "reboundsTotal": "4", "plusMinusPoints": 3.5}
	stat, err := ParsePlayer(lakers, rawPlayer(stats))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stat.Points != 12 || stat.Rebounds != 4 || stat.PlusMinus != 3.5 {
		t.Fatalf("unexpected stat %+v", stat)
	}
}

func TestParsePlayerFallsBackToName(t *testing.T) {
	raw := deck.RawPlayer{PersonID: 1, Name: "Nene", Statistics: map[string]any{"minutes": "5:00"}}
	stat, err := ParsePlayer(lakers, raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stat.DisplayName != "Nene" {
		t.Fatalf("expected fallback name, got %q", stat.DisplayName)
	}
}

func TestParseBoxScoreSkipsBadPlayersOnly(t *testing.T) {
	box := deck.RawBoxScore{
		GameID: "001",
		Teams: []deck.RawTeam{
			{TeamID: 1, Tricode: "AAA", Players: []deck.RawPlayer{
				{PersonID: 1, Name: "One", Statistics: map[string]any{"minutes": "30:00", "points": float64(20)}},
				{PersonID: 2, Name: "Two", Statistics: map[string]any{"minutes": "00:00"}},
				{PersonID: 3, Name: "Three", Statistics: map[string]any{"minutes": "20:00", "points": []any{}}},
			}},
			{TeamID: 2, Tricode: "BBB", Players: []deck.RawPlayer{
				{PersonID: 4, Name: "Four", Statistics: map[string]any{"minutes": "PT25M00.00S"}},
			}},
		},
	}

	players := ParseBoxScore(box, nil)
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[0].PlayerID != 1 || players[1].PlayerID != 4 || players[1].TeamAbbreviation != "BBB" {
		t.Fatalf("unexpected players %+v", players)
	}
}
