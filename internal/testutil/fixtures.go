package testutil

import (
	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
)

// SamplePlayer returns a minimal player line for the given id and team.
func SamplePlayer(id int, name, team string) deck.PlayerStat {
	return deck.PlayerStat{
		PlayerID:         id,
		DisplayName:      name,
		TeamID:           1610612700,
		TeamAbbreviation: team,
		Points:           20,
		Rebounds:         5,
		Assists:          5,
		MinutesPlayed:    "30:00",
	}
}

// SamplePair returns a pair of two sample players with the provided id.
func SamplePair(id int) deck.Pair {
	return deck.Pair{
		ID:    id,
		Left:  SamplePlayer(id+1, "Left Player", "BOS"),
		Right: SamplePlayer(id+2, "Right Player", "LAL"),
	}
}
