package nbacdn

import (
	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
	"github.com/preston-bernstein/nba-daily-deck/internal/timeutil"
)

func mapGameDate(date string, games []gameResponse) deck.GameDate {
	out := deck.GameDate{
		Date:  timeutil.NormalizeScheduleDate(date),
		Games: make([]deck.GameSummary, 0, len(games)),
	}
	for _, g := range games {
		if g.GameID == "" {
			continue
		}
		out.Games = append(out.Games, mapGame(g))
	}
	return out
}

func mapGame(g gameResponse) deck.GameSummary {
	return deck.GameSummary{
		GameID: g.GameID,
		Status: deck.StatusFromCode(g.GameStatus),
	}
}

func mapTeam(t teamResponse, players []deck.RawPlayer) deck.RawTeam {
	return deck.RawTeam{
		TeamID:  t.TeamID,
		Tricode: t.TeamTricode,
		Players: players,
	}
}

func mapPlayer(p playerResponse) deck.RawPlayer {
	stats := p.Statistics
	if stats == nil {
		stats = map[string]any{}
	}
	return deck.RawPlayer{
		PersonID:   p.PersonID,
		FirstName:  p.FirstName,
		FamilyName: p.FamilyName,
		Name:       p.Name,
		Statistics: stats,
	}
}
