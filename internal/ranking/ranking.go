package ranking

import (
	"sort"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
)

// DefaultTopK is how many players each team contributes to the pool.
const DefaultTopK = 6

// Composite weights.
const (
	reboundWeight = 1.2
	assistWeight  = 1.5
)

// CompositeScore blends the counting stats used to rank players within a team.
func CompositeScore(p deck.PlayerStat) float64 {
	return float64(p.Points) + reboundWeight*float64(p.Rebounds) + assistWeight*float64(p.Assists)
}

// Ranker keeps each team's top players of a single game.
type Ranker struct {
	TopK int
}

// New returns a Ranker keeping topK players per team; topK <= 0 uses DefaultTopK.
func New(topK int) Ranker {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return Ranker{TopK: topK}
}

// Rank groups players by team in first-seen order, sorts each team by
// composite score descending and keeps the top K. Ties keep input order.
func (r Ranker) Rank(players []deck.PlayerStat) []deck.PlayerStat {
	topK := r.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	order := make([]int, 0)
	byTeam := make(map[int][]deck.PlayerStat)
	for _, p := range players {
		if _, seen := byTeam[p.TeamID]; !seen {
			order = append(order, p.TeamID)
		}
		byTeam[p.TeamID] = append(byTeam[p.TeamID], p)
	}

	out := make([]deck.PlayerStat, 0, len(players))
	for _, teamID := range order {
		team := byTeam[teamID]
		sort.SliceStable(team, func(i, j int) bool {
			return CompositeScore(team[i]) > CompositeScore(team[j])
		})
		if len(team) > topK {
			team = team[:topK]
		}
		out = append(out, team...)
	}
	return out
}

// Rank applies the default ranker.
func Rank(players []deck.PlayerStat) []deck.PlayerStat {
	return New(DefaultTopK).Rank(players)
}
