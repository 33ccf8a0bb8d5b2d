package fixture

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/preston-bernstein/nba-daily-deck/internal/boxscore"
	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
	"github.com/preston-bernstein/nba-daily-deck/internal/providers"
	"github.com/preston-bernstein/nba-daily-deck/internal/timeutil"
)

const providerName = "fixture"

// Game ids served by the fixture. The third game never finishes.
const (
	GameFinalOne  = "0029900001"
	GameFinalTwo  = "0029900002"
	GameScheduled = "0029900003"
)

type fixtureTeam struct {
	id      int
	tricode string
}

type fixtureLine struct {
	personID  int
	first     string
	last      string
	minutes   string
	points    int
	rebounds  int
	assists   int
	steals    int
	blocks    int
	turnovers int
	fgm, fga  int
	tpm, tpa  int
	ftm, fta  int
	plusMinus float64
}

type fixtureGame struct {
	home, away           fixtureTeam
	homeLines, awayLines []fixtureLine
}

var (
	celtics  = fixtureTeam{id: 1610612738, tricode: "BOS"}
	lakers   = fixtureTeam{id: 1610612747, tricode: "LAL"}
	warriors = fixtureTeam{id: 1610612744, tricode: "GSW"}
	heat     = fixtureTeam{id: 1610612748, tricode: "MIA"}
)

var boxScores = map[string]fixtureGame{
	GameFinalOne: {
		home: celtics,
		away: lakers,
		homeLines: []fixtureLine{
			{personID: 1628369, first: "Jayson", last: "Tatum", minutes: "PT36M12.00S", points: 31, rebounds: 9, assists: 6, steals: 1, blocks: 1, turnovers: 3, fgm: 11, fga: 22, tpm: 4, tpa: 10, ftm: 5, fta: 6, plusMinus: 8},
			{personID: 1627759, first: "Jaylen", last: "Brown", minutes: "PT34M40.00S", points: 24, rebounds: 5, assists: 4, steals: 2, turnovers: 2, fgm: 9, fga: 18, tpm: 2, tpa: 6, ftm: 4, fta: 5, plusMinus: 5},
			{personID: 1630202, first: "Payton", last: "Pritchard", minutes: "PT00M00.00S"},
		},
		awayLines: []fixtureLine{
			{personID: 2544, first: "LeBron", last: "James", minutes: "PT35M05.00S", points: 27, rebounds: 8, assists: 10, steals: 1, blocks: 1, turnovers: 4, fgm: 10, fga: 19, tpm: 2, tpa: 5, ftm: 5, fta: 7, plusMinus: -8},
			{personID: 1629029, first: "Luka", last: "Doncic", minutes: "PT37M30.00S", points: 33, rebounds: 7, assists: 9, steals: 2, turnovers: 5, fgm: 12, fga: 24, tpm: 5, tpa: 12, ftm: 4, fta: 4, plusMinus: -3},
			{personID: 1629020, first: "Jarred", last: "Vanderbilt", minutes: "PT12M04.00S", points: 4, rebounds: 6, assists: 1, fgm: 2, fga: 3, plusMinus: -6},
		},
	},
	GameFinalTwo: {
		home: warriors,
		away: heat,
		homeLines: []fixtureLine{
			{personID: 201939, first: "Stephen", last: "Curry", minutes: "PT34M22.00S", points: 35, rebounds: 4, assists: 7, steals: 1, turnovers: 3, fgm: 12, fga: 23, tpm: 7, tpa: 14, ftm: 4, fta: 4, plusMinus: 12},
			{personID: 203110, first: "Draymond", last: "Green", minutes: "PT30M18.00S", points: 9, rebounds: 8, assists: 8, steals: 2, blocks: 1, turnovers: 2, fgm: 4, fga: 8, tpm: 1, tpa: 3, plusMinus: 10},
		},
		awayLines: []fixtureLine{
			{personID: 1628389, first: "Bam", last: "Adebayo", minutes: "PT35M47.00S", points: 22, rebounds: 12, assists: 4, steals: 1, blocks: 2, turnovers: 2, fgm: 9, fga: 15, ftm: 4, fta: 5, plusMinus: -10},
			{personID: 1628374, first: "Tyler", last: "Herro", minutes: "PT33M09.00S", points: 21, rebounds: 5, assists: 6, turnovers: 3, fgm: 8, fga: 19, tpm: 3, tpa: 9, ftm: 2, fta: 2, plusMinus: -12},
		},
	},
}

// Provider serves a deterministic slate: two finished games and one scheduled,
// dated "today" in the league timezone.
type Provider struct {
	now func() time.Time
}

var _ providers.DataProvider = (*Provider)(nil)

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

func (p *Provider) today() string {
	return timeutil.FormatScheduleDate(p.now().In(timeutil.LeagueLocation()))
}

func slate(date string) deck.GameDate {
	return deck.GameDate{
		Date: date,
		Games: []deck.GameSummary{
			{GameID: GameFinalOne, Status: deck.StatusFinal},
			{GameID: GameFinalTwo, Status: deck.StatusFinal},
			{GameID: GameScheduled, Status: deck.StatusScheduled},
		},
	}
}

// FetchScoreboard returns today's slate.
func (p *Provider) FetchScoreboard(ctx context.Context) (deck.GameDate, error) {
	_ = ctx
	return slate(p.today()), nil
}

// FetchSchedule returns the same slate for today and yesterday so date walks find games.
func (p *Provider) FetchSchedule(ctx context.Context) ([]deck.GameDate, error) {
	_ = ctx
	now := p.now().In(timeutil.LeagueLocation())
	return []deck.GameDate{
		slate(timeutil.FormatScheduleDate(now.AddDate(0, 0, -1))),
		slate(timeutil.FormatScheduleDate(now)),
	}, nil
}

// FetchBoxScore returns the canned box score for a finished fixture game.
func (p *Provider) FetchBoxScore(ctx context.Context, gameID string) (deck.RawBoxScore, error) {
	_ = ctx
	game, ok := boxScores[gameID]
	if !ok {
		return deck.RawBoxScore{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: http.StatusNotFound,
			Body:       fmt.Sprintf("no box score for %s", gameID),
		}
	}
	return deck.RawBoxScore{
		GameID: gameID,
		Teams: []deck.RawTeam{
			rawTeam(game.home, game.homeLines),
			rawTeam(game.away, game.awayLines),
		},
	}, nil
}

func rawTeam(team fixtureTeam, lines []fixtureLine) deck.RawTeam {
	players := make([]deck.RawPlayer, 0, len(lines))
	for _, l := range lines {
		players = append(players, deck.RawPlayer{
			PersonID:   l.personID,
			FirstName:  l.first,
			FamilyName: l.last,
			Name:       l.first + " " + l.last,
			Statistics: map[string]any{
				"minutes":                l.minutes,
				"points":                 float64(l.points),
				"reboundsTotal":          float64(l.rebounds),
				"assists":                float64(l.assists),
				"steals":                 float64(l.steals),
				"blocks":                 float64(l.blocks),
				"turnovers":              float64(l.turnovers),
				"fieldGoalsMade":         float64(l.fgm),
				"fieldGoalsAttempted":    float64(l.fga),
				"threePointersMade":      float64(l.tpm),
				"threePointersAttempted": float64(l.tpa),
				"freeThrowsMade":         float64(l.ftm),
				"freeThrowsAttempted":    float64(l.fta),
				"plusMinusPoints":        l.plusMinus,
			},
		})
	}
	return deck.RawTeam{TeamID: team.id, Tricode: team.tricode, Players: players}
}

// SamplePairs returns a fixed deck built from the fixture box scores, in
// roster order, for front-end development without the upstream.
func SamplePairs() []deck.Pair {
	p := New()
	pool := make([]deck.PlayerStat, 0)
	for _, id := range []string{GameFinalOne, GameFinalTwo} {
		box, err := p.FetchBoxScore(context.Background(), id)
		if err != nil {
			continue
		}
		pool = append(pool, boxscore.ParseBoxScore(box, nil)...)
	}

	pairs := make([]deck.Pair, 0, len(pool)/2)
	for i := 0; i+1 < len(pool); i += 2 {
		pairs = append(pairs, deck.Pair{ID: i, Left: pool[i], Right: pool[i+1]})
	}
	return pairs
}
