package nbacdn

import "encoding/json"

type scoreboardResponse struct {
	Scoreboard struct {
		GameDate string         `json:"gameDate"`
		Games    []gameResponse `json:"games"`
	} `json:"scoreboard"`
}

type scheduleResponse struct {
	LeagueSchedule struct {
		GameDates []gameDateResponse `json:"gameDates"`
	} `json:"leagueSchedule"`
}

type gameDateResponse struct {
	GameDate string         `json:"gameDate"`
	Games    []gameResponse `json:"games"`
}

type gameResponse struct {
	GameID     string `json:"gameId"`
	GameStatus int    `json:"gameStatus"`
}

// boxScoreResponse keeps both sides raw so one malformed team does not sink the game.
type boxScoreResponse struct {
	Game struct {
		GameID   string          `json:"gameId"`
		HomeTeam json.RawMessage `json:"homeTeam"`
		AwayTeam json.RawMessage `json:"awayTeam"`
	} `json:"game"`
}

type teamResponse struct {
	TeamID      int               `json:"teamId"`
	TeamTricode string            `json:"teamTricode"`
	Players     []json.RawMessage `json:"players"`
}

type playerResponse struct {
	PersonID   int            `json:"personId"`
	FirstName  string         `json:"firstName"`
	FamilyName string         `json:"familyName"`
	Name       string         `json:"name"`
	Statistics map[string]any `json:"statistics"`
}
