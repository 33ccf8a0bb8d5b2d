package deck

// GameStatus mirrors the upstream lifecycle of a game.
type GameStatus string

const (
	StatusScheduled GameStatus = "SCHEDULED"
	StatusLive      GameStatus = "LIVE"
	StatusFinal     GameStatus = "FINAL"
)

// StatusFromCode maps the upstream numeric status (1 scheduled, 2 live, 3 final).
// Unknown codes are treated as scheduled so they never become eligible.
func StatusFromCode(code int) GameStatus {
	switch code {
	case 2:
		return StatusLive
	case 3:
		return StatusFinal
	default:
		return StatusScheduled
	}
}

// GameSummary is a single game listed on a schedule or scoreboard.
type GameSummary struct {
	GameID string     `json:"gameId"`
	Status GameStatus `json:"status"`
}

// GameDate groups the games played on one calendar date (MM/DD/YYYY).
type GameDate struct {
	Date  string        `json:"date"`
	Games []GameSummary `json:"games"`
}

// FinalGameIDs returns the ids of completed games in listing order.
func (d GameDate) FinalGameIDs() []string {
	ids := make([]string, 0, len(d.Games))
	for _, g := range d.Games {
		if g.Status == StatusFinal && g.GameID != "" {
			ids = append(ids, g.GameID)
		}
	}
	return ids
}

// PlayerStat is one player's normalized line for a single game.
// JSON keys match the contract the front-end already consumes.
type PlayerStat struct {
	PlayerID         int     `json:"PLAYER_ID"`
	DisplayName      string  `json:"PLAYER_NAME"`
	TeamID           int     `json:"TEAM_ID"`
	TeamAbbreviation string  `json:"TEAM_ABBREVIATION"`
	Points           int     `json:"PTS"`
	Rebounds         int     `json:"REB"`
	Assists          int     `json:"AST"`
	Steals           int     `json:"STL"`
	Blocks           int     `json:"BLK"`
	Turnovers        int     `json:"TOV"`
	FieldGoalPct     float64 `json:"FG_PCT"`
	ThreePointPct    float64 `json:"FG3_PCT"`
	FreeThrowPct     float64 `json:"FT_PCT"`
	PlusMinus        float64 `json:"PLUS_MINUS"`
	MinutesPlayed    string  `json:"MIN"`
}

// Pair is one head-to-head matchup. ID is the pair's start index in the
// shuffled pool and only exists for client-side list identity.
type Pair struct {
	ID    int        `json:"id"`
	Left  PlayerStat `json:"player_left"`
	Right PlayerStat `json:"player_right"`
}

// MessageResponse is returned instead of a pair list when there is nothing to pair.
type MessageResponse struct {
	Message string `json:"message"`
	Pairs   []Pair `json:"pairs"`
}

// NewMessageResponse builds a MessageResponse with a non-nil empty pair list.
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{
		Message: message,
		Pairs:   []Pair{},
	}
}

// RawBoxScore is the loosely typed box score handed over by providers.
// Field-level typing happens in the box score fetcher.
type RawBoxScore struct {
	GameID string
	Teams  []RawTeam
}

// RawTeam holds one side of a box score.
type RawTeam struct {
	TeamID  int
	Tricode string
	Players []RawPlayer
}

// RawPlayer keeps statistics untyped so a single bad field only drops that player.
type RawPlayer struct {
	PersonID   int
	FirstName  string
	FamilyName string
	Name       string
	Statistics map[string]any
}
