package boxscore

import (
	"encoding/json"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
	"github.com/preston-bernstein/nba-daily-deck/internal/logging"
)

// ErrDidNotPlay marks players with no recorded minutes.
var ErrDidNotPlay = errors.New("player did not play")

// ErrBadField marks a statistic that is present but not numeric, or a counting
// statistic that is not a whole number.
var ErrBadField = errors.New("non-numeric statistic")

// Upstream statistic keys.
const (
	statMinutes                = "minutes"
	statPoints                 = "points"
	statRebounds               = "reboundsTotal"
	statAssists                = "assists"
	statSteals                 = "steals"
	statBlocks                 = "blocks"
	statTurnovers              = "turnovers"
	statFieldGoalsMade         = "fieldGoalsMade"
	statFieldGoalsAttempted    = "fieldGoalsAttempted"
	statThreePointersMade      = "threePointersMade"
	statThreePointersAttempted = "threePointersAttempted"
	statFreeThrowsMade         = "freeThrowsMade"
	statFreeThrowsAttempted    = "freeThrowsAttempted"
	statPlusMinus              = "plusMinusPoints"
)

var (
	isoMinutes   = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)(?:\.\d+)?S)?$`)
	clockMinutes = regexp.MustCompile(`^(\d+):(\d{1,2})(?:\.\d+)?$`)
)

// ParseBoxScore normalizes every player of both teams, in upstream order.
// Players that did not play or carry a malformed field are skipped.
func ParseBoxScore(box deck.RawBoxScore, logger *slog.Logger) []deck.PlayerStat {
	out := make([]deck.PlayerStat, 0)
	for _, team := range box.Teams {
		for _, raw := range team.Players {
			stat, err := ParsePlayer(team, raw)
			if err != nil {
				if !errors.Is(err, ErrDidNotPlay) && logger != nil {
					logger.Debug("skipping player",
						slog.String(logging.FieldGameID, box.GameID),
						slog.Int("player_id", raw.PersonID),
						slog.Any("error", err),
					)
				}
				continue
			}
			out = append(out, stat)
		}
	}
	return out
}

// ParsePlayer converts one raw player into a PlayerStat.
func ParsePlayer(team deck.RawTeam, raw deck.RawPlayer) (deck.PlayerStat, error) {
	minutes, ok := NormalizeMinutes(raw.Statistics[statMinutes])
	if !ok {
		return deck.PlayerStat{}, ErrDidNotPlay
	}

	var p statParser
	p.stats = raw.Statistics
	stat := deck.PlayerStat{
		PlayerID:         raw.PersonID,
		DisplayName:      displayName(raw),
		TeamID:           team.TeamID,
		TeamAbbreviation: team.Tricode,
		Points:           p.readInt(statPoints),
		Rebounds:         p.readInt(statRebounds),
		Assists:          p.readInt(statAssists),
		Steals:           p.readInt(statSteals),
		Blocks:           p.readInt(statBlocks),
		Turnovers:        p.readInt(statTurnovers),
		FieldGoalPct:     Percentage(p.readInt(statFieldGoalsMade), p.readInt(statFieldGoalsAttempted)),
		ThreePointPct:    Percentage(p.readInt(statThreePointersMade), p.readInt(statThreePointersAttempted)),
		FreeThrowPct:     Percentage(p.readInt(statFreeThrowsMade), p.readInt(statFreeThrowsAttempted)),
		PlusMinus:        p.readFloat(statPlusMinus),
		MinutesPlayed:    minutes,
	}
	if p.err != nil {
		return deck.PlayerStat{}, p.err
	}
	return stat, nil
}

// NormalizeMinutes accepts "MM:SS" or ISO-8601 style "PT<m>M<s>[.frac]S" and
// returns "M:SS". Empty, unparseable or zero durations report false.
func NormalizeMinutes(value any) (string, bool) {
	raw, ok := value.(string)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	var hours, mins, secs int
	if m := isoMinutes.FindStringSubmatch(raw); m != nil && raw != "PT" {
		hours, mins, secs = atoi(m[1]), atoi(m[2]), atoi(m[3])
	} else if m := clockMinutes.FindStringSubmatch(raw); m != nil {
		mins, secs = atoi(m[1]), atoi(m[2])
		if secs >= 60 {
			return "", false
		}
	} else {
		return "", false
	}

	total := hours*3600 + mins*60 + secs
	if total <= 0 {
		return "", false
	}
	return strconv.Itoa(total/60) + ":" + pad2(total%60), true
}

// Percentage returns made/attempted as a percentage rounded to one decimal.
func Percentage(made, attempted int) float64 {
	if attempted <= 0 {
		return 0
	}
	return math.Round(float64(made)/float64(attempted)*1000) / 10
}

func displayName(raw deck.RawPlayer) string {
	name := strings.TrimSpace(raw.FirstName + " " + raw.FamilyName)
	if name == "" {
		name = strings.TrimSpace(raw.Name)
	}
	return name
}

// statParser reads numeric fields and remembers the first failure.
type statParser struct {
	stats map[string]any
	err   error
}

// readInt rejects fractional or non-finite values instead of rounding them.
func (p *statParser) readInt(key string) int {
	v := p.readFloat(key)
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		if p.err == nil {
			p.err = errors.Wrapf(ErrBadField, "statistic %q is not a whole number: %v", key, v)
		}
		return 0
	}
	return int(v)
}

func (p *statParser) readFloat(key string) float64 {
	v, err := numeric(p.stats[key])
	if err != nil && p.err == nil {
		p.err = errors.Wrapf(err, "statistic %q", key)
	}
	return v
}

// numeric accepts JSON numbers or numeric strings; nil and "" read as zero.
func numeric(value any) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, errors.Mark(err, ErrBadField)
		}
		return f, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errors.Mark(err, ErrBadField)
		}
		return f, nil
	default:
		return 0, errors.Wrapf(ErrBadField, "unexpected type %T", value)
	}
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
