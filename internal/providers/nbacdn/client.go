package nbacdn

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
	"github.com/preston-bernstein/nba-daily-deck/internal/logging"
	"github.com/preston-bernstein/nba-daily-deck/internal/providers"
)

// Config controls how the client reaches the NBA data CDN.
type Config struct {
	BaseURL           string
	HTTPClient        *http.Client
	ScoreboardTimeout time.Duration
	ScheduleTimeout   time.Duration
	BoxScoreTimeout   time.Duration
	Logger            *slog.Logger
}

// Client reads the public scoreboard, schedule and box score feeds.
type Client struct {
	baseURL           string
	httpClient        httpDoer
	scoreboardTimeout time.Duration
	scheduleTimeout   time.Duration
	boxScoreTimeout   time.Duration
	logger            *slog.Logger
	now               func() time.Time
}

var _ providers.DataProvider = (*Client)(nil)

// NewClient constructs a CDN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:           normalizeBaseURL(cfg.BaseURL),
		httpClient:        resolveHTTPClient(cfg.HTTPClient),
		scoreboardTimeout: resolveTimeout(cfg.ScoreboardTimeout, defaultScoreboardTimeout),
		scheduleTimeout:   resolveTimeout(cfg.ScheduleTimeout, defaultScheduleTimeout),
		boxScoreTimeout:   resolveTimeout(cfg.BoxScoreTimeout, defaultBoxScoreTimeout),
		logger:            cfg.Logger,
		now:               time.Now,
	}
}

// FetchScoreboard returns today's live scoreboard.
func (c *Client) FetchScoreboard(ctx context.Context) (deck.GameDate, error) {
	var payload scoreboardResponse
	if err := c.getJSON(ctx, scoreboardPath, c.scoreboardTimeout, &payload); err != nil {
		return deck.GameDate{}, err
	}
	return mapGameDate(payload.Scoreboard.GameDate, payload.Scoreboard.Games), nil
}

// FetchSchedule returns every game date of the current season.
func (c *Client) FetchSchedule(ctx context.Context) ([]deck.GameDate, error) {
	var payload scheduleResponse
	if err := c.getJSON(ctx, schedulePath, c.scheduleTimeout, &payload); err != nil {
		return nil, err
	}

	dates := make([]deck.GameDate, 0, len(payload.LeagueSchedule.GameDates))
	for _, gd := range payload.LeagueSchedule.GameDates {
		mapped := mapGameDate(gd.GameDate, gd.Games)
		if mapped.Date == "" {
			c.log(ctx, slog.LevelWarn, "schedule date unparseable", slog.String(logging.FieldDate, gd.GameDate))
			continue
		}
		dates = append(dates, mapped)
	}
	return dates, nil
}

// FetchBoxScore returns one game's box score. Teams and players that fail to
// decode are logged and skipped.
func (c *Client) FetchBoxScore(ctx context.Context, gameID string) (deck.RawBoxScore, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return deck.RawBoxScore{}, errors.Mark(errors.New("nbacdn: empty game id"), providers.ErrMalformedPayload)
	}

	var payload boxScoreResponse
	path := fmt.Sprintf(boxScorePathFormat, url.PathEscape(gameID))
	if err := c.getJSON(ctx, path, c.boxScoreTimeout, &payload); err != nil {
		return deck.RawBoxScore{}, err
	}

	box := deck.RawBoxScore{GameID: gameID}
	for _, raw := range [][]byte{payload.Game.HomeTeam, payload.Game.AwayTeam} {
		team, ok := c.decodeTeam(ctx, gameID, raw)
		if ok {
			box.Teams = append(box.Teams, team)
		}
	}
	if len(box.Teams) == 0 {
		return deck.RawBoxScore{}, errors.Mark(
			errors.Newf("nbacdn: box score %s has no usable teams", gameID),
			providers.ErrMalformedPayload,
		)
	}
	return box, nil
}

func (c *Client) decodeTeam(ctx context.Context, gameID string, raw []byte) (deck.RawTeam, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return deck.RawTeam{}, false
	}
	var team teamResponse
	if err := sonic.Unmarshal(raw, &team); err != nil {
		c.log(ctx, slog.LevelWarn, "skipping malformed team", slog.String(logging.FieldGameID, gameID), slog.Any("error", err))
		return deck.RawTeam{}, false
	}

	players := make([]deck.RawPlayer, 0, len(team.Players))
	for i, rawPlayer := range team.Players {
		var p playerResponse
		if err := sonic.Unmarshal(rawPlayer, &p); err != nil {
			c.log(ctx, slog.LevelWarn, "skipping malformed player",
				slog.String(logging.FieldGameID, gameID),
				slog.String("team", team.TeamTricode),
				slog.Int("index", i),
				slog.Any("error", err),
			)
			continue
		}
		players = append(players, mapPlayer(p))
	}
	return mapTeam(team, players), true
}

func (c *Client) getJSON(ctx context.Context, path string, timeout time.Duration, dst any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrapf(err, "nbacdn: build request %s", path)
	}
	setBrowserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "nbacdn: request %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    "nbacdn rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, bodyExcerptLimit))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "nbacdn: read %s", path)
	}
	if err := sonic.Unmarshal(body, dst); err != nil {
		return errors.Mark(errors.Wrapf(err, "nbacdn: decode %s", path), providers.ErrMalformedPayload)
	}
	return nil
}

func (c *Client) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	logger := logging.FromContext(ctx, c.logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, providerName))
	logger.Log(ctx, level, msg, args...)
}
