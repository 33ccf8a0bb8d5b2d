package nbacdn

import "time"

const (
	providerName = "nbacdn"

	defaultBaseURL           = "https://cdn.nba.com"
	defaultHTTPTimeout       = 20 * time.Second
	defaultScoreboardTimeout = 5 * time.Second
	defaultScheduleTimeout   = 10 * time.Second
	defaultBoxScoreTimeout   = 15 * time.Second

	scoreboardPath     = "/static/json/liveData/scoreboard/todaysScoreboard_00.json"
	schedulePath       = "/static/json/staticData/scheduleLeagueV2.json"
	boxScorePathFormat = "/static/json/liveData/boxscore/boxscore_%s.json"

	// The CDN rejects requests that do not look like they came from nba.com.
	headerAccept    = "application/json, text/plain, */*"
	headerReferer   = "https://www.nba.com/"
	headerOrigin    = "https://www.nba.com"
	headerUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	bodyExcerptLimit = 512
)
