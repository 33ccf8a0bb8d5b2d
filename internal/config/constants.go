package config

import "time"

const (
	envPort              = "PORT"
	envProvider          = "PROVIDER"
	envCdnBaseURL        = "NBA_CDN_BASE_URL"
	envScoreboardTimeout = "NBA_SCOREBOARD_TIMEOUT"
	envScheduleTimeout   = "NBA_SCHEDULE_TIMEOUT"
	envBoxScoreTimeout   = "NBA_BOXSCORE_TIMEOUT"
	envCacheTTL          = "DECK_CACHE_TTL"
	envScheduleTTL       = "SCHEDULE_TTL"
	envWorkers           = "DECK_WORKERS"
	envTopPerTeam        = "DECK_TOP_PER_TEAM"
	envLookbackDays      = "RESOLVER_LOOKBACK_DAYS"
	envWarmInterval      = "SCHEDULE_WARM_INTERVAL"
	envRequestTimeout    = "DECK_REQUEST_TIMEOUT"
	envCorsOrigins       = "CORS_ALLOWED_ORIGINS"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "nbacdn"

	defaultCdnBaseURL = "https://cdn.nba.com"
	// Scoreboard and schedule probes sit on the request path; keep them short.
	defaultScoreboardTimeout = 5 * Duration(time.Second)
	defaultScheduleTimeout   = 10 * Duration(time.Second)
	defaultBoxScoreTimeout   = 15 * Duration(time.Second)

	defaultCacheTTL     = 30 * Duration(time.Minute)
	defaultScheduleTTL  = Duration(time.Hour)
	defaultWorkers      = 5
	defaultTopPerTeam   = 6
	defaultLookbackDays = 7
	defaultWarmInterval = Duration(time.Hour)
	// Must stay below the HTTP server write timeout.
	defaultRequestTimeout = 20 * Duration(time.Second)
	defaultCorsOrigins    = "http://localhost:5173,http://localhost:3000"

	defaultMetricsPort = "9090"
	defaultServiceName = "nba-daily-deck"
)
