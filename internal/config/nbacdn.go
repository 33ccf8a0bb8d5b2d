package config

// NbaCdnConfig controls how we talk to the NBA data CDN.
type NbaCdnConfig struct {
	BaseURL           string
	ScoreboardTimeout Duration
	ScheduleTimeout   Duration
	BoxScoreTimeout   Duration
}

func loadNbaCdn() NbaCdnConfig {
	return NbaCdnConfig{
		BaseURL:           envOrDefault(envCdnBaseURL, defaultCdnBaseURL),
		ScoreboardTimeout: durationEnvOrDefault(envScoreboardTimeout, defaultScoreboardTimeout),
		ScheduleTimeout:   durationEnvOrDefault(envScheduleTimeout, defaultScheduleTimeout),
		BoxScoreTimeout:   durationEnvOrDefault(envBoxScoreTimeout, defaultBoxScoreTimeout),
	}
}
