package config

// DeckConfig tunes the daily aggregation pipeline.
type DeckConfig struct {
	CacheTTL     Duration // validity window for aggregated pairs
	ScheduleTTL  Duration // max age of the schedule snapshot before refresh
	Workers      int      // concurrent box score fetches
	TopPerTeam   int      // players kept per team after ranking
	LookbackDays int      // how far the date resolver walks back
	WarmInterval Duration // schedule warmer cadence
	// RequestTimeout bounds one deck request end to end.
	RequestTimeout Duration
}

func loadDeck() DeckConfig {
	return DeckConfig{
		CacheTTL:     durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		ScheduleTTL:  durationEnvOrDefault(envScheduleTTL, defaultScheduleTTL),
		Workers:      intEnvOrDefault(envWorkers, defaultWorkers),
		TopPerTeam:   intEnvOrDefault(envTopPerTeam, defaultTopPerTeam),
		LookbackDays: intEnvOrDefault(envLookbackDays, defaultLookbackDays),
		WarmInterval: durationEnvOrDefault(envWarmInterval, defaultWarmInterval),

		RequestTimeout: durationEnvOrDefault(envRequestTimeout, defaultRequestTimeout),
	}
}
