package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-daily-deck/internal/config"
	"github.com/preston-bernstein/nba-daily-deck/internal/logging"
	"github.com/preston-bernstein/nba-daily-deck/internal/providers"
	"github.com/preston-bernstein/nba-daily-deck/internal/providers/fixture"
	"github.com/preston-bernstein/nba-daily-deck/internal/providers/nbacdn"
)

const (
	providerNbaCdn  = "nbacdn"
	providerFixture = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case providerNbaCdn, "":
		return nbacdn.NewClient(nbacdn.Config{
			BaseURL:           cfg.NbaCdn.BaseURL,
			ScoreboardTimeout: cfg.NbaCdn.ScoreboardTimeout,
			ScheduleTimeout:   cfg.NbaCdn.ScheduleTimeout,
			BoxScoreTimeout:   cfg.NbaCdn.BoxScoreTimeout,
			Logger:            logger,
		})
	case providerFixture:
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
