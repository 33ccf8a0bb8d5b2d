package server

import (
	"context"
	"log/slog"
	"net/http"

	appdeck "github.com/preston-bernstein/nba-daily-deck/internal/app/deck"
	"github.com/preston-bernstein/nba-daily-deck/internal/boxscore"
	"github.com/preston-bernstein/nba-daily-deck/internal/cache"
	"github.com/preston-bernstein/nba-daily-deck/internal/config"
	httpserver "github.com/preston-bernstein/nba-daily-deck/internal/http"
	"github.com/preston-bernstein/nba-daily-deck/internal/http/handlers"
	"github.com/preston-bernstein/nba-daily-deck/internal/http/middleware"
	"github.com/preston-bernstein/nba-daily-deck/internal/logging"
	"github.com/preston-bernstein/nba-daily-deck/internal/metrics"
	"github.com/preston-bernstein/nba-daily-deck/internal/pairing"
	"github.com/preston-bernstein/nba-daily-deck/internal/poller"
	"github.com/preston-bernstein/nba-daily-deck/internal/providers"
	"github.com/preston-bernstein/nba-daily-deck/internal/ranking"
	"github.com/preston-bernstein/nba-daily-deck/internal/resolver"
	"github.com/preston-bernstein/nba-daily-deck/internal/schedule"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	schedule      *schedule.Provider
	deck          *appdeck.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// pipeline holds the deck components that share one upstream provider.
type pipeline struct {
	schedule *schedule.Provider
	deck     *appdeck.Service
}

// New constructs a server with the configured provider and schedule warmer.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	p := buildPipeline(cfg, provider, logger, recorder)
	plr := poller.New(p.schedule, logger, recorder, cfg.Deck.WarmInterval)
	httpSrv := buildHTTPServer(cfg, p.deck, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		schedule:      p.schedule,
		deck:          p.deck,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildPipeline(cfg config.Config, provider providers.DataProvider, logger *slog.Logger, recorder *metrics.Recorder) pipeline {
	sched := schedule.New(provider, cfg.Deck.ScheduleTTL, logger, recorder)
	svc := appdeck.NewService(appdeck.Dependencies{
		Resolver: resolver.New(provider, sched, cfg.Deck.LookbackDays, logger),
		Fetcher:  boxscore.NewFetcher(provider, cfg.Deck.Workers, logger, recorder),
		Ranker:   ranking.New(cfg.Deck.TopPerTeam),
		Pairer:   pairing.New(pairing.RandomShuffle),
		Store:    cache.NewMemoryCache(cfg.Deck.CacheTTL),
		Logger:   logger,
		Metrics:  recorder,
	})
	return pipeline{schedule: sched, deck: svc}
}

func buildHTTPServer(cfg config.Config, svc handlers.DeckService, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(svc, logger, statusFn).WithDeckTimeout(cfg.Deck.RequestTimeout)
	router := httpserver.NewRouter(handler, cfg.Cors.AllowedOrigins)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the schedule warmer and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
