// Package server wires configuration, storage, providers, and the HTTP API
// into a runnable service.
package server

import (
	"context"
	"log/slog"
	"net/http"

	appbrackets "github.com/avatarneil/bracket.build/internal/app/brackets"
	appresults "github.com/avatarneil/bracket.build/internal/app/results"
	appteams "github.com/avatarneil/bracket.build/internal/app/teams"
	"github.com/avatarneil/bracket.build/internal/config"
	httpapi "github.com/avatarneil/bracket.build/internal/http"
	"github.com/avatarneil/bracket.build/internal/http/handlers"
	"github.com/avatarneil/bracket.build/internal/metrics"
	"github.com/avatarneil/bracket.build/internal/providers"
	"github.com/avatarneil/bracket.build/internal/share"
	"github.com/avatarneil/bracket.build/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg             config.Config
	logger          *slog.Logger
	metrics         *metrics.Recorder
	bracketsService *appbrackets.Service
	teamsService    *appteams.Service
	resultsService  *appresults.Service
	provider        providers.ResultProvider
	httpServer      httpServer
	metricsServer   httpServer
	metricsStop     func(context.Context) error
	storeClose      func() error
}

// New constructs a server with default provider and store wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ResultProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.ResultProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider, provider), 0, 0)
	}

	bracketStore, storeClose := buildStore(cfg, logger)
	archive := buildArchive(cfg, bracketStore, logger)

	resultsSvc := appresults.NewService(appresults.Config{
		Store:    store.NewResultStore(),
		Provider: provider,
		Recorder: recorder,
		Logger:   logger,
	})

	bracketsCfg := appbrackets.Config{
		Store:    bracketStore,
		Live:     resultsSvc,
		Share:    share.NewBuilder(cfg.ShareBaseURL),
		Recorder: recorder,
		Logger:   logger,
	}
	if archive.writer != nil {
		bracketsCfg.Archive = archive.writer
	}
	bracketsSvc := appbrackets.NewService(bracketsCfg)
	teamsSvc := appteams.NewService()

	httpSrv := buildHTTPServer(cfg, bracketsSvc, teamsSvc, resultsSvc, logger, recorder)

	return &Server{
		cfg:             cfg,
		logger:          logger,
		metrics:         recorder,
		bracketsService: bracketsSvc,
		teamsService:    teamsSvc,
		resultsService:  resultsSvc,
		provider:        provider,
		httpServer:      httpSrv,
		metricsServer:   metricsSrv,
		metricsStop:     metricsShutdown,
		storeClose:      storeClose,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv, metricsSrv httpServer) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
	}
}

func buildHTTPServer(cfg config.Config, bracketsSvc *appbrackets.Service, teamsSvc *appteams.Service, resultsSvc *appresults.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(bracketsSvc, teamsSvc, resultsSvc, logger)

	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(resultsSvc, cfg.AdminToken, logger)
	}

	router := httpapi.NewRouter(handler, admin, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
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
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop rate-limited providers to avoid ticker leaks when present.
	if rl, ok := s.provider.(interface{ Close() }); ok {
		rl.Close()
	}

	if s.storeClose != nil {
		if err := s.storeClose(); err != nil && s.logger != nil {
			s.logger.Warn("store close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
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
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
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
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
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
