package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/avatarneil/bracket.build/internal/config"
	"github.com/avatarneil/bracket.build/internal/metrics"
	"github.com/avatarneil/bracket.build/internal/providers"
	"github.com/avatarneil/bracket.build/internal/providers/fixture"
	"github.com/avatarneil/bracket.build/internal/providers/scoreboard"
)

// providerFactory assembles the result provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ResultProvider {
	base := selectProvider(cfg, f.logger)
	// Refreshes are operator-triggered, but the rate limiter still guards the
	// upstream quota against a trigger-happy operator.
	limited := providers.NewRateLimitedProvider(base, time.Minute, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ResultProvider {
	switch cfg.Provider {
	case "scoreboard":
		return scoreboard.NewClient(scoreboard.Config{
			BaseURL:    cfg.Scoreboard.BaseURL,
			APIKey:     cfg.Scoreboard.APIKey,
			HTTPClient: &http.Client{Timeout: cfg.Scoreboard.Timeout},
			Logger:     logger,
		})
	default:
		if cfg.Provider != "fixture" && logger != nil {
			logger.Warn("unknown results provider, using fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New(logger)
	}
}
