package providers

import (
	"context"
	"time"

	"log/slog"

	"github.com/avatarneil/bracket.build/internal/domain/results"
)

// rateLimitedProvider wraps a ResultProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     ResultProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a ResultProvider that limits calls to the given interval.
// Calls block until the interval elapses to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next ResultProvider, interval time.Duration, logger *slog.Logger) ResultProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchResults(ctx context.Context) ([]results.Result, error) {
	if p == nil {
		return nil, ErrProviderUnavailable
	}
	if p.next == nil {
		if p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"))
		}
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	if p.logger != nil {
		p.logger.Info("rate-limited provider fetch", slog.String("provider", "rate-limited"))
	}
	return p.next.FetchResults(ctx)
}

// Close stops the interval ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
