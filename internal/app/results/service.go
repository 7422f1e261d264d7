// Package results is the application service for live playoff results: it
// pulls snapshots from a provider on demand and serves the cached copy.
package results

import (
	"context"
	"log/slog"
	"time"

	domainresults "github.com/avatarneil/bracket.build/internal/domain/results"
	"github.com/avatarneil/bracket.build/internal/logging"
	"github.com/avatarneil/bracket.build/internal/metrics"
	"github.com/avatarneil/bracket.build/internal/providers"
)

// Store defines the live results cache contract.
type Store interface {
	Replace(rs []domainresults.Result, at time.Time)
	List() []domainresults.Result
	Get(matchupID string) (domainresults.Result, bool)
	UpdatedAt() time.Time
}

// Config carries the service dependencies.
type Config struct {
	Store    Store
	Provider providers.ResultProvider
	Recorder *metrics.Recorder
	Logger   *slog.Logger
}

// Service refreshes and serves live results.
type Service struct {
	store    Store
	provider providers.ResultProvider
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a Service with the provided dependencies.
func NewService(cfg Config) *Service {
	return &Service{
		store:    cfg.Store,
		provider: cfg.Provider,
		recorder: cfg.Recorder,
		logger:   cfg.Logger,
		now:      time.Now,
	}
}

// Refresh fetches a fresh snapshot from the provider and swaps the cache.
// It returns how many results the provider mapped.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	if s.provider == nil {
		return 0, providers.ErrProviderUnavailable
	}

	start := time.Now()
	rs, err := s.provider.FetchResults(ctx)
	s.recorder.RecordRefreshCycle(time.Since(start), err)
	if err != nil {
		s.logWarn(ctx, "results refresh failed", "err", err)
		return 0, err
	}

	s.store.Replace(rs, s.now().UTC())
	s.logInfo(ctx, "results refreshed", logging.FieldCount, len(rs))
	return len(rs), nil
}

// Results returns the cached snapshot with freshness metadata. UpdatedAt is
// empty until the first successful refresh.
func (s *Service) Results() domainresults.ListResponse {
	updated := ""
	if at := s.store.UpdatedAt(); !at.IsZero() {
		updated = at.UTC().Format(time.RFC3339)
	}
	return domainresults.NewListResponse(updated, s.store.List())
}

// ByMatchup returns the live result for one matchup, if known.
func (s *Service) ByMatchup(matchupID string) (domainresults.Result, bool) {
	return s.store.Get(matchupID)
}

func (s *Service) logInfo(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger.Info(msg, args...)
	}
}

func (s *Service) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
