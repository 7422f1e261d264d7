// Package fixture serves a static wild card weekend so the service can run
// without an upstream scoreboard: one final, one game in progress, and the
// rest still scheduled.
package fixture

import (
	"context"
	"log/slog"
	"time"

	"github.com/avatarneil/bracket.build/internal/domain/bracket"
	"github.com/avatarneil/bracket.build/internal/domain/results"
	"github.com/avatarneil/bracket.build/internal/domain/seeding"
	"github.com/avatarneil/bracket.build/internal/domain/teams"
	"github.com/avatarneil/bracket.build/internal/providers"
)

const providerName = "fixture"

// Provider returns a static set of live results useful for local testing and
// bootstrapping.
type Provider struct {
	now    func() time.Time
	logger *slog.Logger
}

// New creates a fixture provider.
func New(logger *slog.Logger) *Provider {
	return &Provider{
		now:    time.Now,
		logger: logger,
	}
}

// FetchResults returns a deterministic snapshot of the wild card round.
func (p *Provider) FetchResults(ctx context.Context) ([]results.Result, error) {
	kickoff := p.now().UTC().Truncate(time.Hour)

	rs := []results.Result{
		wildCard(teams.AFC, 0, results.StatusFinal, results.Score{Home: 31, Away: 17}, kickoff.Add(-3*time.Hour)),
		wildCard(teams.AFC, 1, results.StatusInProgress, results.Score{Home: 14, Away: 10}, kickoff.Add(-1*time.Hour)),
		wildCard(teams.AFC, 2, results.StatusScheduled, results.Score{}, kickoff.Add(2*time.Hour)),
		wildCard(teams.NFC, 0, results.StatusScheduled, results.Score{}, kickoff.Add(4*time.Hour)),
		wildCard(teams.NFC, 1, results.StatusScheduled, results.Score{}, kickoff.Add(7*time.Hour)),
		wildCard(teams.NFC, 2, results.StatusScheduled, results.Score{}, kickoff.Add(25*time.Hour)),
	}

	providers.LogWithProvider(ctx, p.logger, slog.LevelInfo, providerName, "fixture results served", "count", len(rs))
	return rs, nil
}

func wildCard(conference teams.Conference, slot int, status results.Status, score results.Score, start time.Time) results.Result {
	pairing := seeding.WildCardPairings(conference)[slot]
	return results.Result{
		MatchupID: bracket.WildCardID(conference, slot),
		Provider:  providerName,
		HomeTeam:  *pairing.Home,
		AwayTeam:  *pairing.Away,
		StartTime: start.Format(time.RFC3339),
		Status:    status,
		Score:     score,
	}
}
