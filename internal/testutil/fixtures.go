package testutil

import (
	"time"

	"github.com/avatarneil/bracket.build/internal/domain/bracket"
	"github.com/avatarneil/bracket.build/internal/domain/results"
	"github.com/avatarneil/bracket.build/internal/domain/teams"
	"github.com/avatarneil/bracket.build/internal/store"
)

// SampleResult returns a live result fixture for a matchup. The teams are
// the real wild card hosts so the result maps onto a fresh bracket.
func SampleResult(matchupID string, status results.Status) results.Result {
	home, _ := teams.BySeed(teams.AFC, 2)
	away, _ := teams.BySeed(teams.AFC, 7)
	return results.Result{
		MatchupID: matchupID,
		Provider:  "test",
		HomeTeam:  *home,
		AwayTeam:  *away,
		StartTime: "2026-01-10T18:00:00Z",
		Status:    status,
		Score:     results.Score{Home: 21, Away: 14},
	}
}

// SampleSavedBracket returns a persistence record holding an empty-pick token.
func SampleSavedBracket(id string) store.SavedBracket {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	return store.SavedBracket{
		ID:        id,
		Owner:     "casey",
		Name:      "office pool",
		Token:     "AAAAAA",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DecidedState returns a bracket with all thirteen winners picked: the
// higher seed advances through every round and the AFC champion takes the
// Super Bowl.
func DecidedState(owner string) bracket.State {
	s := bracket.New(owner)
	for _, id := range bracket.MatchupIDs() {
		m, ok := s.Matchup(id)
		if !ok || !m.Ready() {
			continue
		}
		winner := m.Home
		if m.Away.Seed < m.Home.Seed && m.Away.Conference == m.Home.Conference {
			winner = m.Away
		}
		next, err := bracket.SelectWinner(s, id, winner.ID)
		if err != nil {
			panic(err)
		}
		s = next
	}
	return s
}
