package scoreboard

import (
	"strings"

	"github.com/avatarneil/bracket.build/internal/domain/bracket"
	"github.com/avatarneil/bracket.build/internal/domain/results"
	"github.com/avatarneil/bracket.build/internal/domain/seeding"
	"github.com/avatarneil/bracket.build/internal/domain/teams"
)

func mapResult(game gameResponse) (results.Result, bool) {
	home, ok := teams.ByAbbreviation(game.HomeTeam.Abbreviation)
	if !ok {
		return results.Result{}, false
	}
	away, ok := teams.ByAbbreviation(game.AwayTeam.Abbreviation)
	if !ok {
		return results.Result{}, false
	}

	matchupID, ok := resolveMatchupID(game.Round, game.Conference, home, away)
	if !ok {
		return results.Result{}, false
	}

	return results.Result{
		MatchupID: matchupID,
		Provider:  providerName,
		HomeTeam:  *home,
		AwayTeam:  *away,
		StartTime: game.StartTime,
		Status:    mapStatus(game.Status),
		Score: results.Score{
			Home: game.HomeScore,
			Away: game.AwayScore,
		},
	}, true
}

func resolveMatchupID(round, conference string, home, away *teams.Team) (string, bool) {
	normalized := normalizeRound(round)

	if normalized == bracket.RoundSuperBowl {
		if home.Conference == away.Conference {
			return "", false
		}
		return bracket.SuperBowlID, true
	}

	if home.Conference != away.Conference {
		return "", false
	}
	if conference != "" && !strings.EqualFold(conference, string(home.Conference)) {
		return "", false
	}

	switch normalized {
	case bracket.RoundWildCard:
		slot, ok := seeding.WildCardSlot(home.Seed, away.Seed)
		if !ok {
			return "", false
		}
		return bracket.WildCardID(home.Conference, slot), true
	case bracket.RoundDivisional:
		if home.Seed == 1 || away.Seed == 1 {
			return bracket.DivisionalID(home.Conference, 0), true
		}
		return bracket.DivisionalID(home.Conference, 1), true
	case bracket.RoundChampionship:
		return bracket.ChampionshipID(home.Conference), true
	}
	return "", false
}

func normalizeRound(raw string) bracket.Round {
	cleaned := strings.ToLower(raw)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "_", "")

	switch cleaned {
	case "wildcard":
		return bracket.RoundWildCard
	case "divisional", "division":
		return bracket.RoundDivisional
	case "championship", "conferencechampionship":
		return bracket.RoundChampionship
	case "superbowl", "final":
		return bracket.RoundSuperBowl
	}
	return ""
}

func mapStatus(raw string) results.Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "final", "ended", "completed":
		return results.StatusFinal
	case "in progress", "in_progress", "live", "halftime", "end of period":
		return results.StatusInProgress
	default:
		return results.StatusScheduled
	}
}
