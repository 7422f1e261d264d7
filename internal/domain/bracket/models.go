// Package bracket models a single NFL playoff bracket and the operations that
// move it between states. A State is a plain value: operations copy it, apply
// the change, re-derive every downstream matchup, and return the new value, so
// callers can treat snapshots as immutable and swap them atomically.
package bracket

import (
	"fmt"
	"strings"

	"github.com/avatarneil/bracket.build/internal/domain/teams"
)

// MatchupCount is the number of games in a full playoff bracket:
// six wild card, four divisional, two championships, one Super Bowl.
const MatchupCount = 13

// Round identifies a playoff round.
type Round string

const (
	RoundWildCard     Round = "wildcard"
	RoundDivisional   Round = "divisional"
	RoundChampionship Round = "championship"
	RoundSuperBowl    Round = "superbowl"
)

// MatchupStatus is the derived lifecycle position of a matchup.
type MatchupStatus string

const (
	// StatusUnreachable means at least one team slot is still undetermined.
	StatusUnreachable MatchupStatus = "unreachable"
	// StatusPickable means both teams are known and no winner is chosen.
	StatusPickable MatchupStatus = "pickable"
	// StatusDecided means a winner has been picked.
	StatusDecided MatchupStatus = "decided"
)

// SuperBowlID is the stable matchup ID of the final game.
const SuperBowlID = "super-bowl"

// Matchup is one game slot in the bracket. Home, Away, and Winner are nil
// until derivation or a pick fills them; Winner always equals Home or Away.
type Matchup struct {
	ID         string           `json:"id"`
	Round      Round            `json:"round"`
	Conference teams.Conference `json:"conference,omitempty"`
	Home       *teams.Team      `json:"homeTeam,omitempty"`
	Away       *teams.Team      `json:"awayTeam,omitempty"`
	Winner     *teams.Team      `json:"winner,omitempty"`
}

// Ready reports whether both team slots are populated.
func (m Matchup) Ready() bool {
	return m.Home != nil && m.Away != nil
}

// Decided reports whether a winner has been picked.
func (m Matchup) Decided() bool {
	return m.Winner != nil
}

// Status derives the matchup's lifecycle position from its slots.
func (m Matchup) Status() MatchupStatus {
	switch {
	case m.Winner != nil:
		return StatusDecided
	case m.Ready():
		return StatusPickable
	default:
		return StatusUnreachable
	}
}

// Contains reports whether a team currently occupies one of the slots.
func (m Matchup) Contains(teamID string) bool {
	if m.Home != nil && m.Home.ID == teamID {
		return true
	}
	if m.Away != nil && m.Away.ID == teamID {
		return true
	}
	return false
}

// ConferenceBracket is one conference's half of the tree: three wild card
// games feeding two divisional games feeding the conference championship.
type ConferenceBracket struct {
	Conference   teams.Conference `json:"conference"`
	WildCard     [3]Matchup       `json:"wildCard"`
	Divisional   [2]Matchup       `json:"divisional"`
	Championship Matchup          `json:"championship"`
}

// State is a complete bracket snapshot. It is composed entirely of values,
// so an assignment copies the whole tree.
type State struct {
	Owner     string            `json:"owner,omitempty"`
	AFC       ConferenceBracket `json:"afc"`
	NFC       ConferenceBracket `json:"nfc"`
	SuperBowl Matchup           `json:"superBowl"`
	Complete  bool              `json:"complete"`
}

// WildCardID returns the matchup ID for a conference wild card slot (0-2).
func WildCardID(conference teams.Conference, slot int) string {
	return fmt.Sprintf("%s-wc-%d", strings.ToLower(string(conference)), slot+1)
}

// DivisionalID returns the matchup ID for a conference divisional slot (0-1).
func DivisionalID(conference teams.Conference, slot int) string {
	return fmt.Sprintf("%s-div-%d", strings.ToLower(string(conference)), slot+1)
}

// ChampionshipID returns the matchup ID for a conference championship.
func ChampionshipID(conference teams.Conference) string {
	return strings.ToLower(string(conference)) + "-champ"
}

// matchups returns pointers to all thirteen matchups in canonical order:
// AFC wild card, NFC wild card, AFC divisional, NFC divisional, AFC
// championship, NFC championship, Super Bowl. Every walk of the bracket,
// including the pick token layout, uses this order.
func (s *State) matchups() [MatchupCount]*Matchup {
	return [MatchupCount]*Matchup{
		&s.AFC.WildCard[0], &s.AFC.WildCard[1], &s.AFC.WildCard[2],
		&s.NFC.WildCard[0], &s.NFC.WildCard[1], &s.NFC.WildCard[2],
		&s.AFC.Divisional[0], &s.AFC.Divisional[1],
		&s.NFC.Divisional[0], &s.NFC.Divisional[1],
		&s.AFC.Championship, &s.NFC.Championship,
		&s.SuperBowl,
	}
}

// matchup returns a pointer to the matchup with the given ID, or nil.
func (s *State) matchup(id string) *Matchup {
	for _, m := range s.matchups() {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Matchups returns copies of all matchups in canonical order.
func (s State) Matchups() [MatchupCount]Matchup {
	var out [MatchupCount]Matchup
	for i, m := range s.matchups() {
		out[i] = *m
	}
	return out
}

// Matchup looks a matchup up by ID.
func (s State) Matchup(id string) (Matchup, bool) {
	m := s.matchup(id)
	if m == nil {
		return Matchup{}, false
	}
	return *m, true
}

// MatchupIDs returns the canonical matchup ordering for a bracket.
func MatchupIDs() [MatchupCount]string {
	s := New("")
	var out [MatchupCount]string
	for i, m := range s.matchups() {
		out[i] = m.ID
	}
	return out
}
