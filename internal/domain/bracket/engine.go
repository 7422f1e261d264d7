package bracket

import (
	"errors"

	"github.com/avatarneil/bracket.build/internal/domain/seeding"
	"github.com/avatarneil/bracket.build/internal/domain/teams"
)

var (
	// ErrUnknownMatchup means the matchup ID does not exist in the bracket.
	ErrUnknownMatchup = errors.New("unknown matchup")
	// ErrMatchupNotReady means a team slot is still undetermined.
	ErrMatchupNotReady = errors.New("matchup teams are not yet determined")
	// ErrTeamNotInMatchup means the picked team occupies neither slot.
	ErrTeamNotInMatchup = errors.New("team is not in this matchup")
)

// New builds a fresh bracket for an owner: wild card games seeded from the
// playoff field, every later round empty, no winners.
func New(owner string) State {
	s := State{
		Owner: owner,
		AFC:   newConferenceBracket(teams.AFC),
		NFC:   newConferenceBracket(teams.NFC),
		SuperBowl: Matchup{
			ID:    SuperBowlID,
			Round: RoundSuperBowl,
		},
	}
	return s
}

func newConferenceBracket(conference teams.Conference) ConferenceBracket {
	cb := ConferenceBracket{Conference: conference}
	pairings := seeding.WildCardPairings(conference)
	for i := range cb.WildCard {
		cb.WildCard[i] = Matchup{
			ID:         WildCardID(conference, i),
			Round:      RoundWildCard,
			Conference: conference,
			Home:       pairings[i].Home,
			Away:       pairings[i].Away,
		}
	}
	for i := range cb.Divisional {
		cb.Divisional[i] = Matchup{
			ID:         DivisionalID(conference, i),
			Round:      RoundDivisional,
			Conference: conference,
		}
	}
	cb.Championship = Matchup{
		ID:         ChampionshipID(conference),
		Round:      RoundChampionship,
		Conference: conference,
	}
	return cb
}

// SelectWinner records a pick and returns the resulting snapshot. The matchup
// must exist, have both teams determined, and contain the picked team;
// otherwise the input state comes back unchanged with a sentinel error.
// Re-picking a decided matchup replaces the winner. Every round downstream of
// the pick is re-derived, and downstream winners that no longer match their
// matchup's teams are dropped.
func SelectWinner(s State, matchupID, teamID string) (State, error) {
	m := s.matchup(matchupID)
	if m == nil {
		return s, ErrUnknownMatchup
	}
	if !m.Ready() {
		return s, ErrMatchupNotReady
	}
	switch teamID {
	case m.Home.ID:
		m.Winner = m.Home
	case m.Away.ID:
		m.Winner = m.Away
	default:
		return s, ErrTeamNotInMatchup
	}
	recompute(&s)
	return s, nil
}

// ClearWinner removes a pick and returns the resulting snapshot. Downstream
// rounds are re-derived, which empties every matchup that depended on the
// cleared pick. Clearing an undecided matchup is a no-op.
func ClearWinner(s State, matchupID string) (State, error) {
	m := s.matchup(matchupID)
	if m == nil {
		return s, ErrUnknownMatchup
	}
	m.Winner = nil
	recompute(&s)
	return s, nil
}

// IsComplete recounts the winners instead of trusting the stored flag, so it
// can validate states that arrived from storage or a decoded token.
func IsComplete(s State) bool {
	return countWinners(&s) == MatchupCount
}

func countWinners(s *State) int {
	n := 0
	for _, m := range s.matchups() {
		if m.Winner != nil {
			n++
		}
	}
	return n
}

// recompute re-derives every post-wild-card matchup from the winners above it.
// Rounds are processed in order, so a winner dropped in the divisional round
// empties the championship slot that depended on it, and so on through the
// Super Bowl.
func recompute(s *State) {
	recomputeConference(&s.AFC)
	recomputeConference(&s.NFC)
	applyPairing(&s.SuperBowl, seeding.SuperBowlPairing(
		s.AFC.Championship.Winner, s.NFC.Championship.Winner))
	s.Complete = countWinners(s) == MatchupCount
}

func recomputeConference(cb *ConferenceBracket) {
	winners := [3]*teams.Team{
		cb.WildCard[0].Winner,
		cb.WildCard[1].Winner,
		cb.WildCard[2].Winner,
	}
	divisional := seeding.DivisionalPairings(cb.Conference, winners)
	applyPairing(&cb.Divisional[0], divisional[0])
	applyPairing(&cb.Divisional[1], divisional[1])
	applyPairing(&cb.Championship, seeding.ChampionshipPairing(
		[2]*teams.Team{cb.Divisional[0].Winner, cb.Divisional[1].Winner}))
}

// applyPairing replaces a derived matchup's team slots and keeps its winner
// only while that team still occupies a slot.
func applyPairing(m *Matchup, p seeding.Pairing) {
	m.Home = p.Home
	m.Away = p.Away
	if m.Winner == nil {
		return
	}
	if !slotHolds(m.Home, m.Winner.ID) && !slotHolds(m.Away, m.Winner.ID) {
		m.Winner = nil
	}
}

func slotHolds(slot *teams.Team, teamID string) bool {
	return slot != nil && slot.ID == teamID
}
