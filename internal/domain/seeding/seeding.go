// Package seeding holds the NFL playoff pairing rules as pure functions over
// the seed tables. It knows nothing about bracket state, picks, or tokens;
// the bracket engine derives every post-wild-card slot through this package.
package seeding

import (
	"sort"

	"github.com/avatarneil/bracket.build/internal/domain/teams"
)

// Pairing is one derived matchup slot pair. A nil side means the slot cannot
// be determined from the winners known so far.
type Pairing struct {
	Home *teams.Team
	Away *teams.Team
}

// wildCardSeedPairs lists the fixed first-round games in bracket order.
// The #1 seed has a bye; the higher seed hosts.
var wildCardSeedPairs = [3][2]int{{2, 7}, {3, 6}, {4, 5}}

// WildCardPairings returns the three first-round games for a conference in
// bracket order: 2v7, 3v6, 4v5.
func WildCardPairings(conference teams.Conference) [3]Pairing {
	var out [3]Pairing
	for i, pair := range wildCardSeedPairs {
		home, _ := teams.BySeed(conference, pair[0])
		away, _ := teams.BySeed(conference, pair[1])
		out[i] = Pairing{Home: home, Away: away}
	}
	return out
}

// WildCardSlot maps an unordered seed pair to its wild card bracket slot
// (0-based). Used when correlating external game feeds back onto the bracket.
func WildCardSlot(seedA, seedB int) (int, bool) {
	for i, pair := range wildCardSeedPairs {
		if (seedA == pair[0] && seedB == pair[1]) || (seedA == pair[1] && seedB == pair[0]) {
			return i, true
		}
	}
	return 0, false
}

// DivisionalPairings applies the NFL re-seeding rule to the wild card winners
// known so far. The #1 seed always hosts the worst remaining winner; the other
// two winners meet with the better seed hosting. Winners that are not yet
// known leave their slots nil, so the pairings fill in as picks land: a single
// known winner is provisionally slotted against the #1 seed until a worse
// seed survives and bumps it to the second game.
func DivisionalPairings(conference teams.Conference, wildCardWinners [3]*teams.Team) [2]Pairing {
	present := make([]*teams.Team, 0, 3)
	for _, w := range wildCardWinners {
		if w != nil {
			present = append(present, w)
		}
	}
	var out [2]Pairing
	if len(present) == 0 {
		return out
	}
	sort.Slice(present, func(i, j int) bool { return present[i].Seed < present[j].Seed })

	top, ok := teams.TopSeed(conference)
	if !ok {
		return out
	}
	out[0].Home = top
	out[0].Away = present[len(present)-1]

	rest := present[:len(present)-1]
	switch len(rest) {
	case 1:
		out[1].Home = rest[0]
	case 2:
		out[1].Home = rest[0]
		out[1].Away = rest[1]
	}
	return out
}

// ChampionshipPairing pairs the two divisional winners, better seed hosting.
// With only one winner known it provisionally holds the home slot.
func ChampionshipPairing(divisionalWinners [2]*teams.Team) Pairing {
	a, b := divisionalWinners[0], divisionalWinners[1]
	switch {
	case a == nil && b == nil:
		return Pairing{}
	case a == nil:
		return Pairing{Home: b}
	case b == nil:
		return Pairing{Home: a}
	}
	if b.Seed < a.Seed {
		a, b = b, a
	}
	return Pairing{Home: a, Away: b}
}

// SuperBowlPairing pairs the conference champions positionally: AFC home,
// NFC away. Seeds never cross conferences, so there is no re-seeding here.
func SuperBowlPairing(afcChampion, nfcChampion *teams.Team) Pairing {
	return Pairing{Home: afcChampion, Away: nfcChampion}
}
