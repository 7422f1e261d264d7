package teams

import "strings"

// The playoff field, one table per conference, index = seed - 1. The tables are
// the single source of truth for which teams exist and who hosts each wild card
// game; everything else in the bracket is derived from them.
var afcField = [7]Team{
	{ID: "kc", Name: "Kansas City Chiefs", ShortName: "Chiefs", Abbreviation: "KC", City: "Kansas City", Conference: AFC, Seed: 1},
	{ID: "buf", Name: "Buffalo Bills", ShortName: "Bills", Abbreviation: "BUF", City: "Orchard Park", Conference: AFC, Seed: 2},
	{ID: "bal", Name: "Baltimore Ravens", ShortName: "Ravens", Abbreviation: "BAL", City: "Baltimore", Conference: AFC, Seed: 3},
	{ID: "hou", Name: "Houston Texans", ShortName: "Texans", Abbreviation: "HOU", City: "Houston", Conference: AFC, Seed: 4},
	{ID: "lac", Name: "Los Angeles Chargers", ShortName: "Chargers", Abbreviation: "LAC", City: "Inglewood", Conference: AFC, Seed: 5},
	{ID: "pit", Name: "Pittsburgh Steelers", ShortName: "Steelers", Abbreviation: "PIT", City: "Pittsburgh", Conference: AFC, Seed: 6},
	{ID: "den", Name: "Denver Broncos", ShortName: "Broncos", Abbreviation: "DEN", City: "Denver", Conference: AFC, Seed: 7},
}

var nfcField = [7]Team{
	{ID: "det", Name: "Detroit Lions", ShortName: "Lions", Abbreviation: "DET", City: "Detroit", Conference: NFC, Seed: 1},
	{ID: "phi", Name: "Philadelphia Eagles", ShortName: "Eagles", Abbreviation: "PHI", City: "Philadelphia", Conference: NFC, Seed: 2},
	{ID: "tb", Name: "Tampa Bay Buccaneers", ShortName: "Buccaneers", Abbreviation: "TB", City: "Tampa", Conference: NFC, Seed: 3},
	{ID: "lar", Name: "Los Angeles Rams", ShortName: "Rams", Abbreviation: "LAR", City: "Inglewood", Conference: NFC, Seed: 4},
	{ID: "min", Name: "Minnesota Vikings", ShortName: "Vikings", Abbreviation: "MIN", City: "Minneapolis", Conference: NFC, Seed: 5},
	{ID: "was", Name: "Washington Commanders", ShortName: "Commanders", Abbreviation: "WAS", City: "Landover", Conference: NFC, Seed: 6},
	{ID: "gb", Name: "Green Bay Packers", ShortName: "Packers", Abbreviation: "GB", City: "Green Bay", Conference: NFC, Seed: 7},
}

// Seeded returns the playoff field for a conference ordered by seed (1 first).
// The returned slice is a copy; callers may not corrupt the tables.
func Seeded(conference Conference) []Team {
	var field [7]Team
	switch conference {
	case AFC:
		field = afcField
	case NFC:
		field = nfcField
	default:
		return nil
	}
	out := make([]Team, len(field))
	copy(out, field[:])
	return out
}

// BySeed returns the team holding a seed in a conference.
func BySeed(conference Conference, seed int) (*Team, bool) {
	if seed < 1 || seed > 7 {
		return nil, false
	}
	switch conference {
	case AFC:
		t := afcField[seed-1]
		return &t, true
	case NFC:
		t := nfcField[seed-1]
		return &t, true
	}
	return nil, false
}

// TopSeed returns the conference's #1 seed, the team with the first-round bye.
func TopSeed(conference Conference) (*Team, bool) {
	return BySeed(conference, 1)
}

// ByID looks a team up by its lowercase ID, e.g. "kc".
func ByID(id string) (*Team, bool) {
	for _, field := range [2][7]Team{afcField, nfcField} {
		for _, t := range field {
			if t.ID == id {
				c := t
				return &c, true
			}
		}
	}
	return nil, false
}

// ByAbbreviation resolves a team from its upstream abbreviation ("KC", "was").
func ByAbbreviation(abbr string) (*Team, bool) {
	return ByID(strings.ToLower(abbr))
}

// All returns the full playoff field, AFC seeds first.
func All() []Team {
	out := make([]Team, 0, 14)
	out = append(out, afcField[:]...)
	out = append(out, nfcField[:]...)
	return out
}
