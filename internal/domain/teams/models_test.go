package teams

import "testing"

func TestSeededOrderAndSize(t *testing.T) {
	for _, conference := range []Conference{AFC, NFC} {
		field := Seeded(conference)
		if len(field) != 7 {
			t.Fatalf("%s field has %d teams, want 7", conference, len(field))
		}
		for i, team := range field {
			if team.Seed != i+1 {
				t.Fatalf("%s index %d has seed %d, want %d", conference, i, team.Seed, i+1)
			}
			if team.Conference != conference {
				t.Fatalf("%s field contains %s team %s", conference, team.Conference, team.ID)
			}
		}
	}
}

func TestSeededUnknownConference(t *testing.T) {
	if got := Seeded(Conference("XFL")); got != nil {
		t.Fatalf("expected nil field for unknown conference, got %v", got)
	}
}

func TestSeededReturnsCopy(t *testing.T) {
	field := Seeded(AFC)
	field[0].Name = "mutated"
	if fresh := Seeded(AFC); fresh[0].Name == "mutated" {
		t.Fatal("mutating a Seeded result leaked into the seed table")
	}
}

func TestBySeed(t *testing.T) {
	cases := []struct {
		conference Conference
		seed       int
		wantID     string
	}{
		{AFC, 1, "kc"},
		{AFC, 7, "den"},
		{NFC, 1, "det"},
		{NFC, 4, "lar"},
	}
	for _, tc := range cases {
		team, ok := BySeed(tc.conference, tc.seed)
		if !ok {
			t.Fatalf("BySeed(%s, %d) not found", tc.conference, tc.seed)
		}
		if team.ID != tc.wantID {
			t.Fatalf("BySeed(%s, %d) = %s, want %s", tc.conference, tc.seed, team.ID, tc.wantID)
		}
	}
	for _, seed := range []int{0, 8, -1} {
		if _, ok := BySeed(AFC, seed); ok {
			t.Fatalf("BySeed(AFC, %d) unexpectedly resolved", seed)
		}
	}
}

func TestTopSeedHasBye(t *testing.T) {
	afcTop, ok := TopSeed(AFC)
	if !ok || afcTop.Seed != 1 || afcTop.ID != "kc" {
		t.Fatalf("unexpected AFC top seed: %+v ok=%v", afcTop, ok)
	}
	nfcTop, ok := TopSeed(NFC)
	if !ok || nfcTop.Seed != 1 || nfcTop.ID != "det" {
		t.Fatalf("unexpected NFC top seed: %+v ok=%v", nfcTop, ok)
	}
}

func TestByIDAndAbbreviation(t *testing.T) {
	team, ok := ByID("pit")
	if !ok || team.Abbreviation != "PIT" {
		t.Fatalf("ByID(pit) = %+v ok=%v", team, ok)
	}
	team, ok = ByAbbreviation("WAS")
	if !ok || team.ID != "was" {
		t.Fatalf("ByAbbreviation(WAS) = %+v ok=%v", team, ok)
	}
	if _, ok := ByID("nyj"); ok {
		t.Fatal("ByID resolved a team outside the playoff field")
	}
}

func TestByIDReturnsCopy(t *testing.T) {
	first, _ := ByID("kc")
	first.Name = "mutated"
	second, _ := ByID("kc")
	if second.Name == "mutated" {
		t.Fatal("mutating a ByID result leaked into the seed table")
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 14 {
		t.Fatalf("All returned %d teams, want 14", len(all))
	}
	seen := make(map[string]bool, len(all))
	for _, team := range all {
		if seen[team.ID] {
			t.Fatalf("duplicate team ID %s", team.ID)
		}
		seen[team.ID] = true
	}
	if all[0].Conference != AFC || all[13].Conference != NFC {
		t.Fatalf("expected AFC teams first, got %s ... %s", all[0].Conference, all[13].Conference)
	}
}
