package codec

import (
	"errors"
	"testing"

	"github.com/avatarneil/bracket.build/internal/domain/bracket"
	"github.com/avatarneil/bracket.build/internal/domain/teams"
)

func pick(t *testing.T, s bracket.State, matchupID, teamID string) bracket.State {
	t.Helper()
	next, err := bracket.SelectWinner(s, matchupID, teamID)
	if err != nil {
		t.Fatalf("SelectWinner(%s, %s): %v", matchupID, teamID, err)
	}
	return next
}

func chalkBracket(t *testing.T, owner string) bracket.State {
	t.Helper()
	s := bracket.New(owner)
	for _, id := range bracket.MatchupIDs() {
		m, ok := s.Matchup(id)
		if !ok || !m.Ready() {
			t.Fatalf("matchup %s not ready", id)
		}
		s = pick(t, s, id, m.Home.ID)
	}
	return s
}

func TestEncodeFreshBracket(t *testing.T) {
	token := Encode(bracket.New("casey"))
	if token != "AAAAAA" {
		t.Fatalf("fresh bracket token = %q, want AAAAAA", token)
	}
	if len(token) != 6 {
		t.Fatalf("token length = %d, want 6", len(token))
	}
}

func TestSuperBowlOnlyByteLayout(t *testing.T) {
	// A home-team pick in the last matchup occupies bits 24-25, so the
	// little-endian payload is [0,0,0,1] and the token is "AAAAAQ".
	var picks [bracket.MatchupCount]Pick
	picks[12] = PickHome

	token := EncodePicks(picks)
	if token != "AAAAAQ" {
		t.Fatalf("token = %q, want AAAAAQ", token)
	}

	decoded, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded != picks {
		t.Fatalf("decoded = %v, want %v", decoded, picks)
	}
}

func TestRoundTripTokens(t *testing.T) {
	partial := bracket.New("casey")
	partial = pick(t, partial, "afc-wc-1", "den")
	partial = pick(t, partial, "nfc-wc-2", "was")
	partial = pick(t, partial, "afc-div-1", "kc")

	cases := []struct {
		name  string
		state bracket.State
	}{
		{"fresh", bracket.New("casey")},
		{"partial with upsets", partial},
		{"complete", chalkBracket(t, "casey")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := Encode(tc.state)
			if len(token) != 6 {
				t.Fatalf("token %q length = %d, want 6", token, len(token))
			}
			rebuilt, err := DecodeState(token, tc.state.Owner)
			if err != nil {
				t.Fatalf("DecodeState: %v", err)
			}
			if again := Encode(rebuilt); again != token {
				t.Fatalf("re-encode = %q, want %q", again, token)
			}
			if Picks(rebuilt) != Picks(tc.state) {
				t.Fatalf("picks diverged: %v vs %v", Picks(rebuilt), Picks(tc.state))
			}
		})
	}
}

func TestDecodeToleratesPadding(t *testing.T) {
	withPadding, err := Decode("AAAAAQ==")
	if err != nil {
		t.Fatalf("Decode with padding: %v", err)
	}
	bare, err := Decode("AAAAAQ")
	if err != nil {
		t.Fatalf("Decode without padding: %v", err)
	}
	if withPadding != bare {
		t.Fatal("padded and unpadded tokens decoded differently")
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"too short", "AAA"},
		{"too long", "AAAAAAAA"},
		{"standard alphabet", "AAAA+Q"},
		{"whitespace", "AAA AQ"},
		{"interior padding", "AA=AAQ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("Decode(%q) error = %v, want ErrInvalidToken", tc.token, err)
			}
		})
	}
}

func TestDecodeReservedCodeReadsAsNoPick(t *testing.T) {
	// Bits 0-1 set to 3 is the reserved per-matchup code.
	var payload [bracket.MatchupCount]Pick
	payload[0] = Pick(3)
	token := EncodePicks(payload)

	decoded, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded[0] != PickNone {
		t.Fatalf("reserved code decoded to %d, want PickNone", decoded[0])
	}
}

func TestPicksDegradeInconsistentWinner(t *testing.T) {
	s := bracket.New("casey")
	stray, _ := teams.ByID("kc")
	s.AFC.WildCard[0].Winner = stray // kc is not in the 2v7 game

	picks := Picks(s)
	if picks[0] != PickNone {
		t.Fatalf("inconsistent winner encoded as %d, want PickNone", picks[0])
	}
}

func TestApplySkipsUnderivedPicks(t *testing.T) {
	// A divisional code with no wild card winners ahead of it has no teams to
	// bind to and must drop out silently.
	var picks [bracket.MatchupCount]Pick
	picks[6] = PickHome // afc-div-1

	s := Apply(picks, "casey")
	m, ok := s.Matchup("afc-div-1")
	if !ok {
		t.Fatal("missing afc-div-1")
	}
	if m.Winner != nil || m.Home != nil || m.Away != nil {
		t.Fatalf("underived pick leaked into state: %+v", m)
	}
	if Encode(s) != "AAAAAA" {
		t.Fatalf("re-encoded token = %q, want fresh", Encode(s))
	}
}

func TestApplyDerivesRoundsInOrder(t *testing.T) {
	// Wild card pick plus the dependent divisional pick both survive because
	// rounds apply in index order.
	src := bracket.New("casey")
	src = pick(t, src, "afc-wc-1", "buf")
	src = pick(t, src, "afc-div-1", "buf")

	rebuilt, err := DecodeState(Encode(src), "casey")
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}
	m, ok := rebuilt.Matchup("afc-div-1")
	if !ok || m.Winner == nil || m.Winner.ID != "buf" {
		t.Fatalf("divisional pick lost in round trip: %+v", m)
	}
}

func TestApplyRecomputesCompletion(t *testing.T) {
	full := chalkBracket(t, "casey")
	rebuilt, err := DecodeState(Encode(full), "casey")
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}
	if !rebuilt.Complete || !bracket.IsComplete(rebuilt) {
		t.Fatal("complete bracket lost completion through the codec")
	}

	empty, err := DecodeState("AAAAAA", "casey")
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}
	if empty.Complete {
		t.Fatal("fresh token decoded as complete")
	}
}

func TestDecodeStateOwner(t *testing.T) {
	s, err := DecodeState("AAAAAA", "jamie")
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}
	if s.Owner != "jamie" {
		t.Fatalf("owner = %q, want jamie", s.Owner)
	}
}
