// Package codec serializes the thirteen bracket picks into a compact URL-safe
// token and rebuilds bracket state from one. The token is the persistence and
// sharing format: it carries picks only, never team data or derived flags.
package codec

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/avatarneil/bracket.build/internal/domain/bracket"
)

// Pick is one matchup's two-bit contribution to the token.
type Pick uint8

const (
	PickNone Pick = 0
	PickHome Pick = 1
	PickAway Pick = 2
)

// tokenBytes is the packed payload size. Thirteen two-bit codes need 26 bits,
// carried in a little-endian uint32.
const tokenBytes = 4

// ErrInvalidToken is returned for tokens that are not unpadded base64url or
// do not decode to exactly four bytes.
var ErrInvalidToken = errors.New("invalid bracket token")

// Picks extracts the per-matchup codes from a snapshot in canonical matchup
// order. A winner that matches neither team slot degrades to PickNone, so
// encoding never fails on a malformed state.
func Picks(s bracket.State) [bracket.MatchupCount]Pick {
	var out [bracket.MatchupCount]Pick
	for i, m := range s.Matchups() {
		out[i] = pickFor(m)
	}
	return out
}

func pickFor(m bracket.Matchup) Pick {
	if m.Winner == nil {
		return PickNone
	}
	switch {
	case m.Home != nil && m.Home.ID == m.Winner.ID:
		return PickHome
	case m.Away != nil && m.Away.ID == m.Winner.ID:
		return PickAway
	}
	return PickNone
}

// Encode packs a snapshot's picks into a six-character token.
func Encode(s bracket.State) string {
	return EncodePicks(Picks(s))
}

// EncodePicks packs codes little-endian, matchup i occupying bits 2i and
// 2i+1, and emits the four payload bytes as unpadded base64url.
func EncodePicks(picks [bracket.MatchupCount]Pick) string {
	var packed uint32
	for i, p := range picks {
		packed |= uint32(p&0b11) << (2 * i)
	}
	var buf [tokenBytes]byte
	binary.LittleEndian.PutUint32(buf[:], packed)
	return base64.RawURLEncoding.EncodeToString(buf[:])
}

// Decode unpacks a token into per-matchup codes. Trailing padding is
// tolerated; anything outside the base64url alphabet or a payload that is not
// exactly four bytes is rejected. The reserved code 3 reads as no pick.
func Decode(token string) ([bracket.MatchupCount]Pick, error) {
	var picks [bracket.MatchupCount]Pick
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return picks, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if len(raw) != tokenBytes {
		return picks, fmt.Errorf("%w: payload is %d bytes, want %d", ErrInvalidToken, len(raw), tokenBytes)
	}
	packed := binary.LittleEndian.Uint32(raw)
	for i := range picks {
		p := Pick(packed >> (2 * i) & 0b11)
		if p > PickAway {
			p = PickNone
		}
		picks[i] = p
	}
	return picks, nil
}

// Apply replays decoded picks onto a fresh bracket for an owner. Codes apply
// in canonical order, so each round's teams are derived before that round's
// picks land. Codes aimed at a matchup whose teams are still undetermined are
// skipped rather than failed, which makes hand-edited tokens degrade to
// partial brackets. Completion is re-derived by the engine, never trusted
// from the wire.
func Apply(picks [bracket.MatchupCount]Pick, owner string) bracket.State {
	s := bracket.New(owner)
	ids := bracket.MatchupIDs()
	for i, p := range picks {
		if p == PickNone {
			continue
		}
		m, ok := s.Matchup(ids[i])
		if !ok || !m.Ready() {
			continue
		}
		team := m.Home
		if p == PickAway {
			team = m.Away
		}
		next, err := bracket.SelectWinner(s, ids[i], team.ID)
		if err != nil {
			continue
		}
		s = next
	}
	return s
}

// DecodeState is the one-call path from token to snapshot.
func DecodeState(token, owner string) (bracket.State, error) {
	picks, err := Decode(token)
	if err != nil {
		return bracket.State{}, err
	}
	return Apply(picks, owner), nil
}
