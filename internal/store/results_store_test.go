package store

import (
	"testing"
	"time"

	"github.com/avatarneil/bracket.build/internal/domain/results"
)

func TestResultStoreReplaceAndGet(t *testing.T) {
	s := NewResultStore()
	at := time.Date(2026, 1, 11, 18, 0, 0, 0, time.UTC)

	s.Replace([]results.Result{
		{MatchupID: "afc-wc-1", Status: results.StatusInProgress},
		{MatchupID: "afc-wc-2", Status: results.StatusScheduled},
	}, at)

	if got := len(s.List()); got != 2 {
		t.Fatalf("expected 2 results, got %d", got)
	}
	r, ok := s.Get("afc-wc-1")
	if !ok {
		t.Fatalf("expected result for afc-wc-1")
	}
	if r.Status != results.StatusInProgress {
		t.Fatalf("unexpected status %s", r.Status)
	}
	if !s.UpdatedAt().Equal(at) {
		t.Fatalf("UpdatedAt = %v, want %v", s.UpdatedAt(), at)
	}
}

func TestResultStoreGetNotFound(t *testing.T) {
	s := NewResultStore()
	if _, ok := s.Get("super-bowl"); ok {
		t.Fatalf("expected missing matchup to return false")
	}
}

func TestResultStoreReplaceDropsOldSnapshot(t *testing.T) {
	s := NewResultStore()
	s.Replace([]results.Result{{MatchupID: "afc-wc-1"}}, time.Now().UTC())

	s.Replace([]results.Result{{MatchupID: "nfc-wc-1"}}, time.Now().UTC())

	if _, ok := s.Get("afc-wc-1"); ok {
		t.Fatalf("expected old result to be removed after replace")
	}
	if _, ok := s.Get("nfc-wc-1"); !ok {
		t.Fatalf("expected new result to be present")
	}
}

func TestResultStoreListOrderedAndCopied(t *testing.T) {
	s := NewResultStore()
	s.Replace([]results.Result{
		{MatchupID: "nfc-wc-1", Provider: "fixture"},
		{MatchupID: "afc-wc-1", Provider: "fixture"},
	}, time.Now().UTC())

	list := s.List()
	if list[0].MatchupID != "afc-wc-1" || list[1].MatchupID != "nfc-wc-1" {
		t.Fatalf("unexpected order: %s, %s", list[0].MatchupID, list[1].MatchupID)
	}

	list[0].Provider = "mutated"
	r, ok := s.Get("afc-wc-1")
	if !ok {
		t.Fatalf("expected to find result")
	}
	if r.Provider != "fixture" {
		t.Fatalf("expected store to remain unchanged, got %s", r.Provider)
	}
}
