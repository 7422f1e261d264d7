package store

import (
	"sort"
	"sync"
	"time"

	"github.com/avatarneil/bracket.build/internal/domain/results"
)

// ResultStore keeps a thread-safe snapshot of live results in memory, keyed
// by bracket matchup ID. Refreshes replace the whole snapshot.
type ResultStore struct {
	mu        sync.RWMutex
	results   map[string]results.Result
	updatedAt time.Time
}

// NewResultStore constructs an empty ResultStore.
func NewResultStore() *ResultStore {
	return &ResultStore{
		results: make(map[string]results.Result),
	}
}

// Replace swaps in a new snapshot and records when it happened.
func (s *ResultStore) Replace(rs []results.Result, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = make(map[string]results.Result, len(rs))
	for _, r := range rs {
		s.results[r.MatchupID] = r
	}
	s.updatedAt = at
}

// List returns a copy of the current snapshot ordered by matchup ID.
func (s *ResultStore) List() []results.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]results.Result, 0, len(s.results))
	for _, r := range s.results {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MatchupID < result[j].MatchupID })
	return result
}

// Get retrieves the live result for a matchup.
func (s *ResultStore) Get(matchupID string) (results.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.results[matchupID]
	return r, ok
}

// UpdatedAt reports when the snapshot was last replaced.
func (s *ResultStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.updatedAt
}
