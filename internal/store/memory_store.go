package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps a thread-safe set of saved brackets in memory.
type MemoryStore struct {
	mu       sync.RWMutex
	brackets map[string]SavedBracket
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		brackets: make(map[string]SavedBracket),
	}
}

// Save inserts or replaces a record by ID.
func (s *MemoryStore) Save(_ context.Context, b SavedBracket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.brackets[b.ID] = b
	return nil
}

// Get retrieves a record by ID.
func (s *MemoryStore) Get(_ context.Context, id string) (SavedBracket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.brackets[id]
	if !ok {
		return SavedBracket{}, ErrNotFound
	}
	return b, nil
}

// List returns a copy of the current records ordered by creation time, ties
// broken by ID so the ordering is stable.
func (s *MemoryStore) List(_ context.Context) ([]SavedBracket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]SavedBracket, 0, len(s.brackets))
	for _, b := range s.brackets {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Delete removes a record by ID.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.brackets[id]; !ok {
		return ErrNotFound
	}
	delete(s.brackets, id)
	return nil
}
