package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/avatarneil/bracket.build/internal/domain/results"
	"github.com/avatarneil/bracket.build/internal/store"
)

// StubProvider is a test double for providers.ResultProvider.
type StubProvider struct {
	Results []results.Result
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchResults returns the configured results and error while tracking calls.
func (s *StubProvider) FetchResults(ctx context.Context) ([]results.Result, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Results, s.Err
}

// StubArchiveWriter records archived brackets for verification in tests.
type StubArchiveWriter struct {
	mu       sync.Mutex
	Written  map[string]store.SavedBracket
	Removed  []string
	WriteErr error
	RemErr   error
}

// WriteBracket records the bracket keyed by ID.
func (w *StubArchiveWriter) WriteBracket(b store.SavedBracket) error {
	if w.WriteErr != nil {
		return w.WriteErr
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Written == nil {
		w.Written = make(map[string]store.SavedBracket)
	}
	w.Written[b.ID] = b
	return nil
}

// RemoveBracket records the removal.
func (w *StubArchiveWriter) RemoveBracket(id string) error {
	if w.RemErr != nil {
		return w.RemErr
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Removed = append(w.Removed, id)
	return nil
}

// WrittenBracket returns the archived record for an ID, if any.
func (w *StubArchiveWriter) WrittenBracket(id string) (store.SavedBracket, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, ok := w.Written[id]
	return b, ok
}
