package testutil

import (
	"log/slog"

	"github.com/avatarneil/bracket.build/internal/app/brackets"
	"github.com/avatarneil/bracket.build/internal/metrics"
	"github.com/avatarneil/bracket.build/internal/share"
	"github.com/avatarneil/bracket.build/internal/store"
)

// NewBracketService builds a bracket service over a fresh in-memory store,
// with no archive and no live result source.
func NewBracketService(logger *slog.Logger) (*brackets.Service, *store.MemoryStore) {
	return NewBracketServiceWithLive(logger, nil)
}

// NewBracketServiceWithLive is NewBracketService with a live result source
// for lock tests.
func NewBracketServiceWithLive(logger *slog.Logger, live brackets.ResultSource) (*brackets.Service, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	svc := brackets.NewService(brackets.Config{
		Store:    ms,
		Live:     live,
		Share:    share.NewBuilder("https://bracket.test"),
		Recorder: metrics.NewRecorder(),
		Logger:   logger,
	})
	return svc, ms
}
