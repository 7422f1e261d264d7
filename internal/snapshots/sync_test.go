package snapshots_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avatarneil/bracket.build/internal/snapshots"
	"github.com/avatarneil/bracket.build/internal/store"
	"github.com/avatarneil/bracket.build/internal/testutil"
)

func archivedBracket(id string, updated time.Time) store.SavedBracket {
	return store.SavedBracket{
		ID:        id,
		Owner:     "casey",
		Name:      "casey's bracket",
		Token:     "AAAAAA",
		CreatedAt: updated,
		UpdatedAt: updated,
	}
}

type stubArchive struct {
	records []store.SavedBracket
	err     error
}

func (s *stubArchive) LoadBrackets() ([]store.SavedBracket, error) {
	return s.records, s.err
}

type failingStore struct {
	saved  []store.SavedBracket
	failID string
}

func (s *failingStore) Save(_ context.Context, b store.SavedBracket) error {
	if b.ID == s.failID {
		return errors.New("boom")
	}
	s.saved = append(s.saved, b)
	return nil
}

func TestLoaderRunLoadsArchive(t *testing.T) {
	now := time.Now().UTC()
	archive := &stubArchive{records: []store.SavedBracket{
		archivedBracket("b-1", now),
		archivedBracket("b-2", now),
	}}
	target := store.NewMemoryStore()

	logger, _ := testutil.NewBufferLogger()
	snapshots.NewLoader(archive, target, logger).Run(context.Background())

	list, err := target.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 warm-loaded brackets, got %d", len(list))
	}
}

func TestLoaderRunSkipsFailedSaves(t *testing.T) {
	now := time.Now().UTC()
	archive := &stubArchive{records: []store.SavedBracket{
		archivedBracket("b-1", now),
		archivedBracket("b-2", now),
	}}
	target := &failingStore{failID: "b-1"}

	logger, _ := testutil.NewBufferLogger()
	snapshots.NewLoader(archive, target, logger).Run(context.Background())

	if len(target.saved) != 1 || target.saved[0].ID != "b-2" {
		t.Fatalf("expected only b-2 to load, got %+v", target.saved)
	}
}

func TestLoaderRunToleratesArchiveError(t *testing.T) {
	archive := &stubArchive{err: errors.New("disk gone")}
	target := &failingStore{}

	logger, _ := testutil.NewBufferLogger()
	snapshots.NewLoader(archive, target, logger).Run(context.Background())

	if len(target.saved) != 0 {
		t.Fatalf("expected nothing loaded, got %+v", target.saved)
	}
}

func TestLoaderNilSafety(t *testing.T) {
	var l *snapshots.Loader
	l.Run(context.Background())

	snapshots.NewLoader(nil, nil, nil).Run(context.Background())
}
