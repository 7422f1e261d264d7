package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/avatarneil/bracket.build/internal/domain/results"
	"github.com/avatarneil/bracket.build/internal/store"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Results: []results.Result{{MatchupID: "afc-wc-1"}}, Err: err}
	if _, got := p.FetchResults(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestStubProviderClosesNotifyOnce(t *testing.T) {
	p := &StubProvider{Notify: make(chan struct{})}
	_, _ = p.FetchResults(context.Background())
	_, _ = p.FetchResults(context.Background())

	select {
	case <-p.Notify:
	default:
		t.Fatal("expected notify channel to be closed")
	}
}

func TestStubArchiveWriterRecordsWritesAndRemovals(t *testing.T) {
	w := &StubArchiveWriter{}
	if err := w.WriteBracket(store.SavedBracket{ID: "b1", Token: "AAAAAA"}); err != nil {
		t.Fatalf("expected write to succeed, got %v", err)
	}
	if err := w.RemoveBracket("b1"); err != nil {
		t.Fatalf("expected removal to succeed, got %v", err)
	}

	if b, ok := w.WrittenBracket("b1"); !ok || b.Token != "AAAAAA" {
		t.Fatalf("expected archived record, got %+v ok=%v", b, ok)
	}
	if len(w.Removed) != 1 || w.Removed[0] != "b1" {
		t.Fatalf("unexpected removals %v", w.Removed)
	}
}

func TestStubArchiveWriterPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	w := &StubArchiveWriter{WriteErr: boom, RemErr: boom}
	if err := w.WriteBracket(store.SavedBracket{ID: "b1"}); !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}
	if err := w.RemoveBracket("b1"); !errors.Is(err, boom) {
		t.Fatalf("expected removal error, got %v", err)
	}
}
