package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "brackets.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestSQLiteStoreSaveAndGet(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()
	created := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	want := record("b-1", "casey", created)
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, "b-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != want.ID || got.Owner != want.Owner || got.Name != want.Name || got.Token != want.Token {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Fatalf("timestamps did not survive: %v / %v", got.CreatedAt, got.UpdatedAt)
	}
}

func TestSQLiteStoreGetNotFound(t *testing.T) {
	s := openTestDB(t)
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStoreUpsert(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()
	created := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	first := record("b-1", "casey", created)
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := first
	second.Token = "AAAAAQ"
	second.UpdatedAt = created.Add(2 * time.Hour)
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("Save replacement: %v", err)
	}

	got, err := s.Get(ctx, "b-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Token != "AAAAAQ" {
		t.Fatalf("token not replaced: %s", got.Token)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt should be preserved on upsert, got %v", got.CreatedAt)
	}
	if !got.UpdatedAt.Equal(second.UpdatedAt) {
		t.Fatalf("UpdatedAt not refreshed: %v", got.UpdatedAt)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("upsert duplicated the row: %d records", len(list))
	}
}

func TestSQLiteStoreListOrder(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	for _, b := range []SavedBracket{
		record("b", "late", base.Add(time.Hour)),
		record("c", "early", base),
		record("a", "tied", base),
	} {
		if err := s.Save(ctx, b); err != nil {
			t.Fatalf("Save %s: %v", b.ID, err)
		}
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"a", "c", "b"}
	if len(list) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(list))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("list[%d] = %s, want %s", i, list[i].ID, id)
		}
	}
}

func TestSQLiteStoreDelete(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	if err := s.Save(ctx, record("b-1", "casey", time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete(ctx, "b-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "b-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, "b-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing row, got %v", err)
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brackets.db")
	ctx := context.Background()

	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := first.Save(ctx, record("b-1", "casey", time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "b-1")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.Owner != "casey" {
		t.Fatalf("unexpected owner %s", got.Owner)
	}
}
