package testutil

import (
	"testing"

	"github.com/avatarneil/bracket.build/internal/snapshots"
	"github.com/avatarneil/bracket.build/internal/store"
)

// NewTempWriter returns an archive writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// ArchiveBracket writes a record into the archive, failing the test on error.
func ArchiveBracket(t *testing.T, w *snapshots.Writer, b store.SavedBracket) {
	t.Helper()
	if err := w.WriteBracket(b); err != nil {
		t.Fatalf("failed to archive bracket %s: %v", b.ID, err)
	}
}
