package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/avatarneil/bracket.build/internal/store"
	"github.com/avatarneil/bracket.build/internal/timeutil"
)

// Writer persists saved-bracket archive records and the manifest. Records
// whose UpdatedAt falls outside the retention window are pruned on every
// manifest refresh, so abandoned shares age out of the archive.
type Writer struct {
	basePath      string
	retentionDays int
}

// NewWriter constructs a writer rooted at basePath with a rolling retention
// window in days.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteBracket writes one archive record and refreshes the manifest. Writes
// go through a temp file and rename so readers never see a partial record,
// and an unchanged record is not rewritten.
func (w *Writer) WriteBracket(b store.SavedBracket) error {
	if w == nil {
		return fmt.Errorf("archive writer not configured")
	}
	if b.ID == "" {
		return fmt.Errorf("bracket id required")
	}

	target := BracketArchivePath(w.basePath, b.ID)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.refreshManifest()
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.refreshManifest()
}

// RemoveBracket deletes a record from the archive. Removing a record that was
// never archived is not an error.
func (w *Writer) RemoveBracket(id string) error {
	if w == nil {
		return fmt.Errorf("archive writer not configured")
	}
	if id == "" {
		return fmt.Errorf("bracket id required")
	}
	if err := os.Remove(BracketArchivePath(w.basePath, id)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return w.refreshManifest()
}

func (w *Writer) refreshManifest() error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)
	now := time.Now().UTC()

	kept, err := w.pruneStale(now)
	if err != nil {
		return err
	}

	m.Brackets.IDs = kept
	m.Brackets.Count = len(kept)
	m.Brackets.LastRefreshed = now
	m.Retention.BracketDays = w.retentionDays

	return writeManifest(w.basePath, m)
}

// pruneStale removes records not touched inside the retention window and
// returns the sorted IDs that remain. Records that cannot be decoded are
// left alone for a later write to replace.
func (w *Writer) pruneStale(now time.Time) ([]string, error) {
	cutoff := timeutil.DaysBefore(now, w.retentionDays)

	dir := filepath.Join(w.basePath, "brackets")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	keep := []string{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		id := e.Name()[:len(e.Name())-len(".json")]
		path := filepath.Join(dir, e.Name())

		var b store.SavedBracket
		if err := decodeFile(path, &b); err != nil {
			keep = append(keep, id)
			continue
		}
		if b.UpdatedAt.Before(cutoff) {
			_ = os.Remove(path)
			continue
		}
		keep = append(keep, id)
	}
	sort.Strings(keep)
	return keep, nil
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
