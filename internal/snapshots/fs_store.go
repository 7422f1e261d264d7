package snapshots

import (
	"os"
	"path/filepath"

	"github.com/avatarneil/bracket.build/internal/store"
)

// Store defines how archived brackets are loaded.
type Store interface {
	LoadBrackets() ([]store.SavedBracket, error)
}

// FSStore loads archive records from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed archive store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadBrackets reads every archive record under {basePath}/brackets. Records
// that fail to decode are skipped; a missing directory is an empty archive.
func (s *FSStore) LoadBrackets() ([]store.SavedBracket, error) {
	if s == nil {
		return nil, nil
	}
	dir := filepath.Join(s.basePath, "brackets")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []store.SavedBracket{}, nil
		}
		return nil, err
	}

	result := make([]store.SavedBracket, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		var b store.SavedBracket
		if err := decodeFile(filepath.Join(dir, e.Name()), &b); err != nil {
			continue
		}
		if b.ID == "" {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}
