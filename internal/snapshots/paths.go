package snapshots

import (
	"fmt"
	"path/filepath"
)

// BracketArchivePath builds the path to the archive record for a bracket ID.
func BracketArchivePath(basePath, id string) string {
	return filepath.Join(basePath, "brackets", fmt.Sprintf("%s.json", id))
}
