package server

import (
	"context"
	"log/slog"

	"github.com/avatarneil/bracket.build/internal/config"
	"github.com/avatarneil/bracket.build/internal/snapshots"
)

type archiveComponents struct {
	writer *snapshots.Writer
	store  *snapshots.FSStore
}

// buildArchive assembles the write-behind bracket archive. When the archive is
// enabled and the primary store is volatile, archived brackets are warm-loaded
// back into the store before the server accepts traffic.
func buildArchive(cfg config.Config, target snapshots.BracketStore, logger *slog.Logger) archiveComponents {
	if !cfg.Archive.Enabled {
		return archiveComponents{}
	}

	writer := snapshots.NewWriter(cfg.Archive.Dir, cfg.Archive.RetentionDays)
	fsStore := snapshots.NewFSStore(cfg.Archive.Dir)

	if cfg.StoreBackend != "sqlite" {
		loader := snapshots.NewLoader(fsStore, target, logger)
		loader.Run(context.Background())
	}

	return archiveComponents{writer: writer, store: fsStore}
}
