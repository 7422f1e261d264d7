package snapshots

import (
	"context"
	"log/slog"
	"time"

	"github.com/avatarneil/bracket.build/internal/store"
)

// BracketStore receives warm-loaded records at boot.
type BracketStore interface {
	Save(ctx context.Context, b store.SavedBracket) error
}

// Loader restores archived brackets into a store at startup so a memory
// backend survives restarts. Saves happen through the store port, which keeps
// the archive format decoupled from the backing store.
type Loader struct {
	archive Store
	target  BracketStore
	logger  *slog.Logger
}

// NewLoader constructs a warm loader.
func NewLoader(archive Store, target BracketStore, logger *slog.Logger) *Loader {
	return &Loader{
		archive: archive,
		target:  target,
		logger:  logger,
	}
}

// Run loads every archived record into the target store. Individual record
// failures are logged and skipped; the boot sequence never fails on archive
// problems.
func (l *Loader) Run(ctx context.Context) {
	if l == nil || l.archive == nil || l.target == nil {
		return
	}
	start := time.Now()

	records, err := l.archive.LoadBrackets()
	if err != nil {
		l.logWarn("bracket archive load failed", "err", err)
		return
	}

	loaded := 0
	for _, b := range records {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if err := l.target.Save(ctx, b); err != nil {
			l.logWarn("bracket warm load failed", "id", b.ID, "err", err)
			continue
		}
		loaded++
	}

	l.logInfo("bracket archive loaded",
		"count", loaded,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (l *Loader) logInfo(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Info(msg, args...)
	}
}

func (l *Loader) logWarn(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}
}
