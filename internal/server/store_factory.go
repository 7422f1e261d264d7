package server

import (
	"log/slog"

	appbrackets "github.com/avatarneil/bracket.build/internal/app/brackets"
	"github.com/avatarneil/bracket.build/internal/config"
	"github.com/avatarneil/bracket.build/internal/store"
)

// buildStore selects the bracket persistence backend. A sqlite open failure
// falls back to memory so the service still comes up; the error is logged.
func buildStore(cfg config.Config, logger *slog.Logger) (appbrackets.Store, func() error) {
	switch cfg.StoreBackend {
	case "sqlite":
		st, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			if logger != nil {
				logger.Warn("sqlite open failed, falling back to memory store",
					slog.String("path", cfg.SQLitePath), slog.Any("err", err))
			}
			return store.NewMemoryStore(), nil
		}
		return st, st.Close
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		if logger != nil {
			logger.Warn("unknown store backend, using memory", slog.String("backend", cfg.StoreBackend))
		}
		return store.NewMemoryStore(), nil
	}
}
