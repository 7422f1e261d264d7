// Package http assembles the chi router for the bracket API.
package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avatarneil/bracket.build/internal/http/handlers"
	"github.com/avatarneil/bracket.build/internal/http/middleware"
	"github.com/avatarneil/bracket.build/internal/metrics"
)

// NewRouter registers the API routes. The logging middleware is mounted
// inside the router so metrics see chi route patterns, not raw paths. The
// admin handler is mounted only when provided.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/teams", h.Teams)
	r.Get("/results", h.Results)

	r.Route("/brackets", func(r chi.Router) {
		r.Post("/", h.CreateBracket)
		r.Get("/", h.ListBrackets)
		r.Get("/preview", h.Preview)
		r.Post("/import", h.ImportBracket)

		r.Route("/{bracketID}", func(r chi.Router) {
			r.Get("/", h.GetBracket)
			r.Delete("/", h.DeleteBracket)
			r.Post("/picks", h.Pick)
			r.Delete("/picks/{matchupID}", h.ClearPick)
			r.Get("/locks", h.Locks)
			r.Get("/share", h.Share)
		})
	})

	if admin != nil {
		r.Post("/admin/results/refresh", admin.RefreshResults)
	}

	return r
}
