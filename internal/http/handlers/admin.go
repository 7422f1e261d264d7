package handlers

import (
	"log/slog"
	"net/http"
	"time"

	appresults "github.com/avatarneil/bracket.build/internal/app/results"
	"github.com/avatarneil/bracket.build/internal/http/requestutil"
	"github.com/avatarneil/bracket.build/internal/logging"
	"github.com/avatarneil/bracket.build/internal/timeutil"
)

// AdminHandler exposes operator-only endpoints. Live results enter the
// service exclusively through the refresh endpoint here; there is no
// background polling.
type AdminHandler struct {
	results *appresults.Service
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. With an empty token every
// request is refused, so the endpoint is opt-in.
func NewAdminHandler(results *appresults.Service, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		results: results,
		token:   token,
		logger:  logger,
	}
}

// RefreshResults pulls a fresh snapshot from the configured provider into
// the results cache. Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshResults(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.results == nil {
		writeError(w, r, http.StatusServiceUnavailable, "results service not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	count, err := h.results.Refresh(r.Context())
	if err != nil {
		logging.Warn(logger, "admin results refresh failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "failed to fetch results", logger)
		return
	}

	now := time.Now().UTC()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"results":     count,
		"date":        timeutil.FormatDate(now),
		"refreshedAt": now.Format(time.RFC3339),
	}, logger)
	logging.Info(logger, "admin results refreshed", slog.Int(logging.FieldCount, count))
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
