// Package handlers wires the HTTP API onto the application services. Engine
// and codec errors map to statuses here; everything below this layer speaks
// sentinel errors.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	appbrackets "github.com/avatarneil/bracket.build/internal/app/brackets"
	appresults "github.com/avatarneil/bracket.build/internal/app/results"
	appteams "github.com/avatarneil/bracket.build/internal/app/teams"
	"github.com/avatarneil/bracket.build/internal/codec"
	"github.com/avatarneil/bracket.build/internal/domain/bracket"
	"github.com/avatarneil/bracket.build/internal/domain/teams"
	"github.com/avatarneil/bracket.build/internal/store"
)

// Handler wires HTTP routes to the application services.
type Handler struct {
	brackets *appbrackets.Service
	teams    *appteams.Service
	results  *appresults.Service
	logger   *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(brackets *appbrackets.Service, teams *appteams.Service, results *appresults.Service, logger *slog.Logger) *Handler {
	return &Handler{
		brackets: brackets,
		teams:    teams,
		results:  results,
		logger:   logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The service has no warm-up phase:
// bracket state is re-derived from tokens on demand, so ready equals healthy.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Teams returns the playoff field, optionally filtered by conference.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	conference := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("conference")))
	switch conference {
	case "":
		writeJSON(w, nethttp.StatusOK, map[string]any{"teams": h.teams.Teams()}, h.logger)
	case string(teams.AFC), string(teams.NFC):
		field := h.teams.ByConference(teams.Conference(conference))
		writeJSON(w, nethttp.StatusOK, map[string]any{"teams": field}, h.logger)
	default:
		writeError(w, r, nethttp.StatusBadRequest, "unknown conference (expected AFC or NFC)", h.logger)
	}
}

type createBracketRequest struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

// CreateBracket saves a fresh bracket for an owner.
func (h *Handler) CreateBracket(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)

	var req createBracketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid json body", logger)
		return
	}
	if strings.TrimSpace(req.Owner) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "owner is required", logger)
		return
	}

	b, err := h.brackets.Create(r.Context(), req.Name, req.Owner)
	if err != nil {
		h.writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusCreated, b, logger)
}

// ListBrackets returns every saved bracket with state materialized.
func (h *Handler) ListBrackets(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	bs, err := h.brackets.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"brackets": bs}, logger)
}

// GetBracket returns one saved bracket.
func (h *Handler) GetBracket(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	b, err := h.brackets.Get(r.Context(), chi.URLParam(r, "bracketID"))
	if err != nil {
		h.writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, b, logger)
}

// DeleteBracket removes a saved bracket.
func (h *Handler) DeleteBracket(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	if err := h.brackets.Delete(r.Context(), chi.URLParam(r, "bracketID")); err != nil {
		h.writeServiceError(w, r, err, logger)
		return
	}
	w.WriteHeader(nethttp.StatusNoContent)
}

type pickRequest struct {
	MatchupID string `json:"matchupId"`
	TeamID    string `json:"teamId"`
}

// Pick records a winner on a matchup and returns the updated bracket.
func (h *Handler) Pick(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)

	var req pickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid json body", logger)
		return
	}
	if req.MatchupID == "" || req.TeamID == "" {
		writeError(w, r, nethttp.StatusBadRequest, "matchupId and teamId are required", logger)
		return
	}

	b, err := h.brackets.Pick(r.Context(), chi.URLParam(r, "bracketID"), req.MatchupID, req.TeamID)
	if err != nil {
		h.writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, b, logger)
}

// ClearPick removes the winner from a matchup and returns the updated bracket.
func (h *Handler) ClearPick(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	b, err := h.brackets.ClearPick(r.Context(), chi.URLParam(r, "bracketID"), chi.URLParam(r, "matchupID"))
	if err != nil {
		h.writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, b, logger)
}

// Locks reports the lock state of every matchup in a bracket.
func (h *Handler) Locks(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	locks, err := h.brackets.Locks(r.Context(), chi.URLParam(r, "bracketID"))
	if err != nil {
		h.writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"locks": locks}, logger)
}

// Share returns the share token and URL for a saved bracket.
func (h *Handler) Share(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	id := chi.URLParam(r, "bracketID")

	b, err := h.brackets.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err, logger)
		return
	}
	url, err := h.brackets.ShareURL(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"token": b.Token, "url": url}, logger)
}

// Preview materializes a share token without saving anything. Malformed
// tokens are a 400; callers fall back to a fresh bracket.
func (h *Handler) Preview(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)

	token := strings.TrimSpace(r.URL.Query().Get("b"))
	if token == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing token parameter b", logger)
		return
	}
	owner := r.URL.Query().Get("name")

	b, err := h.brackets.Preview(token, owner)
	if err != nil {
		h.writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, b, logger)
}

type importRequest struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

// ImportBracket persists a bracket received as a share token.
func (h *Handler) ImportBracket(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)

	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid json body", logger)
		return
	}
	if strings.TrimSpace(req.Token) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "token is required", logger)
		return
	}

	b, err := h.brackets.Import(r.Context(), req.Token, req.Name, req.Owner)
	if err != nil {
		h.writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusCreated, b, logger)
}

// Results returns the cached live results snapshot.
func (h *Handler) Results(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.results.Results(), h.logger)
}

// writeServiceError maps sentinel errors from the services onto statuses:
// missing records and unknown matchups are 404, rejected picks are 409,
// malformed tokens are 400, everything else is a 500.
func (h *Handler) writeServiceError(w nethttp.ResponseWriter, r *nethttp.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, r, nethttp.StatusNotFound, "bracket not found", logger)
	case errors.Is(err, bracket.ErrUnknownMatchup):
		writeError(w, r, nethttp.StatusNotFound, "unknown matchup", logger)
	case errors.Is(err, bracket.ErrMatchupNotReady):
		writeError(w, r, nethttp.StatusConflict, "matchup teams are not yet determined", logger)
	case errors.Is(err, bracket.ErrTeamNotInMatchup):
		writeError(w, r, nethttp.StatusConflict, "team is not in this matchup", logger)
	case errors.Is(err, appbrackets.ErrMatchupLocked):
		writeError(w, r, nethttp.StatusConflict, "matchup is locked: game has started", logger)
	case errors.Is(err, codec.ErrInvalidToken):
		writeError(w, r, nethttp.StatusBadRequest, "invalid bracket token", logger)
	default:
		if logger != nil {
			logger.Error("request failed", "err", err)
		}
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", logger)
	}
}
