// Package brackets is the application service for saved brackets. It owns
// the persistence records, re-materializes bracket state from share tokens,
// applies picks through the engine, and layers live-game locking on top.
package brackets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avatarneil/bracket.build/internal/codec"
	"github.com/avatarneil/bracket.build/internal/domain/bracket"
	"github.com/avatarneil/bracket.build/internal/domain/results"
	"github.com/avatarneil/bracket.build/internal/logging"
	"github.com/avatarneil/bracket.build/internal/metrics"
	"github.com/avatarneil/bracket.build/internal/share"
	"github.com/avatarneil/bracket.build/internal/store"
)

// ErrMatchupLocked is returned when a pick targets a matchup whose real game
// has already started.
var ErrMatchupLocked = errors.New("matchup locked")

// Store defines the persistence contract the bracket service needs.
type Store interface {
	Save(ctx context.Context, b store.SavedBracket) error
	Get(ctx context.Context, id string) (store.SavedBracket, error)
	List(ctx context.Context) ([]store.SavedBracket, error)
	Delete(ctx context.Context, id string) error
}

// Archive receives write-behind copies of saved brackets. Failures are
// logged, never surfaced; the archive is a recovery aid, not a store.
type Archive interface {
	WriteBracket(b store.SavedBracket) error
	RemoveBracket(id string) error
}

// ResultSource provides the live result for a matchup, if one is known.
type ResultSource interface {
	ByMatchup(matchupID string) (results.Result, bool)
}

// Bracket is a stored bracket together with its materialized state.
type Bracket struct {
	ID        string        `json:"id,omitempty"`
	Name      string        `json:"name,omitempty"`
	Owner     string        `json:"owner,omitempty"`
	Token     string        `json:"token"`
	State     bracket.State `json:"state"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt,omitempty"`
}

// Lock reasons reported by Locks.
const (
	ReasonAwaitingTeams = "awaiting-teams"
	ReasonGameStarted   = "game-started"
)

// LockState reports whether a matchup currently accepts picks and why not.
type LockState struct {
	MatchupID string `json:"matchupId"`
	Locked    bool   `json:"locked"`
	Reason    string `json:"reason,omitempty"`
}

// Config carries the service dependencies.
type Config struct {
	Store    Store
	Archive  Archive
	Live     ResultSource
	Share    share.Builder
	Recorder *metrics.Recorder
	Logger   *slog.Logger
}

// Service coordinates bracket operations over the Store.
type Service struct {
	store    Store
	archive  Archive
	live     ResultSource
	share    share.Builder
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// NewService constructs a Service with the provided dependencies.
func NewService(cfg Config) *Service {
	return &Service{
		store:    cfg.Store,
		archive:  cfg.Archive,
		live:     cfg.Live,
		share:    cfg.Share,
		recorder: cfg.Recorder,
		logger:   cfg.Logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create saves a fresh bracket and returns it.
func (s *Service) Create(ctx context.Context, name, owner string) (Bracket, error) {
	state := bracket.New(owner)
	now := s.now().UTC()
	rec := store.SavedBracket{
		ID:        s.newID(),
		Owner:     owner,
		Name:      name,
		Token:     s.encode(state),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, rec); err != nil {
		return Bracket{}, err
	}
	s.archiveWrite(ctx, rec)
	return s.view(rec, state), nil
}

// List returns every saved bracket with its state materialized. Records whose
// token no longer decodes are skipped with a warning rather than failing the
// whole listing.
func (s *Service) List(ctx context.Context) ([]Bracket, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Bracket, 0, len(recs))
	for _, rec := range recs {
		state, err := s.decodeState(rec)
		if err != nil {
			s.logWarn(ctx, "skipping bracket with undecodable token", "bracket_id", rec.ID, "err", err)
			continue
		}
		out = append(out, s.view(rec, state))
	}
	return out, nil
}

// Get returns one saved bracket with its state materialized.
func (s *Service) Get(ctx context.Context, id string) (Bracket, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return Bracket{}, err
	}
	state, err := s.decodeState(rec)
	if err != nil {
		return Bracket{}, fmt.Errorf("bracket %s: %w", id, err)
	}
	return s.view(rec, state), nil
}

// Delete removes a saved bracket and its archived copy.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	if s.archive != nil {
		if err := s.archive.RemoveBracket(id); err != nil {
			s.logWarn(ctx, "archive removal failed", "bracket_id", id, "err", err)
		}
	}
	return nil
}

// Pick records a winner on a matchup, re-derives downstream rounds, and
// persists the new token. Picks against matchups whose real game has started
// are rejected.
func (s *Service) Pick(ctx context.Context, id, matchupID, teamID string) (Bracket, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return Bracket{}, err
	}
	state, err := s.decodeState(rec)
	if err != nil {
		return Bracket{}, fmt.Errorf("bracket %s: %w", id, err)
	}

	if err := s.rejectStarted(matchupID); err != nil {
		return Bracket{}, err
	}

	next, err := bracket.SelectWinner(state, matchupID, teamID)
	if err != nil {
		return Bracket{}, err
	}
	s.recorder.RecordPick()
	return s.persist(ctx, rec, next)
}

// ClearPick removes the winner from a matchup and cascades the clear through
// dependent rounds. Clears are refused once the real game has started.
func (s *Service) ClearPick(ctx context.Context, id, matchupID string) (Bracket, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return Bracket{}, err
	}
	state, err := s.decodeState(rec)
	if err != nil {
		return Bracket{}, fmt.Errorf("bracket %s: %w", id, err)
	}

	if err := s.rejectStarted(matchupID); err != nil {
		return Bracket{}, err
	}

	next, err := bracket.ClearWinner(state, matchupID)
	if err != nil {
		return Bracket{}, err
	}
	s.recorder.RecordClear()
	return s.persist(ctx, rec, next)
}

// Locks reports the lock state of all matchups in canonical order.
func (s *Service) Locks(ctx context.Context, id string) ([]LockState, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	matchups := b.State.Matchups()
	out := make([]LockState, 0, len(matchups))
	for _, m := range matchups {
		locked, reason := s.lockFor(m)
		out = append(out, LockState{MatchupID: m.ID, Locked: locked, Reason: reason})
	}
	return out, nil
}

// ShareURL builds the shareable URL for a saved bracket.
func (s *Service) ShareURL(ctx context.Context, id string) (string, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	url, err := s.share.URL(b.State)
	if err != nil {
		return "", err
	}
	s.recorder.RecordEncode()
	return url, nil
}

// Preview materializes a share token without persisting anything. The owner
// comes from the share URL's name parameter.
func (s *Service) Preview(token, owner string) (Bracket, error) {
	state, err := codec.DecodeState(token, owner)
	s.recorder.RecordDecode(err)
	if err != nil {
		return Bracket{}, err
	}
	return Bracket{
		Owner: owner,
		Token: s.encode(state),
		State: state,
	}, nil
}

// Import persists a bracket received as a share token. The stored token is
// the canonical re-encoding, so malformed but decodable input normalizes.
func (s *Service) Import(ctx context.Context, token, name, owner string) (Bracket, error) {
	state, err := codec.DecodeState(token, owner)
	s.recorder.RecordDecode(err)
	if err != nil {
		return Bracket{}, err
	}

	now := s.now().UTC()
	rec := store.SavedBracket{
		ID:        s.newID(),
		Owner:     owner,
		Name:      name,
		Token:     s.encode(state),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, rec); err != nil {
		return Bracket{}, err
	}
	s.archiveWrite(ctx, rec)
	return s.view(rec, state), nil
}

func (s *Service) persist(ctx context.Context, rec store.SavedBracket, state bracket.State) (Bracket, error) {
	rec.Token = s.encode(state)
	rec.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, rec); err != nil {
		return Bracket{}, err
	}
	s.archiveWrite(ctx, rec)
	return s.view(rec, state), nil
}

func (s *Service) decodeState(rec store.SavedBracket) (bracket.State, error) {
	state, err := codec.DecodeState(rec.Token, rec.Owner)
	s.recorder.RecordDecode(err)
	return state, err
}

func (s *Service) encode(state bracket.State) string {
	s.recorder.RecordEncode()
	return codec.Encode(state)
}

func (s *Service) view(rec store.SavedBracket, state bracket.State) Bracket {
	return Bracket{
		ID:        rec.ID,
		Name:      rec.Name,
		Owner:     rec.Owner,
		Token:     rec.Token,
		State:     state,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// rejectStarted refuses writes against a matchup whose real game is underway.
// Unknown matchup IDs fall through so the engine can report them.
func (s *Service) rejectStarted(matchupID string) error {
	if s.live == nil {
		return nil
	}
	if r, ok := s.live.ByMatchup(matchupID); ok && r.Started() {
		return fmt.Errorf("%w: %s", ErrMatchupLocked, matchupID)
	}
	return nil
}

func (s *Service) lockFor(m bracket.Matchup) (bool, string) {
	if !m.Ready() {
		return true, ReasonAwaitingTeams
	}
	if s.live != nil {
		if r, ok := s.live.ByMatchup(m.ID); ok && r.Started() {
			return true, ReasonGameStarted
		}
	}
	return false, ""
}

func (s *Service) archiveWrite(ctx context.Context, rec store.SavedBracket) {
	if s.archive == nil {
		return
	}
	if err := s.archive.WriteBracket(rec); err != nil {
		s.logWarn(ctx, "archive write failed", "bracket_id", rec.ID, "err", err)
	}
}

func (s *Service) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
