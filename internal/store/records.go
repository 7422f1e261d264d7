package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no saved bracket has the requested ID.
var ErrNotFound = errors.New("bracket not found")

// SavedBracket is the persisted bracket record. Picks travel as the codec
// token, never as materialized state, so a stored record can never disagree
// with what the engine derives from it.
type SavedBracket struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
