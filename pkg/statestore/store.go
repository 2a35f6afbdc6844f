// Package statestore persists carousel positions between runs.
//
// A position records which slide of a deck was selected when the host last
// saw it. The package defines the [Store] interface with implementations for
// different deployments:
//   - memory: in-process storage for tests and throwaway sessions
//   - file: JSON files under a directory, for CLI usage
//   - redis: Redis-backed storage for shared or remote control setups
//
// Stores are consulted by the resume plugin
// ([github.com/snapdeck/snapdeck/pkg/carousel/resume]) and by the HTTP
// control surface. Persistence failures are never allowed to disturb the
// carousel engine; callers log and move on.
package statestore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no position is stored for a deck.
var ErrNotFound = errors.New("position not found")

// Position records the selected slide of one deck.
type Position struct {
	Deck    string    `json:"deck"`
	Index   int       `json:"index"`
	SavedAt time.Time `json:"saved_at"`
}

// Store is the interface for position storage backends.
type Store interface {
	// Get retrieves the stored position for a deck.
	// Returns ErrNotFound when nothing is stored.
	Get(ctx context.Context, deck string) (Position, error)

	// Set stores a position, replacing any previous one for the same deck.
	Set(ctx context.Context, pos Position) error

	// Delete removes the stored position for a deck. Deleting a missing
	// position is not an error.
	Delete(ctx context.Context, deck string) error

	// Close releases backend resources.
	Close() error
}
