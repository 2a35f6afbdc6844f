package statestore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	snaperrors "github.com/snapdeck/snapdeck/pkg/errors"
)

// FileStore persists positions as JSON files in a directory, one file per
// deck. Suitable for CLI usage where a single user runs snapdeck locally.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store rooted at dir.
// The directory is created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, snaperrors.Wrap(snaperrors.ErrCodeStore, err, "creating state dir %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

// Get retrieves the stored position for a deck.
func (s *FileStore) Get(_ context.Context, deck string) (Position, error) {
	data, err := os.ReadFile(s.path(deck))
	if os.IsNotExist(err) {
		return Position{}, ErrNotFound
	}
	if err != nil {
		return Position{}, snaperrors.Wrap(snaperrors.ErrCodeStore, err, "reading position for %s", deck)
	}

	var pos Position
	if err := json.Unmarshal(data, &pos); err != nil {
		// Corrupt entry - treat as missing and clear it.
		_ = os.Remove(s.path(deck))
		return Position{}, ErrNotFound
	}
	return pos, nil
}

// Set stores a position.
func (s *FileStore) Set(_ context.Context, pos Position) error {
	data, err := json.Marshal(pos)
	if err != nil {
		return snaperrors.Wrap(snaperrors.ErrCodeStore, err, "encoding position for %s", pos.Deck)
	}
	if err := os.WriteFile(s.path(pos.Deck), data, 0644); err != nil {
		return snaperrors.Wrap(snaperrors.ErrCodeStore, err, "writing position for %s", pos.Deck)
	}
	return nil
}

// Delete removes a stored position.
func (s *FileStore) Delete(_ context.Context, deck string) error {
	err := os.Remove(s.path(deck))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return snaperrors.Wrap(snaperrors.ErrCodeStore, err, "deleting position for %s", deck)
	}
	return nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error {
	return nil
}

// path converts a deck identifier to a file path. Identifiers are hashed so
// arbitrary deck names cannot escape the state directory.
func (s *FileStore) path(deck string) string {
	sum := sha256.Sum256([]byte(deck))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:8])+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
