package statestore

import (
	"context"
	"sync"
)

// MemoryStore keeps positions in process memory. Intended for tests and
// single-run sessions; contents vanish with the process.
type MemoryStore struct {
	mu        sync.RWMutex
	positions map[string]Position
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{positions: make(map[string]Position)}
}

// Get retrieves the stored position for a deck.
func (s *MemoryStore) Get(_ context.Context, deck string) (Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.positions[deck]
	if !ok {
		return Position{}, ErrNotFound
	}
	return pos, nil
}

// Set stores a position.
func (s *MemoryStore) Set(_ context.Context, pos Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[pos.Deck] = pos
	return nil
}

// Delete removes a stored position.
func (s *MemoryStore) Delete(_ context.Context, deck string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.positions, deck)
	return nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
