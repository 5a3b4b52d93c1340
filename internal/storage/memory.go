// Package storage provides the seed persistence backends behind the
// wallet.SeedStorage port: a process-local slot and an encrypted file.
package storage

import "sync"

// MemoryStore keeps the seed in a single in-process slot. Used for
// ephemeral wallets and as a test double for the file store.
type MemoryStore struct {
	mu      sync.Mutex
	seedHex string
}

// NewMemoryStore creates an empty in-memory seed slot.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored seed hex, or "" when the slot is empty.
func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seedHex, nil
}

// Save replaces the slot contents.
func (s *MemoryStore) Save(seedHex string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedHex = seedHex
	return nil
}

// Clear empties the slot.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedHex = ""
	return nil
}
