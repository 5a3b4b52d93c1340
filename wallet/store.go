package wallet

import (
	"fmt"
	"sync"
)

// SeedStorage is the persistence port for the single seed slot. Backends
// range from an in-memory slot to an encrypted file; the store never touches
// the medium directly.
type SeedStorage interface {
	// Load returns the stored seed as 64-char lowercase hex, or "" when no
	// seed is stored.
	Load() (string, error)

	// Save persists the seed hex, replacing any previous value.
	Save(seedHex string) error

	// Clear removes the stored seed. Clearing an empty slot is not an error.
	Clear() error
}

// Store owns the seed lifecycle over an injected SeedStorage port. All
// read-modify-write access to the slot is serialized: a concurrent clear or
// import must never leave a caller signing with a seed that is no longer the
// stored one.
type Store struct {
	mu       sync.Mutex
	storage  SeedStorage
	provider Ed25519Provider
}

// NewStore creates a Store over the given storage port using the default
// Ed25519 provider.
func NewStore(storage SeedStorage) *Store {
	return NewStoreWithProvider(storage, DefaultProvider)
}

// NewStoreWithProvider creates a Store with an explicit Ed25519 provider.
func NewStoreWithProvider(storage SeedStorage, provider Ed25519Provider) *Store {
	return &Store{storage: storage, provider: provider}
}

// Generate draws a fresh random seed, persists it and returns the derived
// keypair. Any previously stored seed is replaced.
func (s *Store) Generate() (*KeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	// Derive before persisting: storage is only written once the seed is
	// known to be usable.
	kp, err := DeriveKeyPair(seed, s.provider)
	if err != nil {
		return nil, err
	}

	if err := s.storage.Save(EncodeSeedHex(seed)); err != nil {
		return nil, fmt.Errorf("failed to persist seed: %w", err)
	}
	return kp, nil
}

// Import decodes a caller-supplied seed hex, persists the normalized
// lowercase form and returns the derived keypair.
func (s *Store) Import(seedHex string) (*KeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed, err := DecodeSeedHex(seedHex)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	kp, err := DeriveKeyPair(seed, s.provider)
	if err != nil {
		return nil, err
	}

	if err := s.storage.Save(EncodeSeedHex(seed)); err != nil {
		return nil, fmt.Errorf("failed to persist seed: %w", err)
	}
	return kp, nil
}

// Get re-derives the keypair from the stored seed. Returns (nil, nil) when
// no seed is stored. Callers must not assume object identity across calls.
func (s *Store) Get() (*KeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seedHex, err := s.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}
	if seedHex == "" {
		return nil, nil
	}

	seed, err := DecodeSeedHex(seedHex)
	if err != nil {
		return nil, fmt.Errorf("stored seed is corrupt: %w", err)
	}
	defer clear(seed)

	return DeriveKeyPair(seed, s.provider)
}

// Clear removes the stored seed. Subsequent Get calls return nil.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		return fmt.Errorf("failed to clear seed: %w", err)
	}
	return nil
}
