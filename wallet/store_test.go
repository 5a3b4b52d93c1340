package wallet

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slotStorage is a minimal SeedStorage double: one guarded slot, optional
// injected save failure.
type slotStorage struct {
	mu       sync.Mutex
	seedHex  string
	saveErr  error
	loadErr  error
	clearErr error
}

func (s *slotStorage) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seedHex, s.loadErr
}

func (s *slotStorage) Save(seedHex string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.seedHex = seedHex
	return nil
}

func (s *slotStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clearErr != nil {
		return s.clearErr
	}
	s.seedHex = ""
	return nil
}

func (s *slotStorage) stored() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seedHex
}

func TestStoreGenerateThenGet(t *testing.T) {
	store := NewStore(&slotStorage{})

	generated, err := store.Generate()
	require.NoError(t, err)

	got, err := store.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, generated.Address(), got.Address())
	assert.Equal(t, generated.PublicKey, got.PublicKey)
}

func TestStoreImportNormalizes(t *testing.T) {
	slot := &slotStorage{}
	store := NewStore(slot)

	imported, err := store.Import("0x" + strings.ToUpper(testSeedHex))
	require.NoError(t, err)
	assert.Equal(t, testSeedHex, slot.stored())

	got, err := store.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, imported.Address(), got.Address())
}

func TestStoreImportMatchesGenerate(t *testing.T) {
	slot := &slotStorage{}
	store := NewStore(slot)

	generated, err := store.Generate()
	require.NoError(t, err)
	seedHex := slot.stored()

	require.NoError(t, store.Clear())

	imported, err := store.Import(seedHex)
	require.NoError(t, err)
	assert.Equal(t, generated.Address(), imported.Address())
	assert.Equal(t, generated.PublicKey, imported.PublicKey)
}

func TestStoreImportInvalidSeed(t *testing.T) {
	store := NewStore(&slotStorage{})

	_, err := store.Import(strings.Repeat("00", 31))
	require.Error(t, err)
	assert.True(t, IsInvalidSeedError(err))
}

func TestStoreFailedImportKeepsOldSeed(t *testing.T) {
	slot := &slotStorage{}
	store := NewStore(slot)

	_, err := store.Import(testSeedHex)
	require.NoError(t, err)

	_, err = store.Import("not hex at all")
	require.Error(t, err)
	assert.Equal(t, testSeedHex, slot.stored())
}

func TestStoreGetLockedReturnsNil(t *testing.T) {
	store := NewStore(&slotStorage{})

	kp, err := store.Get()
	require.NoError(t, err)
	assert.Nil(t, kp)
}

func TestStoreClear(t *testing.T) {
	store := NewStore(&slotStorage{})

	_, err := store.Import(testSeedHex)
	require.NoError(t, err)
	require.NoError(t, store.Clear())

	kp, err := store.Get()
	require.NoError(t, err)
	assert.Nil(t, kp)
}

func TestStoreSaveFailureSurfaces(t *testing.T) {
	slot := &slotStorage{saveErr: errors.New("disk full")}
	store := NewStore(slot)

	_, err := store.Import(testSeedHex)
	require.Error(t, err)
	assert.Empty(t, slot.stored())
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore(&slotStorage{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, _ = store.Generate()
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Get()
		}()
		go func() {
			defer wg.Done()
			_ = store.Clear()
		}()
	}
	wg.Wait()

	// Whatever interleaving happened, the slot is either empty or holds a
	// valid seed.
	kp, err := store.Get()
	require.NoError(t, err)
	if kp != nil {
		assert.Len(t, kp.PublicKey, PublicKeyLen)
	}
}
