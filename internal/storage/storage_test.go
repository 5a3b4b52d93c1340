package storage

import (
	"path/filepath"
	"testing"

	"github.com/slah225682-coder/bottube/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeedHex = "0101010101010101010101010101010101010101010101010101010101010101"

func TestMemoryStoreLifecycle(t *testing.T) {
	s := NewMemoryStore()

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Save(testSeedHex))
	got, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, testSeedHex, got)

	require.NoError(t, s.Clear())
	got, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStoreLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping scrypt-heavy file store test in short mode")
	}

	path := filepath.Join(t.TempDir(), "wallet.rwt")
	password := []byte("correct horse")
	s := NewFileStore(path, password)

	// Missing file means no seed, not an error.
	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Save(testSeedHex))

	got, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, testSeedHex, got)

	// Address is readable without the password and matches the seed.
	seed, err := wallet.DecodeSeedHex(testSeedHex)
	require.NoError(t, err)
	kp, err := wallet.DeriveKeyPair(seed, wallet.DefaultProvider)
	require.NoError(t, err)
	addr, err := s.Address()
	require.NoError(t, err)
	assert.Equal(t, kp.Address(), addr)

	// Wrong password fails to decrypt.
	_, err = NewFileStore(path, []byte("wrong")).Load()
	require.Error(t, err)

	require.NoError(t, s.Clear())
	got, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	// Clearing twice is fine.
	require.NoError(t, s.Clear())
}

func TestFileStoreRejectsBadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.rwt")
	s := NewFileStore(path, []byte("pw"))

	err := s.Save("definitely not hex")
	require.Error(t, err)
	assert.True(t, wallet.IsInvalidSeedError(err))
}
