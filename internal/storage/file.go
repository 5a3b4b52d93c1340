package storage

import (
	"fmt"
	"os"
	"time"

	"github.com/slah225682-coder/bottube/internal/common"
	"github.com/slah225682-coder/bottube/internal/crypto"
	"github.com/slah225682-coder/bottube/internal/model"
	"github.com/slah225682-coder/bottube/wallet"
)

const networkRTC = "rtc"

// FileStore persists the seed as an encrypted .rwt file. The seed hex is
// sealed with scrypt + AES-GCM under the wallet password; the address and
// its QR code stay readable without it.
type FileStore struct {
	path     string
	password []byte
}

// NewFileStore creates a file-backed seed store. The password is copied;
// the caller may zero its own slice after the call.
func NewFileStore(path string, password []byte) *FileStore {
	pw := make([]byte, len(password))
	copy(pw, password)
	return &FileStore{path: path, password: pw}
}

// Load decrypts and returns the stored seed hex, or "" when no wallet file
// exists yet.
func (s *FileStore) Load() (string, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return "", nil
	}

	_, seedData, err := crypto.DecryptSeed(s.path, s.password)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt wallet file: %w", err)
	}
	return seedData.SeedHex, nil
}

// Save encrypts seedHex into a fresh .rwt envelope, replacing any previous
// wallet file. The envelope carries the derived address and its QR code so
// they remain readable without the password.
func (s *FileStore) Save(seedHex string) error {
	seed, err := wallet.DecodeSeedHex(seedHex)
	if err != nil {
		return err
	}
	defer clear(seed)

	kp, err := wallet.DeriveKeyPair(seed, wallet.DefaultProvider)
	if err != nil {
		return err
	}
	address := kp.Address()

	qrCode, err := common.GenerateQRCode(address)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	seedData := &model.SeedData{
		SeedHex:   seedHex,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if err := crypto.EncryptSeed(s.path, networkRTC, address, qrCode, seedData, s.password); err != nil {
		return fmt.Errorf("failed to encrypt wallet file: %w", err)
	}
	return nil
}

// Clear removes the wallet file. A missing file is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove wallet file: %w", err)
	}
	return nil
}

// Address reads the derived address from the envelope without the password.
func (s *FileStore) Address() (string, error) {
	return crypto.ReadWalletAddress(s.path)
}
