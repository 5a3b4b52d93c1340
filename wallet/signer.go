package wallet

import (
	"crypto/ed25519"
	"fmt"
)

// Signer wraps the deterministic Ed25519 primitive. Signing is a pure
// function of (key, message): no per-signature randomness, so signatures are
// testable against fixed vectors and safe to recompute.
type Signer struct {
	Provider Ed25519Provider
}

// NewSigner creates a Signer backed by the default provider.
func NewSigner() *Signer {
	return &Signer{Provider: DefaultProvider}
}

// Sign produces a 64-byte detached signature over message.
func (s *Signer) Sign(privateKey []byte, message []byte) ([]byte, error) {
	if s == nil || s.Provider == nil {
		return nil, &CryptoUnavailableError{Message: "no Ed25519 provider available"}
	}
	sig, err := s.Provider.SignDetached(privateKey, message)
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}
	return sig, nil
}

// Verify reports whether sig is a valid signature over message for the given
// 32-byte public key. Used for test vectors and debugging signed payloads.
func Verify(publicKey []byte, message []byte, sig []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize || len(sig) != SignatureLen {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), message, sig)
}
