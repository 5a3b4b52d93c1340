package wallet

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

const (
	// SeedLen is the exact seed length in bytes. Anything else is rejected,
	// never padded or truncated.
	SeedLen = 32

	// PublicKeyLen is the Ed25519 public key length in bytes.
	PublicKeyLen = 32

	// SignatureLen is the detached Ed25519 signature length in bytes.
	SignatureLen = 64
)

// Ed25519Provider is the narrow capability interface over the signature
// primitive. Any conformant implementation is interchangeable.
type Ed25519Provider interface {
	// KeypairFromSeed derives the public key and expanded private key from a
	// 32-byte seed.
	KeypairFromSeed(seed []byte) (pub []byte, priv []byte, err error)

	// SignDetached produces a 64-byte detached signature over message.
	SignDetached(priv []byte, message []byte) ([]byte, error)
}

// stdEd25519 backs Ed25519Provider with crypto/ed25519.
type stdEd25519 struct{}

func (stdEd25519) KeypairFromSeed(seed []byte) ([]byte, []byte, error) {
	if len(seed) != SeedLen {
		return nil, nil, &InvalidSeedError{Message: fmt.Sprintf("seed must be %d bytes, got %d", SeedLen, len(seed))}
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := make([]byte, PublicKeyLen)
	copy(pub, priv[ed25519.SeedSize:])
	return pub, priv, nil
}

func (stdEd25519) SignDetached(priv []byte, message []byte) ([]byte, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(priv))
	}
	return ed25519.Sign(ed25519.PrivateKey(priv), message), nil
}

// DefaultProvider is the stdlib-backed Ed25519 provider.
var DefaultProvider Ed25519Provider = stdEd25519{}

// KeyPair holds the keys derived from a seed. The private key never leaves
// the wallet except through Sign; callers share only the public half.
type KeyPair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// PublicKeyHex returns the public key as lowercase hex.
func (kp *KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(kp.PublicKey)
}

// Address returns the account address derived from the public key.
func (kp *KeyPair) Address() string {
	return DeriveAddress(kp.PublicKey)
}

// NewSeed draws a fresh 32-byte seed from the system CSPRNG.
func NewSeed() ([]byte, error) {
	seed := make([]byte, SeedLen)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, fmt.Errorf("failed to generate seed: %w", err)
	}
	return seed, nil
}

// DecodeSeedHex decodes a caller-supplied seed. Hex is case-insensitive and
// an optional 0x prefix is accepted. Malformed hex or a decoded length other
// than 32 bytes yields InvalidSeedError.
func DecodeSeedHex(seedHex string) ([]byte, error) {
	s := strings.TrimSpace(seedHex)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	seed, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return nil, &InvalidSeedError{Message: fmt.Sprintf("malformed seed hex: %v", err)}
	}
	if len(seed) != SeedLen {
		return nil, &InvalidSeedError{Message: fmt.Sprintf("seed must be %d bytes, got %d", SeedLen, len(seed))}
	}
	return seed, nil
}

// EncodeSeedHex returns the normalized storage form of a seed: 64 lowercase
// hex characters.
func EncodeSeedHex(seed []byte) string {
	return hex.EncodeToString(seed)
}

// DeriveKeyPair derives the keypair for a seed using the given provider.
// A nil provider yields CryptoUnavailableError.
func DeriveKeyPair(seed []byte, provider Ed25519Provider) (*KeyPair, error) {
	if provider == nil {
		return nil, &CryptoUnavailableError{Message: "no Ed25519 provider available"}
	}
	pub, priv, err := provider.KeypairFromSeed(seed)
	if err != nil {
		return nil, err
	}
	return &KeyPair{PublicKey: pub, PrivateKey: priv}, nil
}
