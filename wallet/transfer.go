package wallet

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// SignedPayload is the bundle handed to the transport layer. Nonce is echoed
// back as an integer here even though the canonical message quotes it; the
// canonical message is retained verbatim so the receiving ledger (and anyone
// debugging a rejected transfer) can verify the signature against the exact
// signed bytes.
type SignedPayload struct {
	FromAddress      string `json:"from_address"`
	PublicKey        string `json:"public_key"`
	Signature        string `json:"signature"`
	Nonce            int64  `json:"nonce"`
	Memo             string `json:"memo"`
	CanonicalMessage string `json:"canonical_message"`
}

// TransferBuilder assembles signed transfer payloads from a keypair and a
// transfer intent. The from address is always the signer's own; callers never
// supply it.
type TransferBuilder struct {
	signer *Signer
}

// NewTransferBuilder creates a TransferBuilder backed by the default
// Ed25519 provider.
func NewTransferBuilder() *TransferBuilder {
	return &TransferBuilder{signer: NewSigner()}
}

// NewTransferBuilderWithProvider creates a TransferBuilder with an explicit
// Ed25519 provider.
func NewTransferBuilderWithProvider(provider Ed25519Provider) *TransferBuilder {
	return &TransferBuilder{signer: &Signer{Provider: provider}}
}

// Build validates the transfer intent, canonicalizes it and signs it.
// A failed Build never returns a partially-signed payload.
func (b *TransferBuilder) Build(kp *KeyPair, to string, amount float64, memo string, nonce int64) (*SignedPayload, error) {
	if kp == nil {
		return nil, &NoWalletError{Message: "no wallet: generate or import a seed first"}
	}
	if nonce < 0 {
		return nil, &InvalidNonceError{Message: fmt.Sprintf("nonce must be non-negative, got %d", nonce)}
	}

	from := kp.Address()
	message, err := EncodeTransfer(from, to, amount, memo, nonce)
	if err != nil {
		return nil, err
	}

	sig, err := b.signer.Sign(kp.PrivateKey, message)
	if err != nil {
		return nil, err
	}

	return &SignedPayload{
		FromAddress:      from,
		PublicKey:        kp.PublicKeyHex(),
		Signature:        hex.EncodeToString(sig),
		Nonce:            nonce,
		Memo:             memo,
		CanonicalMessage: string(message),
	}, nil
}

// BuildTransfer pulls the active keypair from the store and builds a signed
// payload for it. Returns NoWalletError while no seed is stored.
func (s *Store) BuildTransfer(to string, amount float64, memo string, nonce int64) (*SignedPayload, error) {
	kp, err := s.Get()
	if err != nil {
		return nil, err
	}
	if kp == nil {
		return nil, &NoWalletError{Message: "no wallet: generate or import a seed first"}
	}
	builder := NewTransferBuilderWithProvider(s.provider)
	return builder.Build(kp, to, amount, memo, nonce)
}

// ParseNonce parses a caller-supplied nonce string as a non-negative integer.
func ParseNonce(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &InvalidNonceError{Message: fmt.Sprintf("nonce must be a non-negative integer, got %q", s)}
	}
	if n < 0 {
		return 0, &InvalidNonceError{Message: fmt.Sprintf("nonce must be non-negative, got %d", n)}
	}
	return n, nil
}
