package wallet

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	// AddressPrefix marks RTC account addresses.
	AddressPrefix = "RTC"

	// addressHexLen is the number of hex characters after the prefix
	// (first 20 bytes of sha256 over the public key).
	addressHexLen = 40
)

// DeriveAddress derives the account address for a public key:
// "RTC" + lowercase-hex(sha256(publicKey))[:40]. Pure and total; any holder
// of the public key recomputes the same address without secret material.
func DeriveAddress(publicKey []byte) string {
	sum := sha256.Sum256(publicKey)
	return AddressPrefix + hex.EncodeToString(sum[:])[:addressHexLen]
}

// IsValidAddress reports whether addr has the RTC address shape: the prefix
// followed by exactly 40 lowercase hex characters.
func IsValidAddress(addr string) bool {
	if !strings.HasPrefix(addr, AddressPrefix) {
		return false
	}
	rest := addr[len(AddressPrefix):]
	if len(rest) != addressHexLen {
		return false
	}
	for _, c := range rest {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
