package wallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAddressGolden(t *testing.T) {
	// sha256 of 32 zero bytes is
	// 66687aadf862bd776c8fc18b8e9f8e20089714856ee233b3902a591d0d5f2925.
	addr := DeriveAddress(make([]byte, PublicKeyLen))
	assert.Equal(t, "RTC66687aadf862bd776c8fc18b8e9f8e2008971485", addr)
	assert.Len(t, addr, len(AddressPrefix)+40)
}

func TestDeriveAddressDeterministic(t *testing.T) {
	seed, err := DecodeSeedHex(testSeedHex)
	require.NoError(t, err)
	kp, err := DeriveKeyPair(seed, DefaultProvider)
	require.NoError(t, err)

	assert.Equal(t, DeriveAddress(kp.PublicKey), DeriveAddress(kp.PublicKey))
	assert.True(t, strings.HasPrefix(DeriveAddress(kp.PublicKey), AddressPrefix))
}

func TestIsValidAddress(t *testing.T) {
	valid := DeriveAddress(make([]byte, PublicKeyLen))
	assert.True(t, IsValidAddress(valid))

	invalid := []string{
		"",
		"RTC",
		"RTCxxxx",
		strings.ToUpper(valid), // uppercase hex is not canonical
		valid[:len(valid)-1],
		valid + "0",
		"BTC" + valid[3:],
		"RTC" + strings.Repeat("g", 40),
	}
	for _, a := range invalid {
		assert.False(t, IsValidAddress(a), "address %q", a)
	}
}
