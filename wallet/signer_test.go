package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyPair(t *testing.T) *KeyPair {
	t.Helper()
	seed, err := DecodeSeedHex(testSeedHex)
	require.NoError(t, err)
	kp, err := DeriveKeyPair(seed, DefaultProvider)
	require.NoError(t, err)
	return kp
}

func TestSignAndVerify(t *testing.T) {
	kp := testKeyPair(t)
	message := []byte(`{"amount":2.5,"from":"a","memo":"","nonce":"1","to":"b"}`)

	sig, err := NewSigner().Sign(kp.PrivateKey, message)
	require.NoError(t, err)
	assert.Len(t, sig, SignatureLen)
	assert.True(t, Verify(kp.PublicKey, message, sig))
}

func TestSignDeterministic(t *testing.T) {
	kp := testKeyPair(t)
	message := []byte("same bytes in, same bytes out")

	s := NewSigner()
	sig1, err := s.Sign(kp.PrivateKey, message)
	require.NoError(t, err)
	sig2, err := s.Sign(kp.PrivateKey, message)
	require.NoError(t, err)
	assert.Equal(t, sig1, sig2)
}

func TestVerifyRejectsMutatedMessage(t *testing.T) {
	kp := testKeyPair(t)
	message := []byte(`{"amount":1.0,"from":"a","memo":"","nonce":"0","to":"b"}`)

	sig, err := NewSigner().Sign(kp.PrivateKey, message)
	require.NoError(t, err)

	for i := range message {
		mutated := make([]byte, len(message))
		copy(mutated, message)
		mutated[i] ^= 0x01
		assert.False(t, Verify(kp.PublicKey, mutated, sig), "mutation at byte %d", i)
	}
}

func TestVerifyRejectsMutatedSignature(t *testing.T) {
	kp := testKeyPair(t)
	message := []byte("payload")

	sig, err := NewSigner().Sign(kp.PrivateKey, message)
	require.NoError(t, err)

	sig[0] ^= 0x01
	assert.False(t, Verify(kp.PublicKey, message, sig))
}

func TestVerifyBadLengths(t *testing.T) {
	kp := testKeyPair(t)
	assert.False(t, Verify(kp.PublicKey[:16], []byte("m"), make([]byte, SignatureLen)))
	assert.False(t, Verify(kp.PublicKey, []byte("m"), make([]byte, 10)))
}

func TestSignNoProvider(t *testing.T) {
	kp := testKeyPair(t)

	s := &Signer{}
	_, err := s.Sign(kp.PrivateKey, []byte("m"))
	require.Error(t, err)
	assert.True(t, IsCryptoUnavailableError(err))
}

func TestSignBadPrivateKey(t *testing.T) {
	_, err := NewSigner().Sign(make([]byte, 5), []byte("m"))
	require.Error(t, err)
}
