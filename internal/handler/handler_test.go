package handler

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/slah225682-coder/bottube/internal/model"
	"github.com/slah225682-coder/bottube/internal/storage"
	"github.com/slah225682-coder/bottube/wallet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeedHex = "0101010101010101010101010101010101010101010101010101010101010101"

func newTestHandlers() (*WalletHandler, *TransferHandler, *wallet.Store) {
	store := wallet.NewStore(storage.NewMemoryStore())
	return NewWalletHandler(store), NewTransferHandler(store, nil, nil, 0), store
}

func doJSON(t *testing.T, h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestGenerateWallet(t *testing.T) {
	wh, _, _ := newTestHandlers()

	rec := doJSON(t, wh.Generate, http.MethodPost, "/wallet/generate", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.WalletResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, wallet.IsValidAddress(resp.Address))
	assert.Len(t, resp.PublicKey, 64)
	assert.NotEmpty(t, resp.QR)

	// Second generate conflicts while a wallet exists.
	rec = doJSON(t, wh.Generate, http.MethodPost, "/wallet/generate", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGenerateMethodNotAllowed(t *testing.T) {
	wh, _, _ := newTestHandlers()
	rec := doJSON(t, wh.Generate, http.MethodGet, "/wallet/generate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestImportWallet(t *testing.T) {
	wh, _, store := newTestHandlers()

	rec := doJSON(t, wh.Import, http.MethodPost, "/wallet/import",
		fmt.Sprintf(`{"seedHex":"%s"}`, testSeedHex))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.WalletResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	kp, err := store.Get()
	require.NoError(t, err)
	require.NotNil(t, kp)
	assert.Equal(t, kp.Address(), resp.Address)
}

func TestImportInvalidSeed(t *testing.T) {
	wh, _, _ := newTestHandlers()

	rec := doJSON(t, wh.Import, http.MethodPost, "/wallet/import",
		fmt.Sprintf(`{"seedHex":"%s"}`, strings.Repeat("00", 31)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_seed", resp.Code)
}

func TestStatusLocked(t *testing.T) {
	wh, _, _ := newTestHandlers()

	rec := doJSON(t, wh.Status, http.MethodGet, "/wallet", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "no_wallet", resp.Code)
}

func TestClearWallet(t *testing.T) {
	wh, _, store := newTestHandlers()

	_, err := store.Import(testSeedHex)
	require.NoError(t, err)

	rec := doJSON(t, wh.Clear, http.MethodPost, "/wallet/clear", "")
	require.Equal(t, http.StatusOK, rec.Code)

	kp, err := store.Get()
	require.NoError(t, err)
	assert.Nil(t, kp)
}

func TestSignTransfer(t *testing.T) {
	_, th, store := newTestHandlers()

	kp, err := store.Import(testSeedHex)
	require.NoError(t, err)

	rec := doJSON(t, th.Sign, http.MethodPost, "/transfer/sign",
		`{"to":"RTCxxxx","amount":2.5,"memo":"hi","nonce":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload wallet.SignedPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	wantMessage := fmt.Sprintf(`{"amount":2.5,"from":"%s","memo":"hi","nonce":"1","to":"RTCxxxx"}`, kp.Address())
	assert.Equal(t, wantMessage, payload.CanonicalMessage)
	assert.Equal(t, int64(1), payload.Nonce)

	sig, err := hex.DecodeString(payload.Signature)
	require.NoError(t, err)
	assert.True(t, wallet.Verify(kp.PublicKey, []byte(payload.CanonicalMessage), sig))
}

func TestSignTransferNonceAsString(t *testing.T) {
	_, th, store := newTestHandlers()

	_, err := store.Import(testSeedHex)
	require.NoError(t, err)

	rec := doJSON(t, th.Sign, http.MethodPost, "/transfer/sign",
		`{"to":"RTCxxxx","amount":1,"memo":"","nonce":"3"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload wallet.SignedPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, int64(3), payload.Nonce)
}

func TestSignTransferInvalidNonce(t *testing.T) {
	_, th, store := newTestHandlers()

	_, err := store.Import(testSeedHex)
	require.NoError(t, err)

	for _, body := range []string{
		`{"to":"RTCxxxx","amount":1,"nonce":"abc"}`,
		`{"to":"RTCxxxx","amount":1,"nonce":-1}`,
		`{"to":"RTCxxxx","amount":1}`,
	} {
		rec := doJSON(t, th.Sign, http.MethodPost, "/transfer/sign", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_nonce", resp.Code, body)
	}
}

func TestSignTransferNoWallet(t *testing.T) {
	_, th, _ := newTestHandlers()

	rec := doJSON(t, th.Sign, http.MethodPost, "/transfer/sign",
		`{"to":"RTCxxxx","amount":1,"nonce":0}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "no_wallet", resp.Code)
}

func TestSendWithoutLedger(t *testing.T) {
	_, th, store := newTestHandlers()

	kp, err := store.Import(testSeedHex)
	require.NoError(t, err)

	rec := doJSON(t, th.Send, http.MethodPost, "/transfer/send",
		fmt.Sprintf(`{"to":"%s","amount":1,"nonce":0}`, kp.Address()))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
