package handler

import (
	"encoding/json"
	"net/http"

	"github.com/slah225682-coder/bottube/internal/common"
	"github.com/slah225682-coder/bottube/internal/model"
	"github.com/slah225682-coder/bottube/wallet"
)

// WalletHandler serves the wallet lifecycle endpoints
type WalletHandler struct {
	store *wallet.Store
}

// NewWalletHandler creates a new WalletHandler over the given store
func NewWalletHandler(store *wallet.Store) *WalletHandler {
	return &WalletHandler{store: store}
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Draws a fresh random seed, persists it and returns the derived address
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.WalletResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	existing, err := h.store.Get()
	if err != nil {
		writeError(w, err)
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusConflict, model.ErrorResponse{Error: "wallet already exists, clear it first"})
		return
	}

	kp, err := h.store.Generate()
	if err != nil {
		writeError(w, err)
		return
	}

	writeWalletResponse(w, kp)
}

// Import handles POST /wallet/import
// @Summary      Import wallet seed
// @Description  Imports a 32-byte seed from hex (case-insensitive, optional 0x prefix)
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Seed hex"
// @Success      200      {object}  model.WalletResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/import [post]
func (h *WalletHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	kp, err := h.store.Import(req.SeedHex)
	if err != nil {
		writeError(w, err)
		return
	}

	writeWalletResponse(w, kp)
}

// Status handles GET /wallet
// @Summary      Get wallet status
// @Description  Returns the active wallet's address and public key, 404 while locked
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /wallet [get]
func (h *WalletHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	kp, err := h.store.Get()
	if err != nil {
		writeError(w, err)
		return
	}
	if kp == nil {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "no wallet", Code: "no_wallet"})
		return
	}

	writeWalletResponse(w, kp)
}

// Clear handles POST /wallet/clear
// @Summary      Clear wallet
// @Description  Removes the stored seed; subsequent operations require generate or import
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /wallet/clear [post]
func (h *WalletHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if err := h.store.Clear(); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// writeWalletResponse renders a keypair as the public wallet view with its
// address QR code. QR generation failure degrades to an empty QR field.
func writeWalletResponse(w http.ResponseWriter, kp *wallet.KeyPair) {
	address := kp.Address()
	qrCode, err := common.GenerateQRCode(address)
	if err != nil {
		qrCode = ""
	}

	writeJSON(w, http.StatusOK, model.WalletResponse{
		Address:   address,
		PublicKey: kp.PublicKeyHex(),
		QR:        qrCode,
	})
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the wallet error taxonomy to HTTP statuses and codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := ""
	switch {
	case wallet.IsInvalidSeedError(err):
		status, code = http.StatusBadRequest, "invalid_seed"
	case wallet.IsInvalidNonceError(err):
		status, code = http.StatusBadRequest, "invalid_nonce"
	case wallet.IsNonFiniteAmountError(err):
		status, code = http.StatusBadRequest, "non_finite_amount"
	case wallet.IsNoWalletError(err):
		status, code = http.StatusNotFound, "no_wallet"
	case wallet.IsCryptoUnavailableError(err):
		status, code = http.StatusInternalServerError, "crypto_unavailable"
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}
