package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/slah225682-coder/bottube/internal/client"
	"github.com/slah225682-coder/bottube/internal/model"
	"github.com/slah225682-coder/bottube/wallet"
)

// TransferHandler serves the transfer signing and submission endpoints
type TransferHandler struct {
	store           *wallet.Store
	ledger          *client.LedgerClient
	rates           *client.RatesClient
	cooldownMinutes int

	sendMu       sync.Mutex
	lastSendTime time.Time
}

// NewTransferHandler creates a new TransferHandler. The ledger and rates
// clients may be nil when the service runs offline (sign-only mode).
func NewTransferHandler(store *wallet.Store, ledger *client.LedgerClient, rates *client.RatesClient, cooldownMinutes int) *TransferHandler {
	return &TransferHandler{
		store:           store,
		ledger:          ledger,
		rates:           rates,
		cooldownMinutes: cooldownMinutes,
	}
}

// Sign handles POST /transfer/sign
// @Summary      Sign a transfer
// @Description  Builds the canonical transfer message, signs it and returns the signed payload without submitting it
// @Tags         transfer
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Transfer intent"
// @Success      200      {object}  wallet.SignedPayload
// @Failure      400      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /transfer/sign [post]
func (h *TransferHandler) Sign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	if req.To == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "to address is required"})
		return
	}
	if !req.Nonce.IsSet() {
		writeError(w, &wallet.InvalidNonceError{Message: "nonce is required"})
		return
	}

	nonce, err := wallet.ParseNonce(string(req.Nonce))
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.store.BuildTransfer(req.To, req.Amount, req.Memo, nonce)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payload)
}

// Send handles POST /transfer/send
// @Summary      Sign and submit a transfer
// @Description  Signs the transfer and submits it to the RTC ledger; fetches the next nonce when the request omits one
// @Tags         transfer
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransferRequest  true  "Transfer intent"
// @Success      200      {object}  model.SendResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /transfer/send [post]
func (h *TransferHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	if h.ledger == nil {
		writeJSON(w, http.StatusServiceUnavailable, model.ErrorResponse{Error: "ledger not configured"})
		return
	}

	var req model.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	// The ledger would reject an unknown recipient anyway; failing here keeps
	// the cooldown slot unspent.
	if !wallet.IsValidAddress(req.To) {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid RTC address"})
		return
	}

	h.sendMu.Lock()
	defer h.sendMu.Unlock()

	if !h.lastSendTime.IsZero() {
		cooldownDuration := time.Duration(h.cooldownMinutes) * time.Minute
		if time.Since(h.lastSendTime) < cooldownDuration {
			remaining := cooldownDuration - time.Since(h.lastSendTime)
			writeJSON(w, http.StatusTooManyRequests, model.ErrorResponse{
				Error: fmt.Sprintf("cooldown active, please wait %v", remaining.Round(time.Second)),
			})
			return
		}
	}

	kp, err := h.store.Get()
	if err != nil {
		writeError(w, err)
		return
	}
	if kp == nil {
		writeError(w, &wallet.NoWalletError{Message: "no wallet: generate or import a seed first"})
		return
	}

	var nonce int64
	if req.Nonce.IsSet() {
		nonce, err = wallet.ParseNonce(string(req.Nonce))
		if err != nil {
			writeError(w, err)
			return
		}
	} else {
		nonce, err = h.ledger.GetNonce(kp.Address())
		if err != nil {
			writeJSON(w, http.StatusBadGateway, model.ErrorResponse{Error: err.Error()})
			return
		}
	}

	payload, err := h.store.BuildTransfer(req.To, req.Amount, req.Memo, nonce)
	if err != nil {
		writeError(w, err)
		return
	}

	txID, err := h.ledger.SubmitTransfer(payload)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{Error: err.Error()})
		return
	}

	// Save transaction time
	h.lastSendTime = time.Now()

	writeJSON(w, http.StatusOK, model.SendResponse{TxID: txID})
}

// Balance handles GET /balance
// @Summary      Get wallet balance (USD = RTC * rate)
// @Description  Gets the RTC ledger balance for the active wallet with the RTC/USD rate
// @Tags         transfer
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /balance [get]
func (h *TransferHandler) Balance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	if h.ledger == nil || h.rates == nil {
		writeJSON(w, http.StatusServiceUnavailable, model.ErrorResponse{Error: "ledger not configured"})
		return
	}

	kp, err := h.store.Get()
	if err != nil {
		writeError(w, err)
		return
	}
	if kp == nil {
		writeError(w, &wallet.NoWalletError{Message: "no wallet: generate or import a seed first"})
		return
	}
	address := kp.Address()

	balance, err := h.ledger.GetBalance(address)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{Error: err.Error()})
		return
	}

	rate, err := h.rates.GetRTCtoUSDrate()
	if err != nil {
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{Error: fmt.Sprintf("failed to get rate: %v", err)})
		return
	}

	// Use float only for display, not for critical operations
	rateFloat, _ := strconv.ParseFloat(rate, 64)
	usd := fmt.Sprintf("%.2f", balance*rateFloat)

	writeJSON(w, http.StatusOK, model.BalanceResponse{
		Address: address,
		RTC:     strconv.FormatFloat(balance, 'f', -1, 64),
		Rate:    rate,
		USD:     usd,
	})
}

// Rate handles GET /rate
// @Summary      Get RTC/USD rate
// @Description  Gets the current RTC to USD exchange rate
// @Tags         transfer
// @Produce      json
// @Success      200  {object}  model.RateResponse
// @Router       /rate [get]
func (h *TransferHandler) Rate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	if h.rates == nil {
		writeJSON(w, http.StatusServiceUnavailable, model.ErrorResponse{Error: "rates not configured"})
		return
	}

	rate, err := h.rates.GetRTCtoUSDrate()
	if err != nil {
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, model.RateResponse{RTCUSD: rate})
}
