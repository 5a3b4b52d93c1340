package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/slah225682-coder/bottube/internal/config"
	"github.com/slah225682-coder/bottube/wallet"
)

// LedgerClient is a client for the remote RTC ledger service. The ledger
// independently rebuilds the canonical message from the submitted fields and
// verifies the signature; this client only moves bytes.
type LedgerClient struct {
	baseURL string
	client  *http.Client
}

// NewLedgerClient creates a new ledger client from configuration.
func NewLedgerClient() *LedgerClient {
	return &LedgerClient{
		baseURL: config.GetLedgerURL(),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type balanceResponse struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}

type nonceResponse struct {
	Address string `json:"address"`
	Nonce   int64  `json:"nonce"`
}

type submitResponse struct {
	TxID string `json:"tx_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetBalance gets the RTC balance for an address.
func (c *LedgerClient) GetBalance(address string) (float64, error) {
	u := fmt.Sprintf("%s/api/wallet/balance?address=%s", c.baseURL, url.QueryEscape(address))

	resp, err := c.client.Get(u)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, c.ledgerError("failed to get balance", resp)
	}

	var balResp balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&balResp); err != nil {
		return 0, fmt.Errorf("failed to decode balance: %w", err)
	}
	return balResp.Balance, nil
}

// GetNonce gets the next expected transfer nonce for an address.
func (c *LedgerClient) GetNonce(address string) (int64, error) {
	u := fmt.Sprintf("%s/api/wallet/nonce?address=%s", c.baseURL, url.QueryEscape(address))

	resp, err := c.client.Get(u)
	if err != nil {
		return 0, fmt.Errorf("failed to get nonce: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, c.ledgerError("failed to get nonce", resp)
	}

	var nonceResp nonceResponse
	if err := json.NewDecoder(resp.Body).Decode(&nonceResp); err != nil {
		return 0, fmt.Errorf("failed to decode nonce: %w", err)
	}
	return nonceResp.Nonce, nil
}

// SubmitTransfer posts a signed payload to the ledger and returns the
// transaction id. The ledger does not retry on our behalf; a rejected
// signature means resubmission with a fresh payload.
func (c *LedgerClient) SubmitTransfer(payload *wallet.SignedPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	u := fmt.Sprintf("%s/api/wallet/transfer", c.baseURL)
	resp, err := c.client.Post(u, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to submit transfer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.ledgerError("transfer rejected", resp)
	}

	var subResp submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&subResp); err != nil {
		return "", fmt.Errorf("failed to decode transfer response: %w", err)
	}
	return subResp.TxID, nil
}

// ledgerError surfaces the ledger's own error message when it returns one.
func (c *LedgerClient) ledgerError(context string, resp *http.Response) error {
	var errResp errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("%s: %s (status %d)", context, errResp.Error, resp.StatusCode)
	}
	return fmt.Errorf("%s: status %d", context, resp.StatusCode)
}
