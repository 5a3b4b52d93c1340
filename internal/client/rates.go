package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/slah225682-coder/bottube/internal/config"
)

// RatesClient is a client for the platform's public RTC rate endpoint
type RatesClient struct {
	baseURL string
	client  *http.Client
}

// NewRatesClient creates a new rates client
func NewRatesClient() *RatesClient {
	return &RatesClient{
		baseURL: config.GetLedgerURL(),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// rateResponse response from the rate endpoint
type rateResponse struct {
	RTCPriceUSD float64 `json:"rtc_price_usd"`
}

// GetRTCtoUSDrate gets RTC to USD exchange rate
func (c *RatesClient) GetRTCtoUSDrate() (string, error) {
	url := fmt.Sprintf("%s/api/rtc/rate", c.baseURL)

	resp, err := c.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to get rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to get rate: status %d", resp.StatusCode)
	}

	var rateResp rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&rateResp); err != nil {
		return "", fmt.Errorf("failed to decode rate: %w", err)
	}

	rate := strconv.FormatFloat(rateResp.RTCPriceUSD, 'f', 4, 64)
	return rate, nil
}
