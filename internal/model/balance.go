package model

// BalanceResponse represents response for GET /balance
type BalanceResponse struct {
	Address string `json:"address"`
	RTC     string `json:"rtc"`
	Rate    string `json:"rate"`
	USD     string `json:"rtc_amount_in_usd"`
}

// RateResponse represents response for GET /rate
type RateResponse struct {
	RTCUSD string `json:"rtc_usd"`
}
