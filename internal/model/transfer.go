package model

import (
	"encoding/json"
	"fmt"
)

// Nonce accepts a JSON number or a numeric string, preserving the raw text
// so the handler can reject non-integers with the proper error code instead
// of a generic decode failure.
type Nonce string

// UnmarshalJSON implements json.Unmarshaler.
func (n *Nonce) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid nonce: %w", err)
		}
		*n = Nonce(s)
		return nil
	}
	*n = Nonce(data)
	return nil
}

// IsSet reports whether a nonce was supplied at all.
func (n Nonce) IsSet() bool {
	return n != "" && n != "null"
}

// TransferRequest represents request for POST /transfer/sign and /transfer/send
type TransferRequest struct {
	To     string  `json:"to" binding:"required"`
	Amount float64 `json:"amount"`
	Memo   string  `json:"memo"`
	Nonce  Nonce   `json:"nonce"`
}

// SendResponse represents response for POST /transfer/send
type SendResponse struct {
	TxID string `json:"txId"`
}
