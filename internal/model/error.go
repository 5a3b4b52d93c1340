package model

// ErrorResponse is the consistent JSON structure for all API error responses.
// Code carries the machine-readable error taxonomy name when one applies.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
