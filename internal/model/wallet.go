package model

// WalletFile represents the .rwt envelope on disk. Only the seed hex is
// encrypted; address and QR stay readable without the password.
type WalletFile struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// SeedData represents decrypted wallet data
type SeedData struct {
	SeedHex   string `json:"seedHex"` // 64 lowercase hex chars, exactly 32 bytes
	CreatedAt string `json:"createdAt"`
}

// WalletResponse represents response for wallet generate/import/status
type WalletResponse struct {
	Address   string `json:"address"`
	PublicKey string `json:"public_key"`
	QR        string `json:"qr,omitempty"`
}

// ImportRequest represents request for POST /wallet/import
type ImportRequest struct {
	SeedHex string `json:"seedHex" binding:"required"`
}
