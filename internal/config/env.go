package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: Password is prompted at runtime and stored in memory - use GetWalletPasswordBytes()
type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	PayCooldown     int    `envconfig:"PAY_COOLDOWN_MINUTES" default:"4"`
	WalletFilePath  string `envconfig:"WALLET_FILE_PATH"`
	WalletEphemeral bool   `envconfig:"WALLET_EPHEMERAL" default:"false"`
	LedgerURL       string `envconfig:"LEDGER_URL" default:"https://bottube.ai"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if !cfg.WalletEphemeral && cfg.WalletFilePath == "" {
		return errors.New("WALLET_FILE_PATH is required unless WALLET_EPHEMERAL=true")
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetPayCooldown returns cooldown in minutes from configuration
func GetPayCooldown() int {
	return Get().PayCooldown
}

// GetWalletFilePath returns path to the .rwt file from configuration
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

// IsWalletEphemeral reports whether the seed lives only in process memory
func IsWalletEphemeral() bool {
	return Get().WalletEphemeral
}

// GetLedgerURL returns the RTC ledger base URL from configuration
func GetLedgerURL() string {
	return Get().LedgerURL
}

var passwordBytes []byte

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, "Enter wallet password: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("password cannot be empty")
	}

	passwordBytes = make([]byte, len(raw))
	copy(passwordBytes, raw)
	clear(raw)
	return nil
}

// GetWalletPasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetWalletPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
