package wallet

import "errors"

// InvalidSeedError is returned when an imported seed is malformed hex or is
// not exactly 32 bytes long.
type InvalidSeedError struct {
	Message string
}

func (e *InvalidSeedError) Error() string {
	return e.Message
}

// IsInvalidSeedError checks if error is InvalidSeedError
func IsInvalidSeedError(err error) bool {
	var target *InvalidSeedError
	return errors.As(err, &target)
}

// NoWalletError is returned when an operation that needs an unlocked wallet
// runs while no seed is stored.
type NoWalletError struct {
	Message string
}

func (e *NoWalletError) Error() string {
	return e.Message
}

// IsNoWalletError checks if error is NoWalletError
func IsNoWalletError(err error) bool {
	var target *NoWalletError
	return errors.As(err, &target)
}

// InvalidNonceError is returned when a nonce is not representable as a
// non-negative integer.
type InvalidNonceError struct {
	Message string
}

func (e *InvalidNonceError) Error() string {
	return e.Message
}

// IsInvalidNonceError checks if error is InvalidNonceError
func IsInvalidNonceError(err error) bool {
	var target *InvalidNonceError
	return errors.As(err, &target)
}

// NonFiniteAmountError is returned when a transfer amount is NaN or infinite.
type NonFiniteAmountError struct {
	Message string
}

func (e *NonFiniteAmountError) Error() string {
	return e.Message
}

// IsNonFiniteAmountError checks if error is NonFiniteAmountError
func IsNonFiniteAmountError(err error) bool {
	var target *NonFiniteAmountError
	return errors.As(err, &target)
}

// CryptoUnavailableError is returned when no Ed25519 provider is wired in.
type CryptoUnavailableError struct {
	Message string
}

func (e *CryptoUnavailableError) Error() string {
	return e.Message
}

// IsCryptoUnavailableError checks if error is CryptoUnavailableError
func IsCryptoUnavailableError(err error) bool {
	var target *CryptoUnavailableError
	return errors.As(err, &target)
}
