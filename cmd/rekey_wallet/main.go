// One-off: decrypt a wallet file with its current password and re-encrypt it
// under a new one (fresh salt+nonce). The seed and address are unchanged.
// Usage: go run ./cmd/rekey_wallet -file wallet.rwt
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/slah225682-coder/bottube/internal/crypto"

	"golang.org/x/term"
)

func main() {
	filePath := flag.String("file", "", "path to the .rwt wallet file")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: rekey_wallet -file wallet.rwt")
		os.Exit(1)
	}

	oldPassword, err := readPassword("Current wallet password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer clear(oldPassword)

	rwtFile, seedData, err := crypto.DecryptSeed(*filePath, oldPassword)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decrypt failed:", err)
		os.Exit(1)
	}

	newPassword, err := readPassword("New wallet password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer clear(newPassword)

	confirm, err := readPassword("Repeat new password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer clear(confirm)

	if string(newPassword) != string(confirm) {
		fmt.Fprintln(os.Stderr, "passwords do not match")
		os.Exit(1)
	}

	if err := crypto.EncryptSeed(*filePath, rwtFile.Network, rwtFile.Address, rwtFile.QR, seedData, newPassword); err != nil {
		fmt.Fprintln(os.Stderr, "re-encrypt failed:", err)
		os.Exit(1)
	}

	fmt.Println("wallet re-encrypted:", rwtFile.Address)
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("password cannot be empty")
	}
	return raw, nil
}
