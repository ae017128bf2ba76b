// Command hashsecret prints the bcrypt hash to set as PAYLASH_FRONTEND_SECRET_HASH.
//
// Usage:
//
//	hashsecret <secret>
//	echo -n <secret> | hashsecret
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/amirmtaati/paylash/internal/auth"
)

func main() {
	secret, err := readSecret()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashsecret:", err)
		os.Exit(1)
	}

	hash, err := auth.HashSecret(secret)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashsecret:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

func readSecret() (string, error) {
	if len(os.Args) > 1 {
		return os.Args[1], nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read secret from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
