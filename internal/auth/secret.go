package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid client secret")
	ErrWeakSecret         = errors.New("secret must be at least 16 characters")
)

// MinSecretLength is the shortest shared secret HashSecret accepts.
const MinSecretLength = 16

// SecretAuthenticator implements shared-secret authentication using bcrypt.
type SecretAuthenticator struct {
	hash []byte
}

var _ Authenticator = (*SecretAuthenticator)(nil)

// NewSecretAuthenticator creates an authenticator for the bcrypt hash of the
// front end's shared secret.
func NewSecretAuthenticator(hash string) (*SecretAuthenticator, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid secret hash: %w", err)
	}
	return &SecretAuthenticator{hash: []byte(hash)}, nil
}

// Authenticate compares credential against the stored hash.
func (a *SecretAuthenticator) Authenticate(_ context.Context, credential string) error {
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(credential)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashSecret returns the bcrypt hash to configure for secret.
func HashSecret(secret string) (string, error) {
	if len(secret) < MinSecretLength {
		return "", ErrWeakSecret
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hashed), nil
}
