// Package auth authenticates the chat front end and issues the tokens it
// uses to act on behalf of individual chat users.
package auth

import "context"

// Authenticator verifies the credential a client presents before it may
// obtain tokens.
// This abstraction allows swapping the shared-secret check for another
// method (mTLS identities, OAuth client credentials, etc.) without changing
// the service layer code.
type Authenticator interface {
	// Authenticate returns ErrInvalidCredentials if credential is not accepted.
	Authenticate(ctx context.Context, credential string) error
}
