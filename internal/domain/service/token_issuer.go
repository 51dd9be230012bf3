package service

import "github.com/google/uuid"

// TokenIssuer defines the interface for issuing signed access tokens.
// The token is an opaque credential bound to an account identity; no
// endpoint in this service validates presented tokens, so the contract
// is signing only.
type TokenIssuer interface {
	// Sign issues a signed access token for the given account ID.
	Sign(accountID uuid.UUID) (string, error)
}
