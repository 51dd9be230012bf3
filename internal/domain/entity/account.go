// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is an authenticatable identity on the platform. It carries only
// the credential data needed for registration and login; the public-facing
// guide profile lives in Guide.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account, generated at creation.
	Email        string    // Login identifier, stored lowercased. Unique across all accounts.
	PasswordHash string    // One-way hash of the password. Never serialized to clients.
	CreatedAt    time.Time // Set once when the account is created.
}
