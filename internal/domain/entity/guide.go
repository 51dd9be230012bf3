package entity

import (
	"time"

	"github.com/google/uuid"
)

// Guide is a tour guide's public-facing profile. It extends an Account
// one-to-one: its ID is the owning account's ID, and Email/CreatedAt are
// carried over from the account row when the profile is read.
//
// Specialties, Languages and Areas are comma-joined tag lists
// (e.g. "ja,en"). The directory filter matches them by case-insensitive
// substring, not exact set membership.
type Guide struct {
	ID            uuid.UUID // Equals the owning account's ID.
	Email         string    // The owning account's email.
	NameRomanized string    // Display name in romanized form.
	Bio           string    // Short biography text.
	Specialties   string    // Comma-joined specialty tags.
	Rating        float64   // Numeric rating, e.g. 4.8.
	Languages     string    // Comma-joined language tags.
	Areas         string    // Comma-joined service area tags.
	PriceRange    string    // Price range descriptor, e.g. "8000-15000".
	CreatedAt     time.Time // The owning account's creation time.
}
