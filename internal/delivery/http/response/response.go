// Package response defines the JSON bodies of the public API.
package response

import (
	"time"

	"guidematch/internal/domain/entity"
)

// Account is the public projection of an account: id and email only.
// The password hash never leaves the persistence layer.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Register is the body of a successful registration.
type Register struct {
	Message string  `json:"message"`
	User    Account `json:"user"`
}

// Login is the body of a successful login.
type Login struct {
	Message     string  `json:"message"`
	AccessToken string  `json:"access_token"`
	User        Account `json:"user"`
}

// Guide is the public projection of a guide profile, flattened with the
// owning account's id, email and creation time.
type Guide struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	CreatedAt     string  `json:"created_at"`
	NameRomanized string  `json:"name_romanized"`
	Bio           string  `json:"bio"`
	Specialties   string  `json:"specialties"`
	Rating        float64 `json:"rating"`
	Languages     string  `json:"languages"`
	Areas         string  `json:"areas"`
	PriceRange    string  `json:"price_range"`
}

// Error is the body of every failed request.
type Error struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// NewAccount maps an account entity to its public projection.
func NewAccount(account *entity.Account) Account {
	if account == nil {
		return Account{}
	}

	return Account{
		ID:    account.ID.String(),
		Email: account.Email,
	}
}

// NewGuide maps a guide entity to its public projection.
func NewGuide(guide *entity.Guide) Guide {
	if guide == nil {
		return Guide{}
	}

	return Guide{
		ID:            guide.ID.String(),
		Email:         guide.Email,
		CreatedAt:     guide.CreatedAt.Format(time.RFC3339),
		NameRomanized: guide.NameRomanized,
		Bio:           guide.Bio,
		Specialties:   guide.Specialties,
		Rating:        guide.Rating,
		Languages:     guide.Languages,
		Areas:         guide.Areas,
		PriceRange:    guide.PriceRange,
	}
}

// NewGuides maps a slice of guide entities, always returning a non-nil
// slice so an empty result serializes as [] rather than null.
func NewGuides(guides []*entity.Guide) []Guide {
	out := make([]Guide, 0, len(guides))
	for _, guide := range guides {
		out = append(out, NewGuide(guide))
	}

	return out
}
