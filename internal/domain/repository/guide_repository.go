package repository

import (
	"context"
	"errors"

	"guidematch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGuideNotFound is a domain-specific error returned when a guide profile is not found.
var ErrGuideNotFound = errors.New("guide not found")

// GuideQuery describes the directory filter after option parsing.
// Tags within one slice are combined with OR; the groups (and MinRating)
// are combined with AND. Nil/empty members impose no constraint.
type GuideQuery struct {
	// LanguageTags match the stored languages column by case-insensitive substring.
	LanguageTags []string
	// AreaTags match the stored areas column by case-insensitive substring.
	AreaTags []string
	// MinRating includes only guides with rating >= the threshold.
	MinRating *float64
}

// GuideRepository defines the standard operations for guide profile persistence.
type GuideRepository interface {
	// FindByID retrieves a single guide profile by the owning account's ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guide, error)

	// List returns all guide profiles matching the query, in natural storage order.
	List(ctx context.Context, query GuideQuery) ([]*entity.Guide, error)

	// Create persists a new guide profile for an existing account.
	// Used by the seeding/admin path only; there is no public create endpoint.
	Create(ctx context.Context, guide *entity.Guide) error
}
