// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"guidematch/internal/domain/entity"

	"github.com/google/uuid"
)

// ListGuidesInput carries the raw directory filter options as received
// from the query string. Empty options impose no constraint.
type ListGuidesInput struct {
	// Languages is a comma-separated tag list; a guide matches if ANY tag
	// appears as a case-insensitive substring of its languages field.
	Languages string
	// Areas has the same semantics against the areas field.
	Areas string
	// MinRating is a numeric threshold; non-numeric values are silently ignored.
	MinRating string
}

// GuideUsecase defines the interface for the public guide directory.
type GuideUsecase interface {
	// ListGuides returns all guide profiles matching the filter.
	// Option groups combine with AND, tags within a group with OR.
	ListGuides(ctx context.Context, input *ListGuidesInput) ([]*entity.Guide, error)

	// GetGuide retrieves a single guide profile by its ID.
	GetGuide(ctx context.Context, id uuid.UUID) (*entity.Guide, error)
}
