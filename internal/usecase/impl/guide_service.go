package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"guidematch/internal/domain/entity"
	domainerrors "guidematch/internal/domain/errors"
	"guidematch/internal/domain/repository"
	"guidematch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// guideService implements the GuideUsecase interface.
type guideService struct {
	guideRepo repository.GuideRepository
	logger    *slog.Logger
}

// GuideServiceParams holds dependencies for guideService, injected by Fx.
type GuideServiceParams struct {
	fx.In

	GuideRepo repository.GuideRepository
	Logger    *slog.Logger
}

// NewGuideService is the constructor for guideService.
func NewGuideService(params GuideServiceParams) usecase.GuideUsecase {
	return &guideService{
		guideRepo: params.GuideRepo,
		logger:    params.Logger,
	}
}

// ListGuides returns all guide profiles matching the filter.
func (srv *guideService) ListGuides(ctx context.Context, input *usecase.ListGuidesInput) ([]*entity.Guide, error) {
	query := repository.GuideQuery{}
	if input != nil {
		query.LanguageTags = splitTags(input.Languages)
		query.AreaTags = splitTags(input.Areas)
		query.MinRating = parseMinRating(input.MinRating)
	}

	guides, err := srv.guideRepo.List(ctx, query)
	if err != nil {
		srv.logger.Error("Failed to list guides", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list guides")
	}

	return guides, nil
}

// GetGuide retrieves a single guide profile by its ID.
func (srv *guideService) GetGuide(ctx context.Context, id uuid.UUID) (*entity.Guide, error) {
	guide, err := srv.guideRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGuideNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGuideNotFound, "guide lookup failed")
		}

		srv.logger.Error("Failed to get guide", slog.Any("guideID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get guide")
	}

	return guide, nil
}

// splitTags breaks a comma-separated option value into trimmed, non-empty tokens.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

// parseMinRating parses the min_rating option. A non-numeric value is
// silently ignored, imposing no constraint.
func parseMinRating(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}

	return &value
}
