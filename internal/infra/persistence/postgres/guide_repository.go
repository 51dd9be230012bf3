package postgres

import (
	"context"
	"strings"
	"time"

	"guidematch/internal/domain/entity"
	domainerrors "guidematch/internal/domain/errors"
	"guidematch/internal/domain/repository"
	"guidematch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// guideRepository implements the repository.GuideRepository interface using GORM.
type guideRepository struct {
	db *gorm.DB
}

// NewGuideRepository is the constructor for guideRepository.
func NewGuideRepository(db *gorm.DB) repository.GuideRepository {
	return &guideRepository{db: db}
}

// guideRow is the scan target for the guides/accounts join. Email and
// CreatedAt come from the owning account row.
type guideRow struct {
	ID            uuid.UUID
	Email         string
	CreatedAt     time.Time
	NameRomanized string
	Bio           string
	Specialties   string
	Rating        float64
	Languages     string
	Areas         string
	PriceRange    string
}

// FindByID retrieves a single guide profile by the owning account's ID.
func (repo *guideRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guide, error) {
	var row guideRow

	err := repo.baseQuery(ctx).
		Where("guides.id = ?", id).
		Take(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuideNotFound
		}

		return nil, errors.Wrap(err, "failed to find guide by id")
	}

	return toGuideDomain(&row), nil
}

// List returns all guide profiles matching the query, in natural storage order.
// Tags within one option group are ORed; the groups and the rating
// threshold are ANDed, matching the public filter semantics.
func (repo *guideRepository) List(ctx context.Context, query repository.GuideQuery) ([]*entity.Guide, error) {
	q := repo.baseQuery(ctx)

	if cond, args := substringAnyCondition("guides.languages", query.LanguageTags); cond != "" {
		q = q.Where(cond, args...)
	}
	if cond, args := substringAnyCondition("guides.areas", query.AreaTags); cond != "" {
		q = q.Where(cond, args...)
	}
	if query.MinRating != nil {
		q = q.Where("guides.rating >= ?", *query.MinRating)
	}

	var rows []guideRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list guides")
	}

	guides := make([]*entity.Guide, 0, len(rows))
	for i := range rows {
		guides = append(guides, toGuideDomain(&rows[i]))
	}

	return guides, nil
}

// Create persists a new guide profile for an existing account.
func (repo *guideRepository) Create(ctx context.Context, guide *entity.Guide) error {
	guideM := fromGuideDomain(guide)

	if err := repo.db.WithContext(ctx).Create(guideM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailExists.WrapMessage("guide profile already exists for this account")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "guide profile references a missing account")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create guide")
	}

	return nil
}

// baseQuery joins guides with their owning accounts so every read carries
// the account's email and creation time.
func (repo *guideRepository) baseQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.GuideModel{}).
		Select("guides.*, accounts.email, accounts.created_at").
		Joins("JOIN accounts ON accounts.id = guides.id")
}

// substringAnyCondition builds an OR chain of case-insensitive substring
// matches over one column: (col ILIKE %a% OR col ILIKE %b% ...).
func substringAnyCondition(column string, tags []string) (string, []any) {
	if len(tags) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(tags))
	args := make([]any, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, column+" ILIKE ?")
		args = append(args, "%"+tag+"%")
	}

	return "(" + strings.Join(parts, " OR ") + ")", args
}

// --- Mapper Functions ---

// toGuideDomain converts a joined guide row to a domain Guide entity.
func toGuideDomain(data *guideRow) *entity.Guide {
	if data == nil {
		return nil
	}

	return &entity.Guide{
		ID:            data.ID,
		Email:         data.Email,
		NameRomanized: data.NameRomanized,
		Bio:           data.Bio,
		Specialties:   data.Specialties,
		Rating:        data.Rating,
		Languages:     data.Languages,
		Areas:         data.Areas,
		PriceRange:    data.PriceRange,
		CreatedAt:     data.CreatedAt,
	}
}

// fromGuideDomain converts a domain Guide entity to a GORM GuideModel for persistence.
func fromGuideDomain(data *entity.Guide) *model.GuideModel {
	if data == nil {
		return nil
	}

	return &model.GuideModel{
		ID:            data.ID,
		NameRomanized: data.NameRomanized,
		Bio:           data.Bio,
		Specialties:   data.Specialties,
		Rating:        data.Rating,
		Languages:     data.Languages,
		Areas:         data.Areas,
		PriceRange:    data.PriceRange,
	}
}
