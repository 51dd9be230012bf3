package postgres

import (
	"context"

	"guidematch/internal/domain/entity"
	domainerrors "guidematch/internal/domain/errors"
	"guidematch/internal/domain/repository"
	"guidematch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByEmail retrieves a single account by its normalized email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity to the database.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Propagate the persisted creation timestamp back to the entity.
	account.CreatedAt = accountM.CreatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}
