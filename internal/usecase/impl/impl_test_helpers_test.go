package impl

import (
	"context"
	"io"
	"log/slog"

	"guidematch/internal/domain/entity"
	"guidematch/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAccountRepository is an in-memory AccountRepository keyed by email.
type fakeAccountRepository struct {
	accounts  map[string]*entity.Account
	findErr   error
	createErr error
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{accounts: make(map[string]*entity.Account)}
}

func (f *fakeAccountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	account, ok := f.accounts[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account, nil
}

func (f *fakeAccountRepository) Create(_ context.Context, account *entity.Account) error {
	if f.createErr != nil {
		return f.createErr
	}

	f.accounts[account.Email] = account

	return nil
}

// fakeGuideRepository is an in-memory GuideRepository that records the last
// query it received.
type fakeGuideRepository struct {
	guides    map[uuid.UUID]*entity.Guide
	listed    []*entity.Guide
	lastQuery repository.GuideQuery
	listErr   error
	findErr   error
}

func newFakeGuideRepository() *fakeGuideRepository {
	return &fakeGuideRepository{guides: make(map[uuid.UUID]*entity.Guide)}
}

func (f *fakeGuideRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Guide, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	guide, ok := f.guides[id]
	if !ok {
		return nil, repository.ErrGuideNotFound
	}

	return guide, nil
}

func (f *fakeGuideRepository) List(_ context.Context, query repository.GuideQuery) ([]*entity.Guide, error) {
	f.lastQuery = query
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.listed, nil
}

func (f *fakeGuideRepository) Create(_ context.Context, guide *entity.Guide) error {
	f.guides[guide.ID] = guide

	return nil
}

// fakeRepositoryFactory hands out the fake repositories inside a transaction.
type fakeRepositoryFactory struct {
	accountRepo repository.AccountRepository
	guideRepo   repository.GuideRepository
}

func (f *fakeRepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.accountRepo
}

func (f *fakeRepositoryFactory) GuideRepo() repository.GuideRepository {
	return f.guideRepo
}

// fakeTransactionManager runs the unit of work directly against the fakes.
type fakeTransactionManager struct {
	factory  *fakeRepositoryFactory
	executed int
}

func (f *fakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	f.executed++

	return fn(f.factory)
}

// fakePasswordHasher marks hashes deterministically so tests can assert the
// plaintext never reaches the store.
type fakePasswordHasher struct {
	hashErr   error
	hashCalls int
}

func (f *fakePasswordHasher) Hash(password string) (string, error) {
	f.hashCalls++
	if f.hashErr != nil {
		return "", f.hashErr
	}

	return "hashed:" + password, nil
}

func (f *fakePasswordHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenIssuer returns a canned token and records the subject.
type fakeTokenIssuer struct {
	token   string
	signErr error
	lastID  uuid.UUID
}

func (f *fakeTokenIssuer) Sign(accountID uuid.UUID) (string, error) {
	f.lastID = accountID
	if f.signErr != nil {
		return "", f.signErr
	}

	return f.token, nil
}
