package impl

import (
	"context"
	"testing"

	domainerrors "guidematch/internal/domain/errors"
	"guidematch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service     usecase.AuthUsecase
	accountRepo *fakeAccountRepository
	txManager   *fakeTransactionManager
	hasher      *fakePasswordHasher
	tokenIssuer *fakeTokenIssuer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	accountRepo := newFakeAccountRepository()
	guideRepo := newFakeGuideRepository()
	txManager := &fakeTransactionManager{
		factory: &fakeRepositoryFactory{
			accountRepo: accountRepo,
			guideRepo:   guideRepo,
		},
	}
	hasher := &fakePasswordHasher{}
	tokenIssuer := &fakeTokenIssuer{token: "signed-token"}

	service := NewAuthService(AuthServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Hasher:      hasher,
		TokenIssuer: tokenIssuer,
		Logger:      newDiscardLogger(),
	})

	return authServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		txManager:   txManager,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "guide@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "guide@example.com", output.Account.Email)
	assert.NotEqual(t, "password123", output.Account.PasswordHash)
	assert.Equal(t, "hashed:password123", output.Account.PasswordHash)
	assert.False(t, output.Account.CreatedAt.IsZero())
	assert.Equal(t, 1, fx.txManager.executed)
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "  Guide@Example.COM  ",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "guide@example.com", output.Account.Email)
	assert.Contains(t, fx.accountRepo.accounts, "guide@example.com")
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{name: "nil input", input: nil},
		{name: "missing email", input: &usecase.RegisterInput{Password: "password123"}},
		{name: "missing password", input: &usecase.RegisterInput{Email: "guide@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := fx.service.Register(ctx, tt.input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrFieldsRequired)
		})
	}

	assert.Zero(t, fx.txManager.executed)
	assert.Zero(t, fx.hasher.hashCalls)
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		email string
	}{
		{name: "no at sign", email: "guideexample.com"},
		{name: "too short", email: "a@b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := fx.service.Register(ctx, &usecase.RegisterInput{
				Email:    tt.email,
				Password: "password123",
			})

			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
		})
	}
}

func TestAuthService_Register_PasswordTooShort(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "guide@example.com",
		Password: "12345",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
	assert.Zero(t, fx.hasher.hashCalls)
}

func TestAuthService_Register_PasswordExactMinimumLength(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "guide@example.com",
		Password: "123456",
	})

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	first, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "guide@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "guide@example.com",
		Password: "different-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)

	// The original account is untouched.
	stored := fx.accountRepo.accounts["guide@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, first.Account.ID, stored.ID)
}

func TestAuthService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "guide@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "GUIDE@EXAMPLE.COM",
		Password: "password123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "guide@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "guide@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, registered.Account.ID, output.Account.ID)
	assert.Equal(t, registered.Account.ID, fx.tokenIssuer.lastID)
}

func TestAuthService_Login_NormalizesEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "guide@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "  GUIDE@example.com ",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "guide@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "guide@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// Same generic error as for an unknown email.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.LoginInput
	}{
		{name: "nil input", input: nil},
		{name: "missing email", input: &usecase.LoginInput{Password: "password123"}},
		{name: "missing password", input: &usecase.LoginInput{Email: "guide@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := fx.service.Login(ctx, tt.input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrFieldsRequired)
		})
	}
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "guide@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	fx.tokenIssuer.signErr = assert.AnError

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "guide@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.hashErr = assert.AnError

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "guide@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.Zero(t, fx.txManager.executed)
}
