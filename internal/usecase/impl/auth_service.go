// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"guidematch/internal/domain/entity"
	domainerrors "guidematch/internal/domain/errors"
	"guidematch/internal/domain/repository"
	"guidematch/internal/domain/service"
	"guidematch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 6

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokenIssuer service.TokenIssuer
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	TokenIssuer service.TokenIssuer
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		tokenIssuer: params.TokenIssuer,
		logger:      params.Logger,
	}
}

// Register orchestrates the complete account registration process.
//
// Validation short-circuits on the first failure, in order: required
// fields, email format, password length. Only then is the store consulted
// for uniqueness, so no validation failure ever touches persistence.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrFieldsRequired, "registration rejected")
	}

	email := normalizeEmail(input.Email)
	if !strings.Contains(email, "@") || len(email) < 5 {
		srv.logger.Warn("Registration rejected", slog.String("reason", "invalid email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidEmail, "registration rejected")
	}

	if len(input.Password) < minPasswordLength {
		srv.logger.Warn("Registration rejected", slog.String("email", email), slog.String("reason", "password too short"))

		return nil, errors.Wrap(domainerrors.ErrPasswordTooShort, "registration rejected")
	}

	// bcrypt is CPU-bound; hash before entering the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "registration failed")
	}

	var created *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, findErr := accountRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to check for existing account")
		}

		newAccount := &entity.Account{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: passwordHash,
			CreatedAt:    time.Now().UTC(),
		}

		if createErr := accountRepo.Create(ctx, newAccount); createErr != nil {
			return errors.Wrap(createErr, "failed to create account during registration")
		}

		created = newAccount

		return nil
	})

	if err != nil {
		srv.logger.Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.logger.Info("Account registered", slog.Any("accountID", created.ID), slog.String("email", created.Email))

	return &usecase.RegisterOutput{Account: created}, nil
}

// Login verifies the credentials and issues a signed access token.
//
// An unknown email and a wrong password both produce the same generic
// credentials error so the response cannot be used to enumerate accounts.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrFieldsRequired, "login rejected")
	}

	email := normalizeEmail(input.Email)

	// Single read, no multi-step unit of work: use the repository directly.
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.logger.Warn("Login failed", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenIssuer.Sign(account.ID)
	if err != nil {
		srv.logger.Error("Failed to issue access token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, "login failed")
	}

	srv.logger.Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		Account:     account,
	}, nil
}

// normalizeEmail lowercases and trims the login identifier. Applied before
// every lookup so the uniqueness invariant holds per normalized email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
