// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"guidematch/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
// The password hash is never included.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the signed access token after a successful login.
type LoginOutput struct {
	AccessToken string
	Account     *entity.Account
}

// AuthUsecase defines the interface for credential/identity operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register validates the input, creates the account and persists it.
	// Validation short-circuits in order: required fields, email format,
	// password length, email uniqueness.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies the credentials and issues a signed access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
