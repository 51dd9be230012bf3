// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"guidematch/config"
	"guidematch/internal/domain/service"
)

const defaultAccessTTL = time.Hour * 24

// jwtIssuer is a concrete implementation of the TokenIssuer interface using the JWT standard.
type jwtIssuer struct {
	secret    string        // Secret key for signing access tokens.
	accessTTL time.Duration // Time-to-live for issued tokens.
}

// NewJWTIssuer is the constructor for jwtIssuer.
// It takes configuration values to create a new token issuer instance.
func NewJWTIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.SecretKey.AccessTTL
	if ttl <= 0 {
		ttl = defaultAccessTTL
	}

	return &jwtIssuer{
		secret:    cfg.SecretKey.Access,
		accessTTL: ttl,
	}, nil
}

// Sign creates a signed access token bound to the given account ID.
func (s *jwtIssuer) Sign(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": accountID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}
