package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"unifeast/internal/domain/entity"
)

// Claims defines the custom claims carried by access tokens.
// The subject holds the user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for identity.
	GenerateToken(identity *entity.Identity) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured lifetime of access tokens.
	GetTokenDuration() time.Duration
}
