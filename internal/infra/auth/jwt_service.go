// Package auth provides the identity verifiers that turn bearer tokens into user identities.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"unifeast/config"
	"unifeast/internal/domain/entity"
	"unifeast/internal/domain/service"
)

// JWTService issues and validates HS256 access tokens whose subject is the user id.
// It serves both as the TokenService used by the operator CLI and as an IdentityVerifier.
type JWTService struct {
	secret []byte        // Secret key for signing access tokens.
	issuer string        // Optional iss claim; enforced on validation when set.
	ttl    time.Duration // Time-to-live for access tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for JWTService.
func NewJWTService(cfg *config.Config) (*JWTService, error) {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &JWTService{
		secret: []byte(cfg.Auth.JWTSecret),
		issuer: cfg.Auth.Issuer,
		ttl:    cfg.Auth.TokenTTL,
		now:    time.Now,
	}, nil
}

// GenerateToken creates a signed access token for identity.
func (s *JWTService) GenerateToken(identity *entity.Identity) (string, error) {
	if identity == nil || identity.UserID == "" {
		return "", errors.New("identity must carry a user id")
	}

	now := s.now()
	claims := service.Claims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature, expiry and issuer of a token string.
func (s *JWTService) ValidateToken(tokenString string) (*service.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}

// GetTokenDuration returns the configured lifetime of access tokens.
func (s *JWTService) GetTokenDuration() time.Duration {
	return s.ttl
}

// Verify implements service.IdentityVerifier.
func (s *JWTService) Verify(_ context.Context, token string) (*entity.Identity, error) {
	claims, err := s.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	return &entity.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}
