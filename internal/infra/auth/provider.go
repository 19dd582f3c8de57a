package auth

import (
	"context"

	"unifeast/config"
	"unifeast/internal/domain/service"
	"unifeast/internal/infra/auth/firebase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the IdentityVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
}

// NewIdentityVerifier returns the verifier selected by auth.provider.
// The jwt provider needs only the shared secret; firebase needs a service account.
func NewIdentityVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	cfg := params.Config
	switch cfg.Auth.Provider {
	case config.AuthProviderJWT:
		svc, err := NewJWTService(cfg)
		if err != nil {
			return nil, err
		}

		return svc, nil
	case config.AuthProviderFirebase:
		return firebase.NewVerifier(params.Ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Auth.Provider)
	}
}

// NewTokenService exposes the JWT issuer; it needs a secret even under the firebase provider.
func NewTokenService(cfg *config.Config) (service.TokenService, error) {
	svc, err := NewJWTService(cfg)
	if err != nil {
		return nil, err
	}

	return svc, nil
}
