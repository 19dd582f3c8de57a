package service

import (
	"context"

	"unifeast/internal/domain/entity"
)

// IdentityVerifier turns a bearer token issued by the authentication collaborator
// into the user id and login email the core operates on.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}
