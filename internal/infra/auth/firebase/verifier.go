// Package firebase verifies Firebase Authentication ID tokens.
package firebase

import (
	"context"

	"unifeast/internal/domain/entity"
	"unifeast/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// TokenVerifier is the subset of the Firebase auth client used here.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type verifier struct {
	client TokenVerifier
}

// NewVerifier initializes the Firebase app from a service account file.
func NewVerifier(ctx context.Context, projectID, credentialsPath string) (service.IdentityVerifier, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return NewVerifierWithClient(client), nil
}

// NewVerifierWithClient wraps an existing token verifier.
func NewVerifierWithClient(client TokenVerifier) service.IdentityVerifier {
	return &verifier{client: client}
}

// Verify checks the ID token and returns the Firebase uid with the token's email claim.
func (v *verifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify Firebase ID token")
	}
	if decoded.UID == "" {
		return nil, errors.New("Firebase ID token has no uid")
	}

	email, _ := decoded.Claims["email"].(string)

	return &entity.Identity{
		UserID: decoded.UID,
		Email:  email,
	}, nil
}
