package firebase

import (
	"context"
	"testing"

	"unifeast/internal/domain/entity"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	token *auth.Token
	err   error
}

func (s stubClient) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return s.token, s.err
}

func TestVerifier_Verify(t *testing.T) {
	v := NewVerifierWithClient(stubClient{token: &auth.Token{
		UID:    "firebase-uid",
		Claims: map[string]any{"email": "user@campus.ac.uk"},
	}})

	identity, err := v.Verify(context.Background(), "id-token")

	require.NoError(t, err)
	assert.Equal(t, &entity.Identity{UserID: "firebase-uid", Email: "user@campus.ac.uk"}, identity)
}

func TestVerifier_NoEmailClaim(t *testing.T) {
	v := NewVerifierWithClient(stubClient{token: &auth.Token{UID: "firebase-uid"}})

	identity, err := v.Verify(context.Background(), "id-token")

	require.NoError(t, err)
	assert.Empty(t, identity.Email)
}

func TestVerifier_Rejected(t *testing.T) {
	v := NewVerifierWithClient(stubClient{err: errors.New("ID token has expired")})

	_, err := v.Verify(context.Background(), "id-token")

	assert.ErrorContains(t, err, "expired")
}
