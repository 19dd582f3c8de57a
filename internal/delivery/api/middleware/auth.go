package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "unifeast/internal/delivery/context"
	"unifeast/internal/domain/entity"
	domainerrors "unifeast/internal/domain/errors"
	"unifeast/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// AuthMiddleware turns bearer tokens into the identity handlers act on.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		identity, err := m.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Token rejected", slog.Any("error", err))

			return domainerrors.ErrInvalidToken
		}

		c.Set(identityKey, identity)

		return next(c)
	}
}

// Optional attaches the identity when a valid token is present and otherwise serves the
// request anonymously.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		identity, err := m.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Ignoring invalid token on optional route", slog.Any("error", err))

			return next(c)
		}

		c.Set(identityKey, identity)

		return next(c)
	}
}

// GetIdentity returns the identity set by Authenticate or Optional.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(identityKey).(*entity.Identity)

	return identity, ok && identity != nil && identity.UserID != ""
}

// GetUserID returns the authenticated user's id.
func GetUserID(c echo.Context) (string, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return "", false
	}

	return identity.UserID, true
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
