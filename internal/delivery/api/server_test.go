package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"unifeast/config"
	"unifeast/internal/delivery/api/middleware"
	"unifeast/internal/delivery/api/router"
	"unifeast/internal/delivery/api/router/handler"
	"unifeast/internal/domain/entity"
	domainerrors "unifeast/internal/domain/errors"
	mockSvc "unifeast/internal/mocks/service"
	mockUsecase "unifeast/internal/mocks/usecase"
	"unifeast/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type apiFixtures struct {
	echo     *echo.Echo
	profiles *mockUsecase.MockProfileUsecase
	menu     *mockUsecase.MockMenuUsecase
}

func createTestAPI(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	profiles := mockUsecase.NewMockProfileUsecase(t)
	menu := mockUsecase.NewMockMenuUsecase(t)
	verifier := mockSvc.NewMockIdentityVerifier(t)
	verifier.EXPECT().Verify(mock.Anything, validToken).
		Return(&entity.Identity{UserID: "user-1", Email: "user-1@campus.ac.uk"}, nil).Maybe()
	verifier.EXPECT().Verify(mock.Anything, mock.Anything).
		Return(nil, errors.New("token expired")).Maybe()

	e := NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: profiles, Logger: logger}),
		MenuHandler:    handler.NewMenuHandler(menu),
		AuthMiddleware: middleware.NewAuthMiddleware(verifier, logger),
	}).RegisterRoutes(e)

	return apiFixtures{echo: e, profiles: profiles, menu: menu}
}

func (f apiFixtures) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	f.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

func sampleProfile() *entity.Profile {
	profile := entity.NewProfile("user-1", "user-1@campus.ac.uk")
	profile.IdentityTier = entity.IdentityTierStaff
	profile.DietaryPreferences = entity.DietaryPreferences{entity.DietaryVegan}
	profile.CoreAllergens.Peanuts = true
	profile.CreatedAt = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	profile.UpdatedAt = profile.CreatedAt

	return profile
}

func TestAPI_HealthCheck(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get("X-Request-Id"))
}

func TestAPI_Vocabulary(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/vocabulary", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var vocab handler.VocabularyResponse
	require.NoError(t, json.Unmarshal(env.Data, &vocab))
	assert.Len(t, vocab.IdentityTiers, 3)
	assert.Contains(t, vocab.DietaryPreferences, entity.DietaryHalal)
	assert.Len(t, vocab.CoreAllergens, 5)
}

func TestAPI_GetProfile_RequiresToken(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/profile", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
}

func TestAPI_GetProfile_RejectsInvalidToken(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/profile", "expired", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestAPI_GetProfile(t *testing.T) {
	fx := createTestAPI(t)
	fx.profiles.EXPECT().GetProfile(mock.Anything, "user-1").Return(sampleProfile(), nil)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/profile", validToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var profile handler.ProfileResponse
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, "staff", profile.IdentityTier)
	assert.Equal(t, []string{"Vegan"}, profile.DietaryPreferences)
	assert.True(t, profile.Peanuts)
	assert.Equal(t, []string{}, profile.OtherAllergens)
}

func TestAPI_GetProfile_NotFound(t *testing.T) {
	fx := createTestAPI(t)
	fx.profiles.EXPECT().GetProfile(mock.Anything, "user-1").
		Return(nil, errors.Wrap(domainerrors.ErrProfileNotFound, "no profile for user user-1"))

	rec, env := fx.do(t, http.MethodGet, "/api/v1/profile", validToken, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PROFILE_NOT_FOUND", env.Error.Code)
}

func TestAPI_GetProfile_BackendUnavailable(t *testing.T) {
	fx := createTestAPI(t)
	fx.profiles.EXPECT().GetProfile(mock.Anything, "user-1").
		Return(nil, domainerrors.NewBackendError("primary", "find", errors.New("connection refused")))

	rec, env := fx.do(t, http.MethodGet, "/api/v1/profile", validToken, "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BACKEND_UNAVAILABLE", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestAPI_EnsureProfile_PassesIdentity(t *testing.T) {
	fx := createTestAPI(t)
	fx.profiles.EXPECT().EnsureProfile(mock.Anything, "user-1", "user-1@campus.ac.uk").Return(sampleProfile(), nil)

	rec, _ := fx.do(t, http.MethodPost, "/api/v1/profile/ensure", validToken, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_CreateProfile_SeedsFromBody(t *testing.T) {
	fx := createTestAPI(t)
	fx.profiles.EXPECT().
		CreateProfile(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProfileInput) bool {
			return in.UserID == "user-1" && in.Initial != nil &&
				in.Initial.DisplayName != nil && *in.Initial.DisplayName == "Ada"
		})).
		Return(sampleProfile(), nil)

	rec, _ := fx.do(t, http.MethodPost, "/api/v1/profile", validToken, `{"displayName":"Ada"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAPI_UpdateProfile(t *testing.T) {
	fx := createTestAPI(t)
	fx.profiles.EXPECT().
		UpdateProfile(mock.Anything, "user-1", mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.Peanuts != nil && *in.Peanuts && in.Milk == nil &&
				in.OtherAllergens != nil && len(*in.OtherAllergens) == 1
		})).
		Return(sampleProfile(), nil)

	rec, _ := fx.do(t, http.MethodPatch, "/api/v1/profile", validToken, `{"peanuts":true,"otherAllergens":["Celery"],"email":"ignored@x.io"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_UpdateProfile_ValidationDetails(t *testing.T) {
	fx := createTestAPI(t)
	fx.profiles.EXPECT().UpdateProfile(mock.Anything, "user-1", mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("identityTier: must be one of student, staff, visitor"))

	rec, env := fx.do(t, http.MethodPatch, "/api/v1/profile", validToken, `{"identityTier":"alumni"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "identityTier")
}

func TestAPI_UpdateProfile_MalformedBody(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodPatch, "/api/v1/profile", validToken, `{"peanuts":"sometimes"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestAPI_GetMenu(t *testing.T) {
	entries := []*entity.MenuEntry{{Item: &entity.Item{ID: "pad-thai"}, Price: 6.1, AllergenWarning: true}}

	tests := []struct {
		name         string
		token        string
		userID       string
		personalized bool
	}{
		{name: "signed in", token: validToken, userID: "user-1", personalized: true},
		{name: "anonymous", token: "", userID: "", personalized: false},
		{name: "invalid token served anonymously", token: "expired", userID: "", personalized: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)
			fx.menu.EXPECT().GetMenu(mock.Anything, tt.userID).Return(entries, nil)

			rec, env := fx.do(t, http.MethodGet, "/api/v1/menu", tt.token, "")

			require.Equal(t, http.StatusOK, rec.Code)
			var menu handler.MenuResponse
			require.NoError(t, json.Unmarshal(env.Data, &menu))
			assert.Equal(t, tt.personalized, menu.Personalized)
			require.Len(t, menu.Items, 1)
			assert.True(t, menu.Items[0].AllergenWarning)
		})
	}
}

func TestAPI_GetMenu_CatalogUnavailable(t *testing.T) {
	fx := createTestAPI(t)
	fx.menu.EXPECT().GetMenu(mock.Anything, "").
		Return(nil, errors.Wrap(domainerrors.ErrCatalogUnavailable, "bucket not found"))

	rec, env := fx.do(t, http.MethodGet, "/api/v1/menu", "", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CATALOG_UNAVAILABLE", env.Error.Code)
}

func TestAPI_RequestIDIsEchoed(t *testing.T) {
	fx := createTestAPI(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-abc-123")
	rec := httptest.NewRecorder()

	fx.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "req-abc-123", env.Meta.RequestID)
	assert.Equal(t, "req-abc-123", rec.Header().Get("X-Request-Id"))
}

func TestAPI_UnknownRoute(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
