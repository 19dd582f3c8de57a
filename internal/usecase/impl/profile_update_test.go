package impl

import (
	"context"
	"testing"

	"unifeast/internal/domain/entity"
	domainerrors "unifeast/internal/domain/errors"
	"unifeast/internal/domain/repository"
	"unifeast/internal/domain/service"
	"unifeast/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestProfileService_UpdateProfile_RejectsInvalidInputBeforeIO(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.UpdateProfileInput
		details string
	}{
		{
			name:    "unknown identity tier",
			input:   &usecase.UpdateProfileInput{IdentityTier: strPtr("alumni")},
			details: "identityTier",
		},
		{
			name:    "dietary tag outside vocabulary",
			input:   &usecase.UpdateProfileInput{DietaryPreferences: &[]string{"Vegan", "Paleo"}},
			details: "Paleo",
		},
		{
			name:    "comma inside an allergen label",
			input:   &usecase.UpdateProfileInput{OtherAllergens: &[]string{"Celery, Gluten"}},
			details: "must not contain a comma",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t, ProfilePolicy{})

			profile, err := fx.service.UpdateProfile(context.Background(), "user-1", tt.input)

			assert.Nil(t, profile)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Details(), tt.details)

			fx.primary.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			fx.secondary.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestProfileService_UpdateProfile_WritesPrimaryAndPublishes(t *testing.T) {
	fx := createTestProfileService(t, ProfilePolicy{})
	ctx := context.Background()
	updated := storedProfile("user-1")
	updated.IdentityTier = entity.IdentityTierStaff
	updated.CoreAllergens.Peanuts = true

	fx.primary.EXPECT().
		Update(mock.Anything, "user-1", mock.MatchedBy(func(p *entity.ProfilePatch) bool {
			return p.IdentityTier != nil && *p.IdentityTier == entity.IdentityTierStaff &&
				p.Peanuts != nil && *p.Peanuts && p.DisplayName == nil
		})).
		Return(updated, nil)
	fx.publisher.EXPECT().
		PublishProfileEvent(mock.Anything, mock.MatchedBy(func(e *service.ProfileEvent) bool {
			return e.Type == service.EventProfileUpdated &&
				assert.ObjectsAreEqual([]string{"identityTier", "peanuts"}, e.Fields)
		})).
		Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, "user-1", &usecase.UpdateProfileInput{
		IdentityTier: strPtr("staff"),
		Peanuts:      boolPtr(true),
	})

	require.NoError(t, err)
	assert.Equal(t, updated, profile)
	fx.secondary.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_CopiesSecondaryRecordIntoWriteStore(t *testing.T) {
	fx := createTestProfileService(t, ProfilePolicy{})
	ctx := context.Background()
	legacy := storedProfile("user-1")
	legacy.OtherAllergens = []string{"Celery"}
	legacy.SessionData = "cart=3"
	updated := storedProfile("user-1")
	updated.DisplayName = "Ada"
	updated.OtherAllergens = []string{"Celery"}

	fx.primary.EXPECT().Update(mock.Anything, "user-1", mock.Anything).Return(nil, repository.ErrProfileNotFound).Once()
	fx.secondary.EXPECT().FindByID(mock.Anything, "user-1").Return(legacy, nil)
	fx.primary.EXPECT().Create(mock.Anything, legacy).Return(legacy, nil)
	fx.primary.EXPECT().Update(mock.Anything, "user-1", mock.Anything).Return(updated, nil).Once()
	fx.publisher.EXPECT().PublishProfileEvent(mock.Anything, mock.Anything).Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, "user-1", &usecase.UpdateProfileInput{DisplayName: strPtr("Ada")})

	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.DisplayName)
	assert.Equal(t, []string{"Celery"}, profile.OtherAllergens)
	fx.secondary.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_CopyToleratesConcurrentCopy(t *testing.T) {
	fx := createTestProfileService(t, ProfilePolicy{})
	ctx := context.Background()
	updated := storedProfile("user-1")

	fx.primary.EXPECT().Update(mock.Anything, "user-1", mock.Anything).Return(nil, repository.ErrProfileNotFound).Once()
	fx.secondary.EXPECT().FindByID(mock.Anything, "user-1").Return(storedProfile("user-1"), nil)
	fx.primary.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, repository.ErrProfileAlreadyExists)
	fx.primary.EXPECT().Update(mock.Anything, "user-1", mock.Anything).Return(updated, nil).Once()
	fx.publisher.EXPECT().PublishProfileEvent(mock.Anything, mock.Anything).Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, "user-1", &usecase.UpdateProfileInput{Milk: boolPtr(true)})

	require.NoError(t, err)
	assert.Equal(t, updated, profile)
}

func TestProfileService_UpdateProfile_NotFoundAnywhere(t *testing.T) {
	fx := createTestProfileService(t, ProfilePolicy{})
	ctx := context.Background()

	fx.primary.EXPECT().Update(mock.Anything, "user-1", mock.Anything).Return(nil, repository.ErrProfileNotFound)
	fx.secondary.EXPECT().FindByID(mock.Anything, "user-1").Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.UpdateProfile(ctx, "user-1", &usecase.UpdateProfileInput{Eggs: boolPtr(true)})

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	fx.primary.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_BackendFailureIsNotRetried(t *testing.T) {
	fx := createTestProfileService(t, ProfilePolicy{})
	ctx := context.Background()

	fx.primary.EXPECT().Update(mock.Anything, "user-1", mock.Anything).Return(nil, errors.New("too many connections")).Once()

	_, err := fx.service.UpdateProfile(ctx, "user-1", &usecase.UpdateProfileInput{Eggs: boolPtr(true)})

	requireBackendError(t, err, repository.StorePrimary)
	fx.secondary.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_SecondaryAsWriteStore(t *testing.T) {
	fx := createTestProfileService(t, ProfilePolicy{WriteStore: repository.StoreSecondary})
	ctx := context.Background()
	updated := storedProfile("user-1")
	updated.PeriodPlan = "term-2"

	fx.secondary.EXPECT().Update(mock.Anything, "user-1", mock.Anything).Return(updated, nil)
	fx.publisher.EXPECT().
		PublishProfileEvent(mock.Anything, mock.MatchedBy(func(e *service.ProfileEvent) bool {
			return e.Store == repository.StoreSecondary
		})).
		Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, "user-1", &usecase.UpdateProfileInput{PeriodPlan: strPtr("term-2")})

	require.NoError(t, err)
	assert.Equal(t, "term-2", profile.PeriodPlan)
	fx.primary.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_EmptyInputReturnsCurrentProfile(t *testing.T) {
	fx := createTestProfileService(t, ProfilePolicy{})
	ctx := context.Background()
	current := storedProfile("user-1")

	fx.primary.EXPECT().FindByID(mock.Anything, "user-1").Return(current, nil)

	profile, err := fx.service.UpdateProfile(ctx, "user-1", &usecase.UpdateProfileInput{})

	require.NoError(t, err)
	assert.Equal(t, current, profile)
	fx.primary.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishProfileEvent", mock.Anything, mock.Anything)
}

func TestPatchFields(t *testing.T) {
	tier := entity.IdentityTierVisitor
	patch := &entity.ProfilePatch{
		IdentityTier:   &tier,
		TreeNuts:       boolPtr(false),
		OtherAllergens: &[]string{},
	}

	assert.Equal(t, []string{"identityTier", "treeNuts", "otherAllergens"}, patchFields(patch))
	assert.Empty(t, patchFields(&entity.ProfilePatch{}))
}

func TestResolutionState_String(t *testing.T) {
	assert.Equal(t, "found_secondary", stateFoundSecondary.String())
	assert.Equal(t, "unknown", resolutionState(42).String())
}

func TestProfileService_UpdateProfile_ReadAfterWrite(t *testing.T) {
	tests := []struct {
		name       string
		writeStore string
		seedIn     string
	}{
		{name: "primary write store, record in primary", writeStore: repository.StorePrimary, seedIn: repository.StorePrimary},
		{name: "primary write store, record in secondary", writeStore: repository.StorePrimary, seedIn: repository.StoreSecondary},
		{name: "secondary write store, record in primary", writeStore: repository.StoreSecondary, seedIn: repository.StorePrimary},
		{name: "secondary write store, record in secondary", writeStore: repository.StoreSecondary, seedIn: repository.StoreSecondary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			primary := newMemoryStore(repository.StorePrimary)
			secondary := newMemoryStore(repository.StoreSecondary)
			seed := storedProfile("user-1")
			if tt.seedIn == repository.StorePrimary {
				primary.records[seed.ID] = seed
			} else {
				secondary.records[seed.ID] = seed
			}
			svc := createMemoryProfileService(t, ProfilePolicy{WriteStore: tt.writeStore}, primary, secondary)

			updated, err := svc.UpdateProfile(ctx, "user-1", &usecase.UpdateProfileInput{
				IdentityTier: strPtr("staff"),
				Peanuts:      boolPtr(true),
			})
			require.NoError(t, err)
			assert.Equal(t, entity.IdentityTierStaff, updated.IdentityTier)

			got, err := svc.GetProfile(ctx, "user-1")
			require.NoError(t, err)
			assert.Equal(t, entity.IdentityTierStaff, got.IdentityTier)
			assert.True(t, got.CoreAllergens.Peanuts)

			ensured, err := svc.EnsureProfile(ctx, "user-1", "user-1@campus.ac.uk")
			require.NoError(t, err)
			assert.Equal(t, got, ensured)
		})
	}
}

func TestProfileService_UpdateProfile_SameInputTwiceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	primary := newMemoryStore(repository.StorePrimary, storedProfile("user-1"))
	svc := createMemoryProfileService(t, ProfilePolicy{WriteStore: repository.StorePrimary}, primary, newMemoryStore(repository.StoreSecondary))
	input := &usecase.UpdateProfileInput{
		DietaryPreferences: &[]string{"Vegan", "Halal"},
		Shellfish:          boolPtr(true),
		OtherAllergens:     &[]string{"Celery"},
	}

	first, err := svc.UpdateProfile(ctx, "user-1", input)
	require.NoError(t, err)
	second, err := svc.UpdateProfile(ctx, "user-1", input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
