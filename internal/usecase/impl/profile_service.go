// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"unifeast/config"
	deliverycontext "unifeast/internal/delivery/context"
	"unifeast/internal/domain/entity"
	domainerrors "unifeast/internal/domain/errors"
	"unifeast/internal/domain/repository"
	"unifeast/internal/domain/service"
	"unifeast/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const lockReleaseTimeout = 2 * time.Second

// ProfilePolicy decides how the two stores are combined.
type ProfilePolicy struct {
	// WriteStore names the authoritative store for creates and updates.
	WriteStore string
	// FallbackOnPrimaryError lets a record found in the other store stand in for a failing write store.
	FallbackOnPrimaryError bool
	// StoreTimeout bounds every individual store call; zero means no extra bound.
	StoreTimeout time.Duration
}

// PolicyFromConfig reads the profile section of the configuration.
func PolicyFromConfig(cfg *config.Config) ProfilePolicy {
	if cfg == nil || cfg.Profile == nil {
		return ProfilePolicy{WriteStore: repository.StorePrimary}
	}

	return ProfilePolicy{
		WriteStore:             cfg.Profile.WriteStore,
		FallbackOnPrimaryError: cfg.Profile.FallbackOnPrimaryError,
		StoreTimeout:           cfg.Profile.StoreTimeout,
	}
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	primary   repository.ProfileStore
	secondary repository.ProfileStore
	locker    service.Locker
	publisher service.EventPublisher
	validate  *validator.Validate
	policy    ProfilePolicy
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	Primary   repository.ProfileStore `name:"primaryStore"`
	Secondary repository.ProfileStore `name:"secondaryStore"`
	Locker    service.Locker
	Publisher service.EventPublisher
	Policy    ProfilePolicy
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		primary:   params.Primary,
		secondary: params.Secondary,
		locker:    params.Locker,
		publisher: params.Publisher,
		validate:  usecase.NewValidator(),
		policy:    params.Policy,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the canonical profile from whichever store holds it.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}

	res := srv.resolve(ctx, userID)
	switch res.state {
	case stateFoundPrimary, stateFoundSecondary:
		return res.profile, nil
	case stateUnresolved:
		return nil, errors.Wrapf(domainerrors.ErrProfileNotFound, "no profile for user %s", userID)
	default:
		return nil, res.err
	}
}

// CreateProfile writes a default profile, optionally seeded with form fields, to the write store.
func (srv *profileService) CreateProfile(ctx context.Context, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("input is required")
	}
	if err := srv.validate.StructCtx(ctx, input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(usecase.DescribeValidationError(err))
	}

	profile := entity.NewProfile(input.UserID, input.Email)
	if input.Initial != nil {
		input.Initial.ToPatch().ApplyTo(profile)
	}

	res := srv.create(ctx, profile)
	if res.state == stateFailed {
		return nil, res.err
	}

	return res.profile, nil
}

// EnsureProfile returns the user's profile, creating the default one on first access.
// Concurrent calls for one user are serialized by the onboarding lock; the conditional
// create keeps the outcome single even when the lock is unavailable.
func (srv *profileService) EnsureProfile(ctx context.Context, userID, email string) (*entity.Profile, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}

	release := srv.acquireOnboardingLock(ctx, userID)
	defer release()

	res := srv.resolve(ctx, userID)
	switch res.state {
	case stateFoundPrimary, stateFoundSecondary:
		return res.profile, nil
	case stateFailed:
		return nil, res.err
	}

	res = srv.create(ctx, entity.NewProfile(userID, email))
	if res.state == stateFailed {
		return nil, res.err
	}

	return res.profile, nil
}

// UpdateProfile validates the input, then writes the supplied fields to the write store.
func (srv *profileService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}
	if input == nil {
		input = &usecase.UpdateProfileInput{}
	}
	if err := srv.validate.StructCtx(ctx, input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(usecase.DescribeValidationError(err))
	}

	patch := input.ToPatch()
	if patch.IsEmpty() {
		return srv.GetProfile(ctx, userID)
	}

	target, other := srv.writeStore(), srv.readOnlyStore()

	updated, err := srv.updateIn(ctx, target, userID, patch)
	if errors.Is(err, repository.ErrProfileNotFound) {
		updated, err = srv.copyThenUpdate(ctx, target, other, userID, patch)
	}
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile updated",
		slog.String("userID", userID),
		slog.String("store", target.Name()),
		slog.Any("fields", patchFields(patch)),
	)
	srv.publish(ctx, service.EventProfileUpdated, userID, target.Name(), patchFields(patch))

	return updated, nil
}

// DeleteProfile removes the record from one store.
func (srv *profileService) DeleteProfile(ctx context.Context, userID, store string) error {
	if userID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}

	var target repository.ProfileStore
	switch store {
	case repository.StorePrimary:
		target = srv.primary
	case repository.StoreSecondary:
		target = srv.secondary
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown store " + store)
	}

	callCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	if err := target.Delete(callCtx, userID); err != nil {
		return domainerrors.NewBackendError(target.Name(), "delete", err)
	}

	srv.log(ctx).Warn("Profile deleted", slog.String("userID", userID), slog.String("store", target.Name()))

	return nil
}

// copyThenUpdate moves a record that only the other store holds into target, then applies patch.
func (srv *profileService) copyThenUpdate(
	ctx context.Context,
	target, other repository.ProfileStore,
	userID string,
	patch *entity.ProfilePatch,
) (*entity.Profile, error) {
	existing, err := srv.findIn(ctx, other, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrProfileNotFound, "no profile for user %s", userID)
		}

		return nil, err
	}

	if _, err := srv.createIn(ctx, target, existing); err != nil && !errors.Is(err, repository.ErrProfileAlreadyExists) {
		return nil, err
	}

	srv.log(ctx).Info("Profile copied into write store",
		slog.String("userID", userID),
		slog.String("from", other.Name()),
		slog.String("to", target.Name()),
	)

	updated, err := srv.updateIn(ctx, target, userID, patch)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrProfileNotFound, "profile for user %s vanished during update", userID)
	}

	return updated, err
}

// acquireOnboardingLock takes the per-user lock. When the lock cannot be taken the caller
// proceeds unlocked and relies on the conditional create.
func (srv *profileService) acquireOnboardingLock(ctx context.Context, userID string) func() {
	release, err := srv.locker.Acquire(ctx, "profile:"+userID)
	if err != nil {
		srv.log(ctx).Warn("Onboarding lock unavailable, continuing without it",
			slog.String("userID", userID),
			slog.Any("error", err),
		)

		return func() {}
	}

	return func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockReleaseTimeout)
		defer cancel()

		if err := release(releaseCtx); err != nil {
			srv.log(ctx).Warn("Failed to release onboarding lock",
				slog.String("userID", userID),
				slog.Any("error", err),
			)
		}
	}
}

func (srv *profileService) publish(ctx context.Context, eventType, userID, store string, fields []string) {
	event := &service.ProfileEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		Store:      store,
		Fields:     fields,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishProfileEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish profile event",
			slog.String("eventType", eventType),
			slog.String("userID", userID),
			slog.Any("error", err),
		)
	}
}

// patchFields lists the supplied fields of patch by their API names.
func patchFields(patch *entity.ProfilePatch) []string {
	var fields []string
	add := func(set bool, name string) {
		if set {
			fields = append(fields, name)
		}
	}

	add(patch.DisplayName != nil, "displayName")
	add(patch.IdentityTier != nil, "identityTier")
	add(patch.DietaryPreferences != nil, "dietaryPreferences")
	add(patch.PeriodPlan != nil, "periodPlan")
	add(patch.Milk != nil, "milk")
	add(patch.Eggs != nil, "eggs")
	add(patch.Peanuts != nil, "peanuts")
	add(patch.TreeNuts != nil, "treeNuts")
	add(patch.Shellfish != nil, "shellfish")
	add(patch.OtherAllergens != nil, "otherAllergens")

	return fields
}
