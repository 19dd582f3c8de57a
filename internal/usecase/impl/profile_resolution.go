package impl

import (
	"context"
	"log/slog"

	"unifeast/internal/domain/entity"
	domainerrors "unifeast/internal/domain/errors"
	"unifeast/internal/domain/repository"
	"unifeast/internal/domain/service"

	"github.com/pkg/errors"
)

// resolutionState is where a profile lookup ended up.
type resolutionState int

const (
	stateUnresolved resolutionState = iota
	stateFoundPrimary
	stateFoundSecondary
	stateCreated
	stateFailed
)

func (s resolutionState) String() string {
	switch s {
	case stateUnresolved:
		return "unresolved"
	case stateFoundPrimary:
		return "found_primary"
	case stateFoundSecondary:
		return "found_secondary"
	case stateCreated:
		return "created"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// resolution is the outcome of resolve or create. profile is set for the found and
// created states, err only for stateFailed.
type resolution struct {
	state   resolutionState
	profile *entity.Profile
	err     error
}

// resolve looks the user up in the write store, then in the other store. With the
// default policy that is primary then secondary. A record copied into the write store
// by an update must win over the original left in the other store.
// Unresolved means both stores positively reported absence.
func (srv *profileService) resolve(ctx context.Context, userID string) resolution {
	first, second := srv.writeStore(), srv.readOnlyStore()

	profile, err := srv.findIn(ctx, first, userID)
	if err == nil {
		return resolution{state: srv.foundState(first), profile: profile}
	}

	if !errors.Is(err, repository.ErrProfileNotFound) {
		return srv.resolveAfterFailure(ctx, second, userID, err)
	}

	profile, err = srv.findIn(ctx, second, userID)
	switch {
	case err == nil:
		return resolution{state: srv.foundState(second), profile: profile}
	case errors.Is(err, repository.ErrProfileNotFound):
		return resolution{state: stateUnresolved}
	default:
		return resolution{state: stateFailed, err: err}
	}
}

// resolveAfterFailure applies the fallback policy once the write store has failed. Only a
// found record in the other store can replace the failure; absence there never turns an
// outage into NotFound.
func (srv *profileService) resolveAfterFailure(
	ctx context.Context,
	other repository.ProfileStore,
	userID string,
	firstErr error,
) resolution {
	failed := resolution{state: stateFailed, err: firstErr}
	if !srv.policy.FallbackOnPrimaryError {
		return failed
	}

	profile, err := srv.findIn(ctx, other, userID)
	if err != nil {
		srv.log(ctx).Warn("Fallback store could not replace failing write store",
			slog.String("userID", userID),
			slog.String("fallbackStore", other.Name()),
			slog.Any("writeStoreError", firstErr),
			slog.Any("fallbackError", err),
		)

		return failed
	}

	srv.log(ctx).Warn("Write store failed, served profile from fallback store",
		slog.String("userID", userID),
		slog.String("fallbackStore", other.Name()),
		slog.Any("error", firstErr),
	)

	return resolution{state: srv.foundState(other), profile: profile}
}

// create writes profile to the write store. If a record already exists there, that record
// is re-read and returned as found.
func (srv *profileService) create(ctx context.Context, profile *entity.Profile) resolution {
	target := srv.writeStore()

	created, err := srv.createIn(ctx, target, profile)
	if err == nil {
		srv.log(ctx).Info("Profile created",
			slog.String("userID", profile.ID),
			slog.String("store", target.Name()),
		)
		srv.publish(ctx, service.EventProfileCreated, profile.ID, target.Name(), nil)

		return resolution{state: stateCreated, profile: created}
	}
	if !errors.Is(err, repository.ErrProfileAlreadyExists) {
		return resolution{state: stateFailed, err: err}
	}

	existing, err := srv.findIn(ctx, target, profile.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			err = domainerrors.ErrProfileCreationFailed.WithDetails("profile disappeared after a concurrent create")
		}

		return resolution{state: stateFailed, err: err}
	}

	return resolution{state: srv.foundState(target), profile: existing}
}

func (srv *profileService) foundState(store repository.ProfileStore) resolutionState {
	if store == srv.secondary {
		return stateFoundSecondary
	}

	return stateFoundPrimary
}

func (srv *profileService) writeStore() repository.ProfileStore {
	if srv.policy.WriteStore == repository.StoreSecondary {
		return srv.secondary
	}

	return srv.primary
}

func (srv *profileService) readOnlyStore() repository.ProfileStore {
	if srv.writeStore() == srv.primary {
		return srv.secondary
	}

	return srv.primary
}

// storeContext bounds a single store call by the configured timeout.
func (srv *profileService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if srv.policy.StoreTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, srv.policy.StoreTimeout)
}

// findIn passes ErrProfileNotFound through and turns every other failure into a BackendError.
func (srv *profileService) findIn(ctx context.Context, store repository.ProfileStore, userID string) (*entity.Profile, error) {
	callCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	profile, err := store.FindByID(callCtx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewBackendError(store.Name(), "find", err)
	}

	return profile, nil
}

// createIn passes ErrProfileAlreadyExists through and turns every other failure into a BackendError.
func (srv *profileService) createIn(ctx context.Context, store repository.ProfileStore, profile *entity.Profile) (*entity.Profile, error) {
	callCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	created, err := store.Create(callCtx, profile)
	if err != nil {
		if errors.Is(err, repository.ErrProfileAlreadyExists) {
			return nil, repository.ErrProfileAlreadyExists
		}

		return nil, domainerrors.NewBackendError(store.Name(), "create", err)
	}

	return created, nil
}

// updateIn passes ErrProfileNotFound through and turns every other failure into a BackendError.
func (srv *profileService) updateIn(ctx context.Context, store repository.ProfileStore, userID string, patch *entity.ProfilePatch) (*entity.Profile, error) {
	callCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	updated, err := store.Update(callCtx, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewBackendError(store.Name(), "update", err)
	}

	return updated, nil
}
