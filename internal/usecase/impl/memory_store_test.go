package impl

import (
	"context"
	"slices"
	"sync"
	"testing"

	"unifeast/internal/domain/entity"
	"unifeast/internal/domain/repository"
	mockSvc "unifeast/internal/mocks/service"
	"unifeast/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// memoryStore is a ProfileStore kept in a map, for tests that read back what they wrote.
type memoryStore struct {
	name string

	mu      sync.Mutex
	records map[string]*entity.Profile
}

func newMemoryStore(name string, seed ...*entity.Profile) *memoryStore {
	store := &memoryStore{name: name, records: map[string]*entity.Profile{}}
	for _, profile := range seed {
		store.records[profile.ID] = cloneProfile(profile)
	}

	return store
}

func cloneProfile(profile *entity.Profile) *entity.Profile {
	cloned := *profile
	cloned.DietaryPreferences = slices.Clone(profile.DietaryPreferences)
	cloned.OtherAllergens = slices.Clone(profile.OtherAllergens)

	return &cloned
}

func (s *memoryStore) Name() string { return s.name }

func (s *memoryStore) FindByID(_ context.Context, id string) (*entity.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.records[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return cloneProfile(profile), nil
}

func (s *memoryStore) Create(_ context.Context, profile *entity.Profile) (*entity.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[profile.ID]; ok {
		return nil, repository.ErrProfileAlreadyExists
	}
	s.records[profile.ID] = cloneProfile(profile)

	return cloneProfile(profile), nil
}

func (s *memoryStore) Update(_ context.Context, id string, patch *entity.ProfilePatch) (*entity.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.records[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	patch.ApplyTo(profile)

	return cloneProfile(profile), nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, id)

	return nil
}

// createMemoryProfileService wires the service to in-memory stores with a no-op locker and publisher.
func createMemoryProfileService(t *testing.T, policy ProfilePolicy, primary, secondary *memoryStore) usecase.ProfileUsecase {
	locker := mockSvc.NewMockLocker(t)
	locker.EXPECT().
		Acquire(mock.Anything, mock.Anything).
		Return(func(context.Context) error { return nil }, nil).
		Maybe()

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishProfileEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return NewProfileService(ProfileServiceParams{
		Primary:   primary,
		Secondary: secondary,
		Locker:    locker,
		Publisher: publisher,
		Policy:    policy,
		Logger:    newDiscardLogger(),
	})
}
