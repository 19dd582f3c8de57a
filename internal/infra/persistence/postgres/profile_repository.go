// Package postgres contains the primary profile store, implemented with GORM on PostgreSQL.
package postgres

import (
	"context"

	"unifeast/internal/domain/entity"
	"unifeast/internal/domain/repository"
	"unifeast/internal/infra/persistence/model"
	"unifeast/internal/infra/persistence/normalizer"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements repository.ProfileStore on the 'profiles' table.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates the primary profile store.
func NewProfileRepository(db *gorm.DB) repository.ProfileStore {
	return &profileRepository{db: db}
}

func (repo *profileRepository) Name() string {
	return repository.StorePrimary
}

// FindByID retrieves a single profile by user id.
func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	var row model.ProfileModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return normalizer.FromPrimary(&row), nil
}

// Create inserts the profile unless a row with the same id exists.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) (*entity.Profile, error) {
	row := normalizer.ToPrimary(profile)
	if row == nil {
		return nil, errors.New("profile is nil")
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}, clause.Returning{}).
		Create(row)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrProfileAlreadyExists
		}

		return nil, errors.Wrap(result.Error, "failed to create profile")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProfileAlreadyExists
	}

	return normalizer.FromPrimary(row), nil
}

// Update writes the supplied columns and returns the row as stored after the update.
func (repo *profileRepository) Update(ctx context.Context, id string, patch *entity.ProfilePatch) (*entity.Profile, error) {
	columns := normalizer.PrimaryColumns(patch)
	if len(columns) == 0 {
		return repo.FindByID(ctx, id)
	}

	var row model.ProfileModel
	result := repo.db.WithContext(ctx).
		Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProfileNotFound
	}

	return normalizer.FromPrimary(&row), nil
}

// Delete removes the profile row; a missing row is not an error.
func (repo *profileRepository) Delete(ctx context.Context, id string) error {
	err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProfileModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete profile")
	}

	return nil
}
