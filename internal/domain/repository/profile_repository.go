// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"unifeast/internal/domain/entity"
)

var (
	// ErrProfileNotFound is returned by a store when it holds no record for the id.
	// It is a normal, recoverable condition: callers fall back or create.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileAlreadyExists is returned by a conditional Create when the record is already present.
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

// Store names used in logs, errors and configuration.
const (
	StorePrimary   = "primary"
	StoreSecondary = "secondary"
)

// ProfileStore is one physical backend holding profile records.
// Implementations translate between their raw shape and entity.Profile through the normalizer.
// Any error other than the sentinels above is a backend failure.
type ProfileStore interface {
	// Name identifies the store ("primary" or "secondary").
	Name() string

	// FindByID returns the canonical profile or ErrProfileNotFound.
	FindByID(ctx context.Context, id string) (*entity.Profile, error)

	// Create writes profile only if no record exists for its ID and returns the stored snapshot.
	// It returns ErrProfileAlreadyExists instead of overwriting.
	Create(ctx context.Context, profile *entity.Profile) (*entity.Profile, error)

	// Update writes only the supplied fields and returns the snapshot as stored by the backend.
	// It returns ErrProfileNotFound when the record does not exist.
	Update(ctx context.Context, id string, patch *entity.ProfilePatch) (*entity.Profile, error)

	// Delete removes the record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error
}
