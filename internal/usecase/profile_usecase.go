// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"unifeast/internal/domain/entity"
)

// ProfileUsecase resolves, creates and updates the single canonical profile of a user
// across the primary and secondary stores.
type ProfileUsecase interface {
	// GetProfile consults the primary store, then the secondary store.
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)

	// CreateProfile writes a default profile to the authoritative store unless one exists there.
	CreateProfile(ctx context.Context, input *CreateProfileInput) (*entity.Profile, error)

	// UpdateProfile writes the supplied fields to the authoritative store.
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.Profile, error)

	// EnsureProfile returns the existing profile or creates a default one on first access.
	EnsureProfile(ctx context.Context, userID, email string) (*entity.Profile, error)

	// DeleteProfile removes the record from the named store. Operator use only.
	DeleteProfile(ctx context.Context, userID, store string) error
}

// --- Input DTOs ---

// CreateProfileInput defines the data required to create a profile.
type CreateProfileInput struct {
	UserID string `json:"-" validate:"required"`
	Email  string `json:"-" validate:"omitempty,email"`

	// Initial optionally seeds the new profile with form fields.
	Initial *UpdateProfileInput `json:"initial,omitempty"`
}

// UpdateProfileInput defines the user-editable fields. A nil field is left unchanged;
// user id, email and session data are not editable.
type UpdateProfileInput struct {
	DisplayName        *string   `json:"displayName,omitempty" validate:"omitempty,max=100"`
	IdentityTier       *string   `json:"identityTier,omitempty" validate:"omitempty,identity_tier"`
	DietaryPreferences *[]string `json:"dietaryPreferences,omitempty" validate:"omitempty,max=16,dive,dietary_tag"`
	PeriodPlan         *string   `json:"periodPlan,omitempty" validate:"omitempty,max=100"`
	Milk               *bool     `json:"milk,omitempty"`
	Eggs               *bool     `json:"eggs,omitempty"`
	Peanuts            *bool     `json:"peanuts,omitempty"`
	TreeNuts           *bool     `json:"treeNuts,omitempty"`
	Shellfish          *bool     `json:"shellfish,omitempty"`
	OtherAllergens     *[]string `json:"otherAllergens,omitempty" validate:"omitempty,max=50,dive,max=100,excludesall=0x2C"`
}

// ToPatch converts the input into a domain patch. It assumes the input has been validated.
func (in *UpdateProfileInput) ToPatch() *entity.ProfilePatch {
	if in == nil {
		return &entity.ProfilePatch{}
	}

	patch := &entity.ProfilePatch{
		DisplayName:    in.DisplayName,
		PeriodPlan:     in.PeriodPlan,
		Milk:           in.Milk,
		Eggs:           in.Eggs,
		Peanuts:        in.Peanuts,
		TreeNuts:       in.TreeNuts,
		Shellfish:      in.Shellfish,
		OtherAllergens: in.OtherAllergens,
	}
	if in.IdentityTier != nil {
		tier, _ := entity.ParseIdentityTier(*in.IdentityTier)
		patch.IdentityTier = &tier
	}
	if in.DietaryPreferences != nil {
		tags := make([]entity.DietaryPreference, 0, len(*in.DietaryPreferences))
		for _, raw := range *in.DietaryPreferences {
			tags = append(tags, entity.DietaryPreference(raw))
		}
		prefs := entity.NewDietaryPreferences(tags...)
		patch.DietaryPreferences = &prefs
	}

	return patch
}
