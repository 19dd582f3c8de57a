// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Profile is the canonical, backend-agnostic view of a user's dietary and allergy data.
// Exactly one Profile exists per user identifier regardless of which store holds it.
type Profile struct {
	ID                 string             // The authenticated user's identifier. Immutable once set.
	Email              string             // Login email captured at creation, never editable afterwards.
	DisplayName        string             // Free-text display name; may be empty.
	IdentityTier       IdentityTier       // Pricing tier. Unknown stored values are kept verbatim.
	DietaryPreferences DietaryPreferences // Sorted, duplicate-free dietary tags.
	PeriodPlan         string             // Meal-plan identifier.
	CoreAllergens      CoreAllergens      // The five fixed allergen flags.
	OtherAllergens     []string           // Free-text allergen labels beyond the fixed five.
	SessionData        string             // Opaque blob owned by the client; passed through untouched.
	CreatedAt          time.Time          // Backend-assigned creation time.
	UpdatedAt          time.Time          // Backend-assigned last modification time.
}

// NewProfile returns the default-valued profile written on first access.
func NewProfile(id, email string) *Profile {
	return &Profile{
		ID:                 id,
		Email:              email,
		IdentityTier:       IdentityTierStudent,
		DietaryPreferences: DietaryPreferences{},
		OtherAllergens:     []string{},
	}
}

// ProfilePatch carries the user-updatable subset of a Profile.
// A nil field means "leave unchanged". ID, Email and SessionData are deliberately absent.
type ProfilePatch struct {
	DisplayName        *string
	IdentityTier       *IdentityTier
	DietaryPreferences *DietaryPreferences
	PeriodPlan         *string
	Milk               *bool
	Eggs               *bool
	Peanuts            *bool
	TreeNuts           *bool
	Shellfish          *bool
	OtherAllergens     *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p *ProfilePatch) IsEmpty() bool {
	if p == nil {
		return true
	}

	return p.DisplayName == nil && p.IdentityTier == nil && p.DietaryPreferences == nil &&
		p.PeriodPlan == nil && p.Milk == nil && p.Eggs == nil && p.Peanuts == nil &&
		p.TreeNuts == nil && p.Shellfish == nil && p.OtherAllergens == nil
}

// ApplyTo writes every supplied field of the patch onto profile.
func (p *ProfilePatch) ApplyTo(profile *Profile) {
	if p == nil || profile == nil {
		return
	}
	if p.DisplayName != nil {
		profile.DisplayName = *p.DisplayName
	}
	if p.IdentityTier != nil {
		profile.IdentityTier = *p.IdentityTier
	}
	if p.DietaryPreferences != nil {
		profile.DietaryPreferences = NewDietaryPreferences(*p.DietaryPreferences...)
	}
	if p.PeriodPlan != nil {
		profile.PeriodPlan = *p.PeriodPlan
	}
	if p.Milk != nil {
		profile.CoreAllergens.Milk = *p.Milk
	}
	if p.Eggs != nil {
		profile.CoreAllergens.Eggs = *p.Eggs
	}
	if p.Peanuts != nil {
		profile.CoreAllergens.Peanuts = *p.Peanuts
	}
	if p.TreeNuts != nil {
		profile.CoreAllergens.TreeNuts = *p.TreeNuts
	}
	if p.Shellfish != nil {
		profile.CoreAllergens.Shellfish = *p.Shellfish
	}
	if p.OtherAllergens != nil {
		profile.OtherAllergens = append([]string{}, (*p.OtherAllergens)...)
	}
}

// Identity is what the authentication collaborator hands to the core once a session exists.
type Identity struct {
	UserID string
	Email  string
}
