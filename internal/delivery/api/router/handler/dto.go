package handler

import (
	"time"

	"unifeast/internal/domain/entity"
)

// ProfileResponse is the wire shape of a canonical profile.
type ProfileResponse struct {
	UserID             string    `json:"userId"`
	Email              string    `json:"email"`
	DisplayName        string    `json:"displayName"`
	IdentityTier       string    `json:"identityTier"`
	DietaryPreferences []string  `json:"dietaryPreferences"`
	PeriodPlan         string    `json:"periodPlan"`
	Milk               bool      `json:"milk"`
	Eggs               bool      `json:"eggs"`
	Peanuts            bool      `json:"peanuts"`
	TreeNuts           bool      `json:"treeNuts"`
	Shellfish          bool      `json:"shellfish"`
	OtherAllergens     []string  `json:"otherAllergens"`
	SessionData        string    `json:"sessionData,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func toProfileResponse(p *entity.Profile) *ProfileResponse {
	others := p.OtherAllergens
	if others == nil {
		others = []string{}
	}

	return &ProfileResponse{
		UserID:             p.ID,
		Email:              p.Email,
		DisplayName:        p.DisplayName,
		IdentityTier:       p.IdentityTier.String(),
		DietaryPreferences: p.DietaryPreferences.Strings(),
		PeriodPlan:         p.PeriodPlan,
		Milk:               p.CoreAllergens.Milk,
		Eggs:               p.CoreAllergens.Eggs,
		Peanuts:            p.CoreAllergens.Peanuts,
		TreeNuts:           p.CoreAllergens.TreeNuts,
		Shellfish:          p.CoreAllergens.Shellfish,
		OtherAllergens:     others,
		SessionData:        p.SessionData,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// MenuResponse is the assembled menu for the caller.
type MenuResponse struct {
	Personalized bool                `json:"personalized"`
	Items        []*entity.MenuEntry `json:"items"`
}
