package handler

import (
	"net/http"

	"unifeast/internal/delivery/api/response"
	"unifeast/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// VocabularyResponse lists the values the profile form offers.
type VocabularyResponse struct {
	IdentityTiers      []entity.IdentityTier       `json:"identityTiers"`
	DietaryPreferences []entity.DietaryPreference  `json:"dietaryPreferences"`
	CoreAllergens      []entity.AllergenDefinition `json:"coreAllergens"`
	ExtraAllergens     []entity.AllergenDefinition `json:"extraAllergens"`
}

// GetVocabulary returns the fixed option lists of the profile form.
func GetVocabulary(c echo.Context) error {
	return response.Success(c, http.StatusOK, &VocabularyResponse{
		IdentityTiers:      entity.IdentityTiers,
		DietaryPreferences: entity.DietaryVocabulary,
		CoreAllergens:      entity.CoreAllergenDefinitions,
		ExtraAllergens:     entity.ExtraAllergenDefinitions,
	})
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
