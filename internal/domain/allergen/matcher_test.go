package allergen

import (
	"testing"

	"unifeast/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestHasConflict_PartialMatchIsCaseInsensitive(t *testing.T) {
	profile := &entity.Profile{OtherAllergens: []string{"Tree Nuts"}}
	item := &entity.Item{AllergenTags: []string{"peanuts", "nuts"}}

	assert.True(t, HasConflict(profile, item))
	assert.Equal(t, []string{"nuts"}, Conflicts(profile, item))
}

func TestHasConflict_CoreFlagScenario(t *testing.T) {
	profile := &entity.Profile{
		CoreAllergens:  entity.CoreAllergens{Peanuts: true},
		OtherAllergens: []string{},
	}

	assert.True(t, HasConflict(profile, &entity.Item{AllergenTags: []string{"peanuts", "gluten"}}))
	assert.False(t, HasConflict(profile, &entity.Item{AllergenTags: []string{"milk", "eggs"}}))
}

func TestHasConflict_TagContainsLabel(t *testing.T) {
	profile := &entity.Profile{OtherAllergens: []string{"fish"}}
	item := &entity.Item{AllergenTags: []string{"Shellfish and FISH sauce"}}

	assert.True(t, HasConflict(profile, item))
}

func TestHasConflict_ExtraAllergenLabelMatchesShortTag(t *testing.T) {
	profile := &entity.Profile{OtherAllergens: []string{"Cereals containing gluten"}}

	assert.True(t, HasConflict(profile, &entity.Item{AllergenTags: []string{"gluten"}}))
}

func TestHasConflict_NoAllergensNeverConflicts(t *testing.T) {
	profile := entity.NewProfile("user-1", "user@example.ac.uk")
	items := []*entity.Item{
		{AllergenTags: []string{"milk", "eggs"}},
		{AllergenTags: []string{"peanuts", "gluten"}},
		{AllergenTags: []string{""}},
		{},
	}

	for _, item := range items {
		assert.False(t, HasConflict(profile, item))
	}
}

func TestHasConflict_EmptyItemTags(t *testing.T) {
	profile := &entity.Profile{CoreAllergens: entity.CoreAllergens{Milk: true, Eggs: true}}

	assert.False(t, HasConflict(profile, &entity.Item{}))
	assert.False(t, HasConflict(profile, &entity.Item{AllergenTags: []string{}}))
}

func TestHasConflict_BlankLabelsAreIgnored(t *testing.T) {
	// A blank label would otherwise be contained in every tag.
	profile := &entity.Profile{OtherAllergens: []string{"", "   "}}
	item := &entity.Item{AllergenTags: []string{"milk", " "}}

	assert.False(t, HasConflict(profile, item))
}

func TestHasConflict_NilInputs(t *testing.T) {
	assert.False(t, HasConflict(nil, &entity.Item{AllergenTags: []string{"milk"}}))
	assert.False(t, HasConflict(&entity.Profile{CoreAllergens: entity.CoreAllergens{Milk: true}}, nil))
}

func TestUserLabels(t *testing.T) {
	profile := &entity.Profile{
		CoreAllergens:  entity.CoreAllergens{Milk: true, TreeNuts: true},
		OtherAllergens: []string{" Sesame seeds ", "", "Mustard"},
	}

	assert.Equal(t, []string{"milk", "tree nuts", "sesame seeds", "mustard"}, UserLabels(profile))
}
