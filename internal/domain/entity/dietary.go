package entity

import (
	"slices"
	"strings"
)

// DietaryPreference is a single dietary tag.
type DietaryPreference string

const (
	DietaryHalal      DietaryPreference = "Halal"
	DietaryVegan      DietaryPreference = "Vegan"
	DietaryVegetarian DietaryPreference = "Vegetarian"
	DietaryGlutenFree DietaryPreference = "Gluten-Free"
	DietaryKosher     DietaryPreference = "Kosher"
	DietaryDairyFree  DietaryPreference = "Dairy-Free"
	DietaryNutFree    DietaryPreference = "Nut-Free"
)

// DietaryVocabulary is the fixed set of tags a user may select, in display order.
var DietaryVocabulary = []DietaryPreference{
	DietaryHalal,
	DietaryVegan,
	DietaryVegetarian,
	DietaryGlutenFree,
	DietaryKosher,
	DietaryDairyFree,
	DietaryNutFree,
}

// LookupDietaryPreference resolves raw to its canonical vocabulary spelling.
func LookupDietaryPreference(raw string) (DietaryPreference, bool) {
	raw = strings.TrimSpace(raw)
	for _, pref := range DietaryVocabulary {
		if strings.EqualFold(string(pref), raw) {
			return pref, true
		}
	}

	return "", false
}

// DietaryPreferences is an order-insensitive set of tags, kept sorted and duplicate-free.
type DietaryPreferences []DietaryPreference

// NewDietaryPreferences builds the canonical set from tags.
// Known tags take their vocabulary spelling; unknown non-blank tags are kept as given.
func NewDietaryPreferences(tags ...DietaryPreference) DietaryPreferences {
	set := make(DietaryPreferences, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(string(tag))
		if trimmed == "" {
			continue
		}
		canonical, ok := LookupDietaryPreference(trimmed)
		if !ok {
			canonical = DietaryPreference(trimmed)
		}
		if !slices.Contains(set, canonical) {
			set = append(set, canonical)
		}
	}
	slices.Sort(set)

	return set
}

// Contains reports whether the set holds tag.
func (d DietaryPreferences) Contains(tag DietaryPreference) bool {
	return slices.Contains(d, tag)
}

// Strings returns the tags as plain strings.
func (d DietaryPreferences) Strings() []string {
	out := make([]string, 0, len(d))
	for _, tag := range d {
		out = append(out, string(tag))
	}

	return out
}
