// Package allergen decides whether a catalog item may conflict with a user's declared allergens.
//
// Catalog tags and user labels are maintained independently and differ in granularity
// ("tree nuts" against "nuts"), so a pair matches when either side contains the other,
// case-insensitively. A false alarm is preferred over a missed allergen.
package allergen

import (
	"strings"

	"unifeast/internal/domain/entity"
)

// UserLabels returns the user's full allergen set: a label for every core flag that is set,
// followed by every free-text label. Labels are trimmed and lowercased; blanks are dropped.
func UserLabels(profile *entity.Profile) []string {
	if profile == nil {
		return nil
	}

	labels := make([]string, 0, len(profile.OtherAllergens)+len(entity.CoreAllergenDefinitions))
	labels = appendNormalized(labels, profile.CoreAllergens.Labels())
	labels = appendNormalized(labels, profile.OtherAllergens)

	return labels
}

// HasConflict reports whether any user label and item tag contain one another.
func HasConflict(profile *entity.Profile, item *entity.Item) bool {
	return len(Conflicts(profile, item)) > 0
}

// Conflicts returns the item tags, as written in the catalog, that match a user label.
func Conflicts(profile *entity.Profile, item *entity.Item) []string {
	if profile == nil || item == nil || len(item.AllergenTags) == 0 {
		return nil
	}

	userLabels := UserLabels(profile)
	if len(userLabels) == 0 {
		return nil
	}

	var matched []string
	for _, tag := range item.AllergenTags {
		normalizedTag := normalize(tag)
		if normalizedTag == "" {
			continue
		}
		for _, label := range userLabels {
			if strings.Contains(label, normalizedTag) || strings.Contains(normalizedTag, label) {
				matched = append(matched, tag)

				break
			}
		}
	}

	return matched
}

func appendNormalized(dst, labels []string) []string {
	for _, label := range labels {
		if normalized := normalize(label); normalized != "" {
			dst = append(dst, normalized)
		}
	}

	return dst
}

func normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
