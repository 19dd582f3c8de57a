// Package normalizer converts between the raw record shapes of the profile stores
// and the canonical entity.Profile.
//
// Every conversion uses keyed literals naming all fields. Adding a field to
// entity.Profile breaks the field-count test in this package until each
// direction decides what to do with it.
package normalizer

import (
	"strings"
	"time"

	"unifeast/internal/domain/entity"
	"unifeast/internal/infra/persistence/model"
)

const labelSeparator = ","

// FromPrimary converts a primary store row into the canonical profile.
func FromPrimary(m *model.ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	return &entity.Profile{
		ID:                 m.ID,
		Email:              m.Email,
		DisplayName:        m.UserName,
		IdentityTier:       entity.IdentityTier(m.UserIdentity),
		DietaryPreferences: dietaryFromLabels(SplitLabels(m.DietaryPreferences)),
		PeriodPlan:         m.PeriodPlan,
		CoreAllergens: entity.CoreAllergens{
			Milk:      m.MilkAllergy,
			Eggs:      m.EggsAllergy,
			Peanuts:   m.PeanutsAllergy,
			TreeNuts:  m.TreeNutsAllergy,
			Shellfish: m.ShellfishAllergy,
		},
		OtherAllergens: SplitLabels(m.OtherAllergens),
		SessionData:    "",
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

// ToPrimary converts a canonical profile into a primary store row.
// The primary store has no session data column; SessionData is dropped.
func ToPrimary(p *entity.Profile) *model.ProfileModel {
	if p == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:                 p.ID,
		Email:              p.Email,
		UserName:           p.DisplayName,
		UserIdentity:       string(p.IdentityTier),
		DietaryPreferences: JoinLabels(p.DietaryPreferences.Strings()),
		PeriodPlan:         p.PeriodPlan,
		MilkAllergy:        p.CoreAllergens.Milk,
		EggsAllergy:        p.CoreAllergens.Eggs,
		PeanutsAllergy:     p.CoreAllergens.Peanuts,
		TreeNutsAllergy:    p.CoreAllergens.TreeNuts,
		ShellfishAllergy:   p.CoreAllergens.Shellfish,
		OtherAllergens:     JoinLabels(p.OtherAllergens),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// FromSecondary converts a secondary store item into the canonical profile.
// Timestamps that do not parse as RFC 3339 are left zero.
func FromSecondary(item *model.UserItem) *entity.Profile {
	if item == nil {
		return nil
	}

	return &entity.Profile{
		ID:                 item.UserID,
		Email:              item.Email,
		DisplayName:        item.UserName,
		IdentityTier:       entity.IdentityTier(item.UserIdentity),
		DietaryPreferences: dietaryFromLabels(SplitLabels(item.DietaryPreferences)),
		PeriodPlan:         item.PeriodPlan,
		CoreAllergens: entity.CoreAllergens{
			Milk:      item.MilkAllergy,
			Eggs:      item.EggsAllergy,
			Peanuts:   item.PeanutsAllergy,
			TreeNuts:  item.TreeNutsAllergy,
			Shellfish: item.ShellfishAllergy,
		},
		OtherAllergens: NormalizeLabels(item.OtherAllergies),
		SessionData:    item.SessionData,
		CreatedAt:      parseTimestamp(item.CreatedAt),
		UpdatedAt:      parseTimestamp(item.UpdatedAt),
	}
}

// ToSecondary converts a canonical profile into a secondary store item.
func ToSecondary(p *entity.Profile) *model.UserItem {
	if p == nil {
		return nil
	}

	return &model.UserItem{
		UserID:             p.ID,
		Email:              p.Email,
		UserName:           p.DisplayName,
		UserIdentity:       string(p.IdentityTier),
		DietaryPreferences: JoinLabels(p.DietaryPreferences.Strings()),
		PeriodPlan:         p.PeriodPlan,
		MilkAllergy:        p.CoreAllergens.Milk,
		EggsAllergy:        p.CoreAllergens.Eggs,
		PeanutsAllergy:     p.CoreAllergens.Peanuts,
		TreeNutsAllergy:    p.CoreAllergens.TreeNuts,
		ShellfishAllergy:   p.CoreAllergens.Shellfish,
		OtherAllergies:     NormalizeLabels(p.OtherAllergens),
		SessionData:        p.SessionData,
		CreatedAt:          FormatTimestamp(p.CreatedAt),
		UpdatedAt:          FormatTimestamp(p.UpdatedAt),
	}
}

// PrimaryColumns maps the supplied fields of patch to primary store column values.
func PrimaryColumns(patch *entity.ProfilePatch) map[string]any {
	return patchValues(patch, primaryKeys, JoinLabels)
}

// SecondaryAttributes maps the supplied fields of patch to secondary store attribute values.
func SecondaryAttributes(patch *entity.ProfilePatch) map[string]any {
	return patchValues(patch, secondaryKeys, func(labels []string) any { return NormalizeLabels(labels) })
}

// SplitLabels splits a comma-joined label string, trimming each label and dropping empty ones.
func SplitLabels(raw string) []string {
	return NormalizeLabels(strings.Split(raw, labelSeparator))
}

// JoinLabels joins labels with commas, never emitting leading, trailing or doubled separators.
func JoinLabels(labels []string) string {
	return strings.Join(NormalizeLabels(labels), labelSeparator)
}

// NormalizeLabels trims labels and drops blank ones, keeping every other label and the
// original order. The result is never nil.
func NormalizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

// FormatTimestamp renders t the way the secondary store keeps timestamps.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return t.UTC()
}

func dietaryFromLabels(labels []string) entity.DietaryPreferences {
	tags := make([]entity.DietaryPreference, 0, len(labels))
	for _, label := range labels {
		tags = append(tags, entity.DietaryPreference(label))
	}

	return entity.NewDietaryPreferences(tags...)
}

type fieldKeys struct {
	displayName, identityTier, dietary, periodPlan string
	milk, eggs, peanuts, treeNuts, shellfish       string
	otherAllergens                                 string
}

var primaryKeys = fieldKeys{
	displayName:    model.ColumnUserName,
	identityTier:   model.ColumnUserIdentity,
	dietary:        model.ColumnDietaryPreferences,
	periodPlan:     model.ColumnPeriodPlan,
	milk:           model.ColumnMilkAllergy,
	eggs:           model.ColumnEggsAllergy,
	peanuts:        model.ColumnPeanutsAllergy,
	treeNuts:       model.ColumnTreeNutsAllergy,
	shellfish:      model.ColumnShellfishAllergy,
	otherAllergens: model.ColumnOtherAllergens,
}

var secondaryKeys = fieldKeys{
	displayName:    model.AttrUserName,
	identityTier:   model.AttrUserIdentity,
	dietary:        model.AttrDietaryPreferences,
	periodPlan:     model.AttrPeriodPlan,
	milk:           model.AttrMilkAllergy,
	eggs:           model.AttrEggsAllergy,
	peanuts:        model.AttrPeanutsAllergy,
	treeNuts:       model.AttrTreeNutsAllergy,
	shellfish:      model.AttrShellfishAllergy,
	otherAllergens: model.AttrOtherAllergies,
}

func patchValues[L any](patch *entity.ProfilePatch, keys fieldKeys, encodeLabels func([]string) L) map[string]any {
	values := make(map[string]any)
	if patch == nil {
		return values
	}

	if patch.DisplayName != nil {
		values[keys.displayName] = *patch.DisplayName
	}
	if patch.IdentityTier != nil {
		values[keys.identityTier] = string(*patch.IdentityTier)
	}
	if patch.DietaryPreferences != nil {
		values[keys.dietary] = JoinLabels(entity.NewDietaryPreferences(*patch.DietaryPreferences...).Strings())
	}
	if patch.PeriodPlan != nil {
		values[keys.periodPlan] = *patch.PeriodPlan
	}
	if patch.Milk != nil {
		values[keys.milk] = *patch.Milk
	}
	if patch.Eggs != nil {
		values[keys.eggs] = *patch.Eggs
	}
	if patch.Peanuts != nil {
		values[keys.peanuts] = *patch.Peanuts
	}
	if patch.TreeNuts != nil {
		values[keys.treeNuts] = *patch.TreeNuts
	}
	if patch.Shellfish != nil {
		values[keys.shellfish] = *patch.Shellfish
	}
	if patch.OtherAllergens != nil {
		values[keys.otherAllergens] = encodeLabels(*patch.OtherAllergens)
	}

	return values
}
