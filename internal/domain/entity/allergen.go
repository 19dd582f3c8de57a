package entity

// CoreAllergens holds the five fixed allergen flags, each independently togglable.
type CoreAllergens struct {
	Milk      bool
	Eggs      bool
	Peanuts   bool
	TreeNuts  bool
	Shellfish bool
}

// AllergenDefinition describes one entry of an allergen vocabulary.
type AllergenDefinition struct {
	Key   string `json:"key"`   // Stable machine key.
	Label string `json:"label"` // Human-facing label, also used for matching.
}

// CoreAllergenDefinitions maps each core flag to its label, in display order.
var CoreAllergenDefinitions = []AllergenDefinition{
	{Key: "milk", Label: "Milk"},
	{Key: "eggs", Label: "Eggs"},
	{Key: "peanuts", Label: "Peanuts"},
	{Key: "treeNuts", Label: "Tree nuts"},
	{Key: "shellfish", Label: "Shellfish"},
}

// ExtraAllergenDefinitions are the named allergens offered beyond the core five.
// Users may also store free-text labels outside this table.
var ExtraAllergenDefinitions = []AllergenDefinition{
	{Key: "celery", Label: "Celery"},
	{Key: "gluten", Label: "Cereals containing gluten"},
	{Key: "crustaceans", Label: "Crustaceans"},
	{Key: "fish", Label: "Fish"},
	{Key: "lupin", Label: "Lupin"},
	{Key: "molluscs", Label: "Molluscs"},
	{Key: "mustard", Label: "Mustard"},
	{Key: "sesame", Label: "Sesame seeds"},
	{Key: "soybeans", Label: "Soybeans"},
	{Key: "sulphites", Label: "Sulphur dioxide and sulphites"},
}

// Labels returns the label of every flag that is set, in table order.
func (c CoreAllergens) Labels() []string {
	flags := [...]bool{c.Milk, c.Eggs, c.Peanuts, c.TreeNuts, c.Shellfish}
	labels := make([]string, 0, len(flags))
	for i, set := range flags {
		if set {
			labels = append(labels, CoreAllergenDefinitions[i].Label)
		}
	}

	return labels
}

// Any reports whether at least one flag is set.
func (c CoreAllergens) Any() bool {
	return c.Milk || c.Eggs || c.Peanuts || c.TreeNuts || c.Shellfish
}
