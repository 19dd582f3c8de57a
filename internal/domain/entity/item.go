package entity

// TierPrices holds an item's price for each identity tier, in GBP.
type TierPrices struct {
	Student float64 `json:"student" yaml:"student"`
	Staff   float64 `json:"staff" yaml:"staff"`
	Visitor float64 `json:"visitor" yaml:"visitor"`
}

// Item is a catalog entry supplied by the catalog collaborator. The core only reads it.
type Item struct {
	ID           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Restaurant   string     `json:"restaurant" yaml:"restaurant"`
	Description  string     `json:"description" yaml:"description"`
	Category     string     `json:"category" yaml:"category"`
	Cuisine      string     `json:"cuisine" yaml:"cuisine"`
	Prices       TierPrices `json:"prices" yaml:"prices"`
	ImageURL     string     `json:"imageUrl" yaml:"imageUrl"`
	AllergenTags []string   `json:"allergenTags" yaml:"allergenTags"`
	Available    bool       `json:"available" yaml:"available"`
}

// MenuEntry is one render-ready row of an assembled menu.
type MenuEntry struct {
	Item            *Item   `json:"item"`
	Price           float64 `json:"price"`
	AllergenWarning bool    `json:"allergenWarning"`
}
