// Package pricing selects the price a user pays for an item.
package pricing

import "unifeast/internal/domain/entity"

// PriceFor returns the item's price for the profile's identity tier.
// A nil profile or an unrecognised tier pays the student price; a nil item costs nothing.
func PriceFor(profile *entity.Profile, item *entity.Item) float64 {
	if item == nil {
		return 0
	}
	if profile == nil {
		return item.Prices.Student
	}

	switch profile.IdentityTier {
	case entity.IdentityTierStaff:
		return item.Prices.Staff
	case entity.IdentityTierVisitor:
		return item.Prices.Visitor
	default:
		return item.Prices.Student
	}
}
