package pricing

import (
	"testing"

	"unifeast/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestPriceFor(t *testing.T) {
	item := &entity.Item{
		Name:   "Chicken Tikka Masala",
		Prices: entity.TierPrices{Student: 8.50, Staff: 10.00, Visitor: 12.00},
	}

	tests := []struct {
		name    string
		profile *entity.Profile
		want    float64
	}{
		{name: "nil profile defaults to student", profile: nil, want: 8.50},
		{name: "student", profile: &entity.Profile{IdentityTier: entity.IdentityTierStudent}, want: 8.50},
		{name: "staff", profile: &entity.Profile{IdentityTier: entity.IdentityTierStaff}, want: 10.00},
		{name: "visitor", profile: &entity.Profile{IdentityTier: entity.IdentityTierVisitor}, want: 12.00},
		{name: "empty tier", profile: &entity.Profile{}, want: 8.50},
		{name: "unrecognised tier", profile: &entity.Profile{IdentityTier: "alumni"}, want: 8.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PriceFor(tt.profile, item), 0.0001)
		})
	}
}

func TestPriceFor_NilItem(t *testing.T) {
	assert.Zero(t, PriceFor(&entity.Profile{IdentityTier: entity.IdentityTierStaff}, nil))
}
