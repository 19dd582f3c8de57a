package entity

import "strings"

// IdentityTier is the pricing/classification category of a user.
type IdentityTier string

const (
	IdentityTierStudent IdentityTier = "student"
	IdentityTierStaff   IdentityTier = "staff"
	IdentityTierVisitor IdentityTier = "visitor"
)

// IdentityTiers lists every recognised tier.
var IdentityTiers = []IdentityTier{IdentityTierStudent, IdentityTierStaff, IdentityTierVisitor}

// ParseIdentityTier maps a raw value onto a known tier, case-insensitively.
func ParseIdentityTier(raw string) (IdentityTier, bool) {
	candidate := IdentityTier(strings.ToLower(strings.TrimSpace(raw)))
	if candidate.IsValid() {
		return candidate, true
	}

	return "", false
}

// IsValid reports whether the tier is one of the recognised values.
func (t IdentityTier) IsValid() bool {
	switch t {
	case IdentityTierStudent, IdentityTierStaff, IdentityTierVisitor:
		return true
	default:
		return false
	}
}

func (t IdentityTier) String() string {
	return string(t)
}
