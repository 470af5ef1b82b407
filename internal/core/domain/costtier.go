package domain

import "time"

// CostTier classifies how expensive the backend search endpoint is per
// call. More expensive tiers get longer debounce delays so fewer
// keystrokes turn into billable requests.
type CostTier string

// Available cost tiers.
const (
	// CostTierCheap is for endpoints that are nearly free per call.
	CostTierCheap CostTier = "cheap"

	// CostTierNormal is the default tier for standard endpoints.
	CostTierNormal CostTier = "normal"

	// CostTierExpensive is for per-call billed provider endpoints.
	CostTierExpensive CostTier = "expensive"

	// CostTierNone disables debouncing entirely.
	CostTierNone CostTier = "none"
)

// IsValid returns true if the cost tier is recognised.
func (t CostTier) IsValid() bool {
	switch t {
	case CostTierCheap, CostTierNormal, CostTierExpensive, CostTierNone:
		return true
	default:
		return false
	}
}

// Delay returns the debounce delay for the tier.
// Unknown tiers fall back to the normal delay.
func (t CostTier) Delay() time.Duration {
	switch t {
	case CostTierCheap:
		return 50 * time.Millisecond
	case CostTierNormal:
		return 300 * time.Millisecond
	case CostTierExpensive:
		return 500 * time.Millisecond
	case CostTierNone:
		return 0
	default:
		return 300 * time.Millisecond
	}
}

// String returns the string representation.
func (t CostTier) String() string {
	return string(t)
}

// ParseCostTier converts a string into a CostTier.
// Returns ErrInvalidInput for unknown values.
func ParseCostTier(s string) (CostTier, error) {
	tier := CostTier(NormalizeQuery(s))
	if !tier.IsValid() {
		return "", ErrInvalidInput
	}
	return tier, nil
}
