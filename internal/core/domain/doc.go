// Package domain defines the core business entities for TripSearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Suggestion: A single autocomplete candidate for a place
//   - SearchResponse: The payload returned for one autocomplete query
//   - Place: Fully resolved details for a selected suggestion
//   - RecentSearch: A persisted record of a past query, used as fallback
//   - CostTier: Billing tier that drives the debounce delay
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
