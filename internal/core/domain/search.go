package domain

import "strings"

// MinQueryLength is the minimum normalized query length that triggers a
// search. Shorter inputs return an empty response without touching the
// cache, the network, or the recent-search ledger.
const MinQueryLength = 2

// SourceTypeRecent marks suggestions synthesized from the recent-search
// ledger when the network path fails.
const SourceTypeRecent = "recent"

// NormalizeQuery canonicalizes a raw query for cache keys and request
// parameters: trimmed and lower-cased.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// SearchOptions configures an autocomplete query.
type SearchOptions struct {
	// Limit is the maximum number of suggestions. Defaults to 5.
	Limit int

	// Latitude and Longitude bias results towards a location.
	// Only applied when HasBias is true.
	Latitude  float64
	Longitude float64
	HasBias   bool

	// Types filters suggestions by place type (e.g. "restaurant", "beach").
	Types []string
}

// Suggestion represents a single autocomplete candidate.
type Suggestion struct {
	// PlaceID uniquely identifies the place for a later resolve call.
	PlaceID string `json:"place_id"`

	// Name is the primary display text.
	Name string `json:"name"`

	// Address is the secondary display text, if known.
	Address string `json:"address,omitempty"`

	// Latitude and Longitude are the approximate coordinates, if known.
	Latitude  float64 `json:"lat,omitempty"`
	Longitude float64 `json:"lng,omitempty"`

	// Types lists the place categories.
	Types []string `json:"types,omitempty"`

	// SourceType names the backend source the suggestion came from,
	// or SourceTypeRecent for ledger-derived fallback stubs.
	SourceType string `json:"source_type,omitempty"`

	// Fallback is true when the suggestion was synthesized locally from
	// the recent-search ledger rather than returned by the backend.
	Fallback bool `json:"_fallback,omitempty"`
}

// SearchResponse is the payload returned for one autocomplete query.
type SearchResponse struct {
	// Suggestions are the candidates, best first.
	Suggestions []Suggestion `json:"suggestions"`

	// Total is the number of matches the backend reported.
	Total int `json:"total"`

	// Sources breaks down suggestion counts per backend source.
	Sources map[string]int `json:"sources,omitempty"`

	// QueryTimeMS is the backend-reported query time in milliseconds.
	QueryTimeMS int `json:"query_time_ms,omitempty"`
}

// EmptyResponse returns a response with no suggestions.
// Returned for queries below MinQueryLength.
func EmptyResponse() *SearchResponse {
	return &SearchResponse{Suggestions: []Suggestion{}, Total: 0}
}

// Degraded returns true if the response was synthesized from the
// recent-search ledger rather than a live network lookup.
func (r *SearchResponse) Degraded() bool {
	for i := range r.Suggestions {
		if r.Suggestions[i].Fallback {
			return true
		}
	}
	return false
}

// Stats is a read-only snapshot of the autocomplete client's state.
type Stats struct {
	// CacheSize is the number of live cached responses.
	CacheSize int `json:"cache_size"`

	// RecentCount is the number of ledger records.
	RecentCount int `json:"recent_count"`

	// CacheTTLMS is the cache entry time-to-live in milliseconds.
	CacheTTLMS int64 `json:"cache_ttl_ms"`

	// DebounceDelayMS is the configured debounce delay in milliseconds.
	DebounceDelayMS int64 `json:"debounce_delay_ms"`
}
