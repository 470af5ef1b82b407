package domain

import "time"

// DefaultRecentLimit is the default bound on the recent-search ledger.
const DefaultRecentLimit = 20

// RecentSearch records one completed query attempt. The ledger of these
// records survives restarts and serves as a degraded fallback when the
// network path fails.
type RecentSearch struct {
	// Query is the raw text that was submitted.
	Query string `json:"query"`

	// HadResults is true if the attempt returned at least one suggestion.
	HadResults bool `json:"had_results"`

	// RecordedAt is when the attempt completed.
	RecordedAt time.Time `json:"recorded_at"`
}

// FallbackSuggestion converts a ledger record into a degraded
// suggestion stub for use when the backend is unreachable.
func (r RecentSearch) FallbackSuggestion() Suggestion {
	return Suggestion{
		Name:       r.Query,
		SourceType: SourceTypeRecent,
		Fallback:   true,
	}
}
