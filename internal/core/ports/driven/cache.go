package driven

import (
	"time"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

// SuggestionCache caches search responses keyed by normalized query text.
// Entries expire after a TTL, checked lazily on Get. All operations are
// total: the cache never returns an error.
//
// The key is text-only. Two queries with the same text but different geo
// bias share one entry; callers accepting that staleness trade-off is a
// deliberate design choice.
type SuggestionCache interface {
	// Get returns the cached response for the query, or nil if absent
	// or expired. An expired entry is removed and never resurrected.
	Get(query string) *domain.SearchResponse

	// Set stores a response under the normalized query, overwriting any
	// prior entry and restarting its TTL.
	Set(query string, response *domain.SearchResponse)

	// Clear removes all entries.
	Clear()

	// Len returns the number of stored entries, including any whose TTL
	// has lapsed but which have not yet been purged by a Get.
	Len() int

	// TTL returns the configured entry time-to-live.
	TTL() time.Duration
}
