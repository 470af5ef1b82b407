package driving

import (
	"context"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

// AutocompleteService provides autocomplete capabilities to external actors.
type AutocompleteService interface {
	// Query runs one autocomplete attempt: minimum-length guard, cache
	// check, network dispatch, and ledger fallback on network failure.
	// It never returns a transport error; the UI always gets a response.
	Query(ctx context.Context, text string, opts domain.SearchOptions) (*domain.SearchResponse, error)

	// DebouncedQuery wraps Query in the debounce scheduler. This is the
	// method keystroke handlers should call. A call superseded by a
	// newer keystroke returns domain.ErrSuperseded.
	DebouncedQuery(ctx context.Context, text string, opts domain.SearchOptions) (*domain.SearchResponse, error)

	// Resolve fetches full details for a selected suggestion and resets
	// the session token on success. Failures propagate to the caller.
	Resolve(ctx context.Context, placeID, sessionToken string) (*domain.Place, error)

	// Recent lists the recent-search ledger, most-recent-first.
	Recent(ctx context.Context) []domain.RecentSearch

	// ClearAll clears the cache and the ledger. The session token is
	// left untouched.
	ClearAll(ctx context.Context)

	// Stats returns a read-only snapshot of client state.
	Stats() domain.Stats
}
