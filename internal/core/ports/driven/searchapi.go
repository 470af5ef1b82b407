package driven

import (
	"context"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

// SearchAPI is the outbound interface to the remote search backend.
// Implementations issue real HTTP calls; tests substitute a fake.
type SearchAPI interface {
	// Search performs one autocomplete request. The query must already
	// be normalized; the session token groups related requests for
	// provider-side billing.
	Search(ctx context.Context, query string, params SearchParams) (*domain.SearchResponse, error)

	// Resolve fetches full place details for a previously suggested
	// candidate, closing out the billing session identified by the token.
	Resolve(ctx context.Context, placeID, sessionToken string) (*domain.Place, error)
}

// SearchParams carries the request parameters for a Search call.
type SearchParams struct {
	// Limit is the maximum number of suggestions to request.
	Limit int

	// Latitude and Longitude bias results towards a location when
	// HasBias is true.
	Latitude  float64
	Longitude float64
	HasBias   bool

	// Types filters suggestions by place type.
	Types []string

	// SessionToken is the active autocomplete session identifier.
	SessionToken string
}
