package driven

import "context"

// TokenProvider supplies the API token for authenticated backend calls.
// Implementations decide where the token lives (credentials file,
// environment); an empty token means unauthenticated requests.
type TokenProvider interface {
	// GetToken returns the current API token, or empty string when no
	// credentials are configured.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated returns true if a token is available.
	IsAuthenticated() bool
}
