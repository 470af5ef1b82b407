package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSuperseded indicates a debounced call was replaced by a newer
	// one before its delay elapsed. The newer call's result is the only
	// one that matters; callers should discard this outcome silently.
	ErrSuperseded = errors.New("superseded by a newer query")

	// ErrRateLimited indicates the backend rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrAuthRequired indicates the backend requires an API token but
	// none is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrResolveFailed indicates the full-details call for a selected
	// place failed. There is no degraded substitute for place details,
	// so this always surfaces to the caller.
	ErrResolveFailed = errors.New("place resolve failed")
)
