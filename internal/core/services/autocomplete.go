package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driven"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driving"
	"github.com/phongnickchinh/tripsearch-cli/internal/logger"
)

// Ensure AutocompleteService implements the interface.
var _ driving.AutocompleteService = (*AutocompleteService)(nil)

const (
	// DefaultLimit is the suggestion limit when the caller passes none.
	DefaultLimit = 5

	// fallbackLimit caps the number of ledger-derived fallback stubs.
	fallbackLimit = 5
)

// AutocompleteService is the stateful facade over the remote search
// endpoint. It minimizes network calls and billing cost: cache hits are
// served silently, cache misses are debounced, and network failures
// degrade to recent-search stubs instead of surfacing an error.
type AutocompleteService struct {
	api      driven.SearchAPI
	cache    driven.SuggestionCache
	ledger   *RecentLedger
	tokens   *SessionTokens
	debounce *Debouncer
}

// NewAutocompleteService creates the autocomplete facade.
// All dependencies are required.
func NewAutocompleteService(
	api driven.SearchAPI,
	cache driven.SuggestionCache,
	ledger *RecentLedger,
	tokens *SessionTokens,
	debounce *Debouncer,
) *AutocompleteService {
	return &AutocompleteService{
		api:      api,
		cache:    cache,
		ledger:   ledger,
		tokens:   tokens,
		debounce: debounce,
	}
}

// Query runs one autocomplete attempt.
//
// Pipeline: minimum-length guard, cache check, network dispatch, and on
// network failure a ledger fallback. Transport errors never reach the
// caller; the returned response may be empty or degraded but is always
// usable.
func (s *AutocompleteService) Query(
	ctx context.Context, text string, opts domain.SearchOptions,
) (*domain.SearchResponse, error) {
	logger.Section("Autocomplete Query")
	norm := domain.NormalizeQuery(text)
	logger.Debug("Query: %q (normalized %q)", text, norm)

	// Hard minimum-length policy: single characters never hit the
	// network, the cache, or the ledger.
	if utf8.RuneCountInString(norm) < domain.MinQueryLength {
		logger.Debug("Query below minimum length, returning empty")
		return domain.EmptyResponse(), nil
	}

	// Cache hits are fully silent: no re-validation, no ledger write.
	if cached := s.cache.Get(norm); cached != nil {
		logger.Debug("Cache hit for %q", norm)
		return cached, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	params := driven.SearchParams{
		Limit:        limit,
		Latitude:     opts.Latitude,
		Longitude:    opts.Longitude,
		HasBias:      opts.HasBias,
		Types:        opts.Types,
		SessionToken: s.tokens.Current(),
	}

	logger.Debug("Cache miss, dispatching network call (limit=%d)", limit)
	resp, err := s.api.Search(ctx, norm, params)
	if err != nil {
		logger.Warn("Search failed for %q: %v (degrading to recent searches)", norm, err)
		fallback := s.fallback(ctx, norm)
		// A failed attempt is still a completed attempt. The ledger keeps
		// the text as typed; Match lower-cases on its side.
		s.ledger.Record(ctx, text, false)
		return fallback, nil
	}

	// Failures are never cached; successes always are.
	s.cache.Set(norm, resp)
	s.ledger.Record(ctx, text, resp.Total > 0)
	logger.Info("Search for %q: %d suggestions (%d total)", norm, len(resp.Suggestions), resp.Total)

	return resp, nil
}

// DebouncedQuery wraps Query in the debounce scheduler. Only the last
// call inside a debounce window runs; earlier callers get
// domain.ErrSuperseded.
func (s *AutocompleteService) DebouncedQuery(
	ctx context.Context, text string, opts domain.SearchOptions,
) (*domain.SearchResponse, error) {
	var resp *domain.SearchResponse
	err := s.debounce.Do(ctx, func(ctx context.Context) error {
		var qerr error
		resp, qerr = s.Query(ctx, text, opts)
		return qerr
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Resolve fetches full place details for a selected suggestion.
//
// On success the session token resets: the billing session closed with
// this selection and the next keystroke starts a new one. Failures
// propagate - there is no degraded substitute for place details.
func (s *AutocompleteService) Resolve(
	ctx context.Context, placeID, sessionToken string,
) (*domain.Place, error) {
	if placeID == "" {
		return nil, fmt.Errorf("resolve: %w: empty place ID", domain.ErrInvalidInput)
	}
	if sessionToken == "" {
		sessionToken = s.tokens.Current()
	}

	logger.Section("Place Resolve")
	logger.Debug("Resolving place %s", placeID)

	place, err := s.api.Resolve(ctx, placeID, sessionToken)
	if err != nil {
		logger.Warn("Resolve failed for %s: %v", placeID, err)
		return nil, fmt.Errorf("resolve place %s: %w", placeID, err)
	}

	s.tokens.Reset()
	logger.Info("Resolved place %s: %s", placeID, place.Name)

	return place, nil
}

// Recent lists the recent-search ledger, most-recent-first.
func (s *AutocompleteService) Recent(ctx context.Context) []domain.RecentSearch {
	return s.ledger.List(ctx)
}

// ClearAll clears the cache and the ledger. The session token survives:
// an in-progress autocomplete session is unrelated to cached data.
func (s *AutocompleteService) ClearAll(ctx context.Context) {
	s.cache.Clear()
	s.ledger.Clear(ctx)
	logger.Info("Cache and recent-search ledger cleared")
}

// Stats returns a read-only snapshot of client state.
func (s *AutocompleteService) Stats() domain.Stats {
	return domain.Stats{
		CacheSize:       s.cache.Len(),
		RecentCount:     len(s.ledger.List(context.Background())),
		CacheTTLMS:      s.cache.TTL().Milliseconds(),
		DebounceDelayMS: s.debounce.Delay().Milliseconds(),
	}
}

// fallback synthesizes a degraded response from ledger records whose
// query contains the input as a substring.
func (s *AutocompleteService) fallback(ctx context.Context, norm string) *domain.SearchResponse {
	records := s.ledger.Match(ctx, norm, fallbackLimit)
	suggestions := make([]domain.Suggestion, 0, len(records))
	for _, r := range records {
		suggestions = append(suggestions, r.FallbackSuggestion())
	}

	logger.Debug("Fallback for %q: %d recent-search stubs", norm, len(suggestions))

	resp := &domain.SearchResponse{
		Suggestions: suggestions,
		Total:       len(suggestions),
	}
	if len(suggestions) > 0 {
		resp.Sources = map[string]int{domain.SourceTypeRecent: len(suggestions)}
	}
	return resp
}
