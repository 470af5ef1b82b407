package tui

import (
	"context"
	"sync"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

// MockAutocompleteService is a mock implementation of driving.AutocompleteService.
type MockAutocompleteService struct {
	mu         sync.Mutex
	response   *domain.SearchResponse
	queryErr   error
	place      *domain.Place
	resolveErr error
	recents    []domain.RecentSearch
	stats      domain.Stats
	queries    []string
}

func (m *MockAutocompleteService) Query(
	_ context.Context, text string, _ domain.SearchOptions,
) (*domain.SearchResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, text)
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	if m.response != nil {
		return m.response, nil
	}
	return domain.EmptyResponse(), nil
}

func (m *MockAutocompleteService) DebouncedQuery(
	ctx context.Context, text string, opts domain.SearchOptions,
) (*domain.SearchResponse, error) {
	return m.Query(ctx, text, opts)
}

func (m *MockAutocompleteService) Resolve(
	_ context.Context, placeID, _ string,
) (*domain.Place, error) {
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	if m.place != nil {
		return m.place, nil
	}
	return &domain.Place{PlaceID: placeID}, nil
}

func (m *MockAutocompleteService) Recent(_ context.Context) []domain.RecentSearch {
	return m.recents
}

func (m *MockAutocompleteService) ClearAll(_ context.Context) {}

func (m *MockAutocompleteService) Stats() domain.Stats {
	return m.stats
}

// Queries returns the queries dispatched so far.
func (m *MockAutocompleteService) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.queries))
	copy(out, m.queries)
	return out
}
