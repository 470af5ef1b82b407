package mcp

import (
	"context"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

// mockAutocompleteService is a mock implementation of driving.AutocompleteService.
type mockAutocompleteService struct {
	response   *domain.SearchResponse
	queryErr   error
	lastQuery  string
	lastOpts   domain.SearchOptions
	place      *domain.Place
	resolveErr error
	recents    []domain.RecentSearch
	stats      domain.Stats
	cleared    bool
}

func (m *mockAutocompleteService) Query(
	_ context.Context, text string, opts domain.SearchOptions,
) (*domain.SearchResponse, error) {
	m.lastQuery = text
	m.lastOpts = opts
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	if m.response != nil {
		return m.response, nil
	}
	return domain.EmptyResponse(), nil
}

func (m *mockAutocompleteService) DebouncedQuery(
	ctx context.Context, text string, opts domain.SearchOptions,
) (*domain.SearchResponse, error) {
	return m.Query(ctx, text, opts)
}

func (m *mockAutocompleteService) Resolve(
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

func (m *mockAutocompleteService) Recent(_ context.Context) []domain.RecentSearch {
	return m.recents
}

func (m *mockAutocompleteService) ClearAll(_ context.Context) {
	m.cleared = true
}

func (m *mockAutocompleteService) Stats() domain.Stats {
	return m.stats
}
