// Package memory provides in-memory storage adapters, used by tests
// and ephemeral runs where persistence across sessions is not needed.
package memory

import (
	"context"
	"sync"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driven"
)

// Ensure RecentStore implements the interface.
var _ driven.RecentStore = (*RecentStore)(nil)

// RecentStore is an in-memory implementation of driven.RecentStore.
type RecentStore struct {
	mu      sync.RWMutex
	records []domain.RecentSearch
}

// NewRecentStore creates a new in-memory recent-search store.
func NewRecentStore() *RecentStore {
	return &RecentStore{}
}

// Load returns all stored records.
func (s *RecentStore) Load(_ context.Context) ([]domain.RecentSearch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.RecentSearch, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Save replaces the stored records.
func (s *RecentStore) Save(_ context.Context, records []domain.RecentSearch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]domain.RecentSearch, len(records))
	copy(s.records, records)
	return nil
}

// Clear removes all records.
func (s *RecentStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}
