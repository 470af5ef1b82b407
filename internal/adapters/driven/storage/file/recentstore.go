// Package file provides the JSON-file recent-search store, the durable
// client-storage equivalent of the web app's localStorage ledger.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driven"
)

// LedgerFileName is the persisted ledger file, a JSON array of records
// newest first.
const LedgerFileName = "recent_autocomplete_searches.json"

// Ensure RecentStore implements the interface.
var _ driven.RecentStore = (*RecentStore)(nil)

// RecentStore persists the recent-search ledger as a JSON file in the
// data directory.
type RecentStore struct {
	mu       sync.Mutex
	filePath string
}

// NewRecentStore creates a file-backed recent-search store.
// If dataDir is empty, defaults to ~/.tripsearch/data.
func NewRecentStore(dataDir string) (*RecentStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tripsearch", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &RecentStore{
		filePath: filepath.Join(dataDir, LedgerFileName),
	}, nil
}

// Load reads the persisted ledger. A missing file loads as empty.
func (s *RecentStore) Load(_ context.Context) ([]domain.RecentSearch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.RecentSearch{}, nil
		}
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	var records []domain.RecentSearch
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding ledger: %w", err)
	}
	return records, nil
}

// Save replaces the persisted ledger.
func (s *RecentStore) Save(_ context.Context, records []domain.RecentSearch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

// Clear erases the persisted ledger.
func (s *RecentStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing ledger: %w", err)
	}
	return nil
}

// Path returns the ledger file path.
func (s *RecentStore) Path() string {
	return s.filePath
}
