// Package auth provides the file-backed credentials store supplying the
// backend API token.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driven"
)

// CredentialsFileName holds the saved API token, mode 0600.
const CredentialsFileName = "credentials.json"

// Ensure CredentialsStore implements the interface.
var _ driven.TokenProvider = (*CredentialsStore)(nil)

type credentials struct {
	APIToken string    `json:"api_token"`
	SavedAt  time.Time `json:"saved_at"`
}

// CredentialsStore persists the backend API token in the config
// directory and serves it as a driven.TokenProvider.
type CredentialsStore struct {
	mu       sync.RWMutex
	filePath string
	creds    *credentials
}

// NewCredentialsStore creates a credentials store.
// If configDir is empty, defaults to ~/.tripsearch.
func NewCredentialsStore(configDir string) (*CredentialsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".tripsearch")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	s := &CredentialsStore{
		filePath: filepath.Join(configDir, CredentialsFileName),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// GetToken returns the saved API token, or empty string if none.
func (s *CredentialsStore) GetToken(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil {
		return "", nil
	}
	return s.creds.APIToken, nil
}

// IsAuthenticated returns true if a token is saved.
func (s *CredentialsStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds != nil && s.creds.APIToken != ""
}

// SaveToken stores a new API token.
func (s *CredentialsStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = &credentials{APIToken: token, SavedAt: time.Now().UTC()}

	data, err := json.MarshalIndent(s.creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}

// Delete removes the saved credentials.
func (s *CredentialsStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = nil
	if err := os.Remove(s.filePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing credentials: %w", err)
	}
	return nil
}

// Path returns the credentials file path.
func (s *CredentialsStore) Path() string {
	return s.filePath
}

func (s *CredentialsStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading credentials: %w", err)
	}

	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return fmt.Errorf("decoding credentials: %w", err)
	}
	s.creds = &creds
	return nil
}
