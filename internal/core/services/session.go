package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/phongnickchinh/tripsearch-cli/internal/logger"
)

// SessionTokens manages the autocomplete session token lifecycle.
//
// Search providers that bill per "session" (all keystrokes leading to one
// place selection) need a stable token across the whole session and a
// reset exactly at the selection boundary. Forgetting to reset leaks one
// session across unrelated searches; resetting too early opens a paid
// session per keystroke. Both mistakes are silent cost bugs, which is why
// the lifecycle lives in one place.
type SessionTokens struct {
	mu    sync.Mutex
	token string
}

// NewSessionTokens creates a session token manager with no active token.
func NewSessionTokens() *SessionTokens {
	return &SessionTokens{}
}

// Current returns the active session token, minting a fresh one if none
// is active. The token stays stable until Reset is called.
func (s *SessionTokens) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		s.token = uuid.NewString()
		logger.Debug("Session token created: %s", s.token)
	}
	return s.token
}

// Reset clears the active token. The next Current call starts a new
// session. Called after a successful resolve; never on a TTL.
func (s *SessionTokens) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != "" {
		logger.Debug("Session token reset: %s", s.token)
	}
	s.token = ""
}

// Active returns true if a session token is currently held.
func (s *SessionTokens) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}
