package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokens_Current_MintsLazily(t *testing.T) {
	tokens := NewSessionTokens()

	assert.False(t, tokens.Active())

	token := tokens.Current()
	require.NotEmpty(t, token)
	assert.True(t, tokens.Active())
}

func TestSessionTokens_Current_StableUntilReset(t *testing.T) {
	tokens := NewSessionTokens()

	first := tokens.Current()
	second := tokens.Current()
	assert.Equal(t, first, second)

	tokens.Reset()
	assert.False(t, tokens.Active())

	third := tokens.Current()
	assert.NotEqual(t, first, third)
}

func TestSessionTokens_Reset_WithoutToken(t *testing.T) {
	tokens := NewSessionTokens()

	// Reset with no active token is a no-op, not a panic.
	tokens.Reset()
	assert.False(t, tokens.Active())
}

func TestSessionTokens_Concurrent(t *testing.T) {
	tokens := NewSessionTokens()

	var wg sync.WaitGroup
	seen := make([]string, 50)
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen[i] = tokens.Current()
		}()
	}
	wg.Wait()

	// All racing callers must observe the same session.
	for _, token := range seen {
		assert.Equal(t, seen[0], token)
	}
}
