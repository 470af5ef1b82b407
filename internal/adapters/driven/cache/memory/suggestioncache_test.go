package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

func testResponse(name string) *domain.SearchResponse {
	return &domain.SearchResponse{
		Suggestions: []domain.Suggestion{{PlaceID: "p1", Name: name}},
		Total:       1,
	}
}

func TestSuggestionCache_SetAndGet(t *testing.T) {
	cache := NewSuggestionCache(time.Hour)

	cache.Set("hanoi", testResponse("Hanoi"))

	got := cache.Get("hanoi")
	require.NotNil(t, got)
	assert.Equal(t, "Hanoi", got.Suggestions[0].Name)
	assert.Equal(t, 1, cache.Len())
}

func TestSuggestionCache_Get_Missing(t *testing.T) {
	cache := NewSuggestionCache(time.Hour)

	assert.Nil(t, cache.Get("hanoi"))
}

func TestSuggestionCache_NormalizesKeys(t *testing.T) {
	cache := NewSuggestionCache(time.Hour)

	cache.Set("  HaNoi ", testResponse("Hanoi"))

	assert.NotNil(t, cache.Get("hanoi"))
	assert.NotNil(t, cache.Get("HANOI"))
	assert.Equal(t, 1, cache.Len())
}

func TestSuggestionCache_LazyExpiry(t *testing.T) {
	cache := NewSuggestionCache(time.Minute)

	base := time.Now()
	cache.SetNow(func() time.Time { return base })
	cache.Set("hanoi", testResponse("Hanoi"))

	// Just inside the TTL: still served.
	cache.SetNow(func() time.Time { return base.Add(59 * time.Second) })
	assert.NotNil(t, cache.Get("hanoi"))

	// Past the TTL: expired on read and purged.
	cache.SetNow(func() time.Time { return base.Add(61 * time.Second) })
	assert.Nil(t, cache.Get("hanoi"))
	assert.Zero(t, cache.Len())
}

func TestSuggestionCache_SetRestartsTTL(t *testing.T) {
	cache := NewSuggestionCache(time.Minute)

	base := time.Now()
	cache.SetNow(func() time.Time { return base })
	cache.Set("hanoi", testResponse("old"))

	// Overwrite near expiry; the new entry gets a fresh TTL.
	cache.SetNow(func() time.Time { return base.Add(50 * time.Second) })
	cache.Set("hanoi", testResponse("new"))

	cache.SetNow(func() time.Time { return base.Add(90 * time.Second) })
	got := cache.Get("hanoi")
	require.NotNil(t, got)
	assert.Equal(t, "new", got.Suggestions[0].Name)
}

func TestSuggestionCache_Clear(t *testing.T) {
	cache := NewSuggestionCache(time.Hour)

	cache.Set("hanoi", testResponse("Hanoi"))
	cache.Set("da nang", testResponse("Da Nang"))
	require.Equal(t, 2, cache.Len())

	cache.Clear()

	assert.Zero(t, cache.Len())
	assert.Nil(t, cache.Get("hanoi"))
}

func TestSuggestionCache_ZeroTTLUsesDefault(t *testing.T) {
	cache := NewSuggestionCache(0)
	assert.Equal(t, DefaultTTL, cache.TTL())
}
