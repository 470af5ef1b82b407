package recent

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/messages"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

type mockAutocomplete struct {
	recents []domain.RecentSearch
}

func (m *mockAutocomplete) Query(_ context.Context, _ string, _ domain.SearchOptions) (*domain.SearchResponse, error) {
	return domain.EmptyResponse(), nil
}

func (m *mockAutocomplete) DebouncedQuery(_ context.Context, _ string, _ domain.SearchOptions) (*domain.SearchResponse, error) {
	return domain.EmptyResponse(), nil
}

func (m *mockAutocomplete) Resolve(_ context.Context, placeID, _ string) (*domain.Place, error) {
	return &domain.Place{PlaceID: placeID}, nil
}

func (m *mockAutocomplete) Recent(_ context.Context) []domain.RecentSearch {
	return m.recents
}

func (m *mockAutocomplete) ClearAll(_ context.Context) {}

func (m *mockAutocomplete) Stats() domain.Stats { return domain.Stats{} }

func testSearches() []domain.RecentSearch {
	recorded := time.Date(2025, 6, 12, 15, 30, 0, 0, time.UTC)
	return []domain.RecentSearch{
		{Query: "hanoi old quarter", HadResults: true, RecordedAt: recorded},
		{Query: "da nang beaches", HadResults: true, RecordedAt: recorded.Add(-time.Hour)},
		{Query: "xyzzy resort", HadResults: false, RecordedAt: recorded.Add(-2 * time.Hour)},
	}
}

func TestView_Init_LoadsLedger(t *testing.T) {
	svc := &mockAutocomplete{recents: testSearches()}
	view := NewView(nil, svc)

	cmd := view.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(messages.RecentLoaded)
	require.True(t, ok)
	assert.Len(t, loaded.Searches, 3)
}

func TestView_RecentLoaded_ResetsSelection(t *testing.T) {
	view := NewView(nil, &mockAutocomplete{})
	view.Update(messages.RecentLoaded{Searches: testSearches()})
	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, view.Selected())

	view.Update(messages.RecentLoaded{Searches: testSearches()[:2]})

	assert.Equal(t, 0, view.Selected())
	assert.Len(t, view.Searches(), 2)
}

func TestView_Navigation_Clamped(t *testing.T) {
	view := NewView(nil, &mockAutocomplete{})
	view.Update(messages.RecentLoaded{Searches: testSearches()})

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.Selected())

	for range 5 {
		view.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 2, view.Selected())
}

func TestView_Enter_ReplaysQuery(t *testing.T) {
	view := NewView(nil, &mockAutocomplete{})
	view.Update(messages.RecentLoaded{Searches: testSearches()})
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.QueryChanged)
	require.True(t, ok)
	assert.Equal(t, "da nang beaches", changed.Query)
}

func TestView_Enter_EmptyLedger_NoCmd(t *testing.T) {
	view := NewView(nil, &mockAutocomplete{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Esc_ReturnsToSearch(t *testing.T) {
	view := NewView(nil, &mockAutocomplete{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewSearch, changed.View)
}

func TestView_Render_EmptyLedger(t *testing.T) {
	view := NewView(nil, &mockAutocomplete{})

	assert.Contains(t, view.View(), "No recent searches")
}

func TestView_Render_ShowsEntries(t *testing.T) {
	view := NewView(nil, &mockAutocomplete{})
	view.Update(messages.RecentLoaded{Searches: testSearches()})

	out := view.View()

	assert.Contains(t, out, "Recent Searches")
	assert.Contains(t, out, "hanoi old quarter")
	assert.Contains(t, out, "Jun 12 15:30")
	assert.Contains(t, out, "(no results)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))
	assert.Equal(t, "aaaaa...", truncate("aaaaaaaaaa", 8))
}
