package suggest

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/messages"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

// mockAutocomplete implements driving.AutocompleteService for view tests.
type mockAutocomplete struct {
	response   *domain.SearchResponse
	queryErr   error
	place      *domain.Place
	resolveErr error
}

func (m *mockAutocomplete) Query(
	_ context.Context, _ string, _ domain.SearchOptions,
) (*domain.SearchResponse, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	if m.response != nil {
		return m.response, nil
	}
	return domain.EmptyResponse(), nil
}

func (m *mockAutocomplete) DebouncedQuery(
	ctx context.Context, text string, opts domain.SearchOptions,
) (*domain.SearchResponse, error) {
	return m.Query(ctx, text, opts)
}

func (m *mockAutocomplete) Resolve(
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

func (m *mockAutocomplete) Recent(_ context.Context) []domain.RecentSearch { return nil }

func (m *mockAutocomplete) ClearAll(_ context.Context) {}

func (m *mockAutocomplete) Stats() domain.Stats { return domain.Stats{} }

func testSuggestions() []domain.Suggestion {
	return []domain.Suggestion{
		{PlaceID: "p1", Name: "Hanoi Old Quarter", Address: "Hoan Kiem"},
		{PlaceID: "p2", Name: "Hanoi Opera House", Address: "Trang Tien"},
	}
}

func newTestView() *View {
	v := NewView(nil, nil, &mockAutocomplete{})
	v.SetDimensions(80, 24)
	return v
}

func TestView_TypingSchedulesLookup(t *testing.T) {
	v := newTestView()

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})

	assert.Equal(t, "h", v.Query())
	assert.Equal(t, 1, v.Seq())
	require.NotNil(t, cmd)
}

func TestView_EachKeystrokeBumpsSeq(t *testing.T) {
	v := newTestView()

	for _, r := range "hanoi" {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "hanoi", v.Query())
	assert.Equal(t, 5, v.Seq())
}

func TestView_SuggestionsLoaded(t *testing.T) {
	v := newTestView()
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})

	v, _ = v.Update(messages.SuggestionsLoaded{
		Seq:   v.Seq(),
		Query: "h",
		Response: &domain.SearchResponse{
			Suggestions: testSuggestions(),
			Total:       2,
		},
	})

	assert.Len(t, v.Suggestions(), 2)
	assert.NoError(t, v.Err())
}

func TestView_StaleResponseDropped(t *testing.T) {
	v := newTestView()
	for _, r := range "hanoi" {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	// A response from an earlier keystroke arrives late.
	v, _ = v.Update(messages.SuggestionsLoaded{
		Seq:   2,
		Query: "ha",
		Response: &domain.SearchResponse{
			Suggestions: testSuggestions(),
			Total:       2,
		},
	})

	assert.Empty(t, v.Suggestions())
}

func TestView_EnterResolvesSelection(t *testing.T) {
	v := newTestView()
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	v, _ = v.Update(messages.SuggestionsLoaded{
		Seq:      v.Seq(),
		Query:    "h",
		Response: &domain.SearchResponse{Suggestions: testSuggestions(), Total: 2},
	})

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg := cmd()
	resolved, ok := msg.(messages.PlaceResolved)
	require.True(t, ok)
	assert.Equal(t, "p1", resolved.PlaceID)
	require.NoError(t, resolved.Err)
	assert.Equal(t, "p1", resolved.Place.PlaceID)
}

func TestView_EnterWithoutSelectionIsNoop(t *testing.T) {
	v := newTestView()

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, v.Suggestions())
}

func TestView_ArrowNavigation(t *testing.T) {
	v := newTestView()
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	v, _ = v.Update(messages.SuggestionsLoaded{
		Seq:      v.Seq(),
		Query:    "h",
		Response: &domain.SearchResponse{Suggestions: testSuggestions(), Total: 2},
	})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.SelectedIndex())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.SelectedIndex()) // clamped at last

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestView_EscClearsInput(t *testing.T) {
	v := newTestView()
	for _, r := range "hanoi" {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, v.Query())
	assert.Empty(t, v.Suggestions())
}

func TestView_ErrorDisplayed(t *testing.T) {
	v := newTestView()

	v, _ = v.Update(messages.ErrorOccurred{Err: errors.New("backend down")})

	assert.Error(t, v.Err())
	assert.Contains(t, v.View(), "backend down")
}

func TestView_Reset(t *testing.T) {
	v := newTestView()
	for _, r := range "hanoi" {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	v, _ = v.Update(messages.SuggestionsLoaded{
		Seq:      v.Seq(),
		Query:    "hanoi",
		Response: &domain.SearchResponse{Suggestions: testSuggestions(), Total: 2},
	})

	v.Reset()

	assert.Empty(t, v.Query())
	assert.Empty(t, v.Suggestions())
	assert.NoError(t, v.Err())
}

func TestView_RendersDegradedTag(t *testing.T) {
	v := newTestView()
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})

	v, _ = v.Update(messages.SuggestionsLoaded{
		Seq:   v.Seq(),
		Query: "h",
		Response: &domain.SearchResponse{
			Suggestions: []domain.Suggestion{
				{Name: "hanoi beach", SourceType: domain.SourceTypeRecent, Fallback: true},
			},
			Total: 1,
		},
	})

	assert.Contains(t, v.View(), "recent")
}
