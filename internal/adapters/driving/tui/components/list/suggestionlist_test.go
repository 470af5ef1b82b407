package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

func testSuggestions() []domain.Suggestion {
	return []domain.Suggestion{
		{PlaceID: "p1", Name: "Hanoi Old Quarter", Address: "Hoan Kiem"},
		{PlaceID: "p2", Name: "Hanoi Opera House", Address: "Trang Tien"},
		{PlaceID: "p3", Name: "Ha Long Bay", Types: []string{"bay", "nature"}},
	}
}

func TestSuggestionList_SetAndNavigate(t *testing.T) {
	l := NewSuggestionList(nil)
	l.SetSuggestions(testSuggestions())

	assert.Equal(t, 3, l.Count())
	assert.Equal(t, 0, l.Selected())

	l.MoveDown()
	assert.Equal(t, 1, l.Selected())

	l.MoveDown()
	l.MoveDown() // clamped at last
	assert.Equal(t, 2, l.Selected())

	l.MoveUp()
	assert.Equal(t, 1, l.Selected())
}

func TestSuggestionList_SelectedSuggestion(t *testing.T) {
	l := NewSuggestionList(nil)

	assert.Nil(t, l.SelectedSuggestion())

	l.SetSuggestions(testSuggestions())
	sg := l.SelectedSuggestion()
	require.NotNil(t, sg)
	assert.Equal(t, "p1", sg.PlaceID)
}

func TestSuggestionList_SetSuggestionsResetsSelection(t *testing.T) {
	l := NewSuggestionList(nil)
	l.SetSuggestions(testSuggestions())
	l.MoveDown()

	l.SetSuggestions(testSuggestions()[:1])

	assert.Equal(t, 0, l.Selected())
}

func TestSuggestionList_View_Empty(t *testing.T) {
	l := NewSuggestionList(nil)
	l.SetDimensions(80, 20)

	assert.Contains(t, l.View(), "No suggestions")
}

func TestSuggestionList_View_RendersNamesAndAddresses(t *testing.T) {
	l := NewSuggestionList(nil)
	l.SetDimensions(80, 20)
	l.SetSuggestions(testSuggestions())

	view := l.View()
	assert.Contains(t, view, "Hanoi Old Quarter")
	assert.Contains(t, view, "Hoan Kiem")
	// Type list stands in for a missing address.
	assert.Contains(t, view, "bay, nature")
}

func TestSuggestionList_View_TagsFallback(t *testing.T) {
	l := NewSuggestionList(nil)
	l.SetDimensions(80, 20)
	l.SetSuggestions([]domain.Suggestion{
		{Name: "hanoi beach", SourceType: domain.SourceTypeRecent, Fallback: true},
	})

	assert.Contains(t, l.View(), "(recent)")
}
