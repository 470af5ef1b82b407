// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

// SuggestionList displays autocomplete suggestions in a navigable list.
type SuggestionList struct {
	suggestions []domain.Suggestion
	selected    int
	styles      *styles.Styles
	width       int
	height      int
}

// NewSuggestionList creates a new suggestion list component.
func NewSuggestionList(s *styles.Styles) *SuggestionList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &SuggestionList{
		suggestions: nil,
		selected:    0,
		styles:      s,
		width:       80,
		height:      10,
	}
}

// Init initialises the suggestion list.
func (l *SuggestionList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *SuggestionList) Update(msg tea.Msg) (*SuggestionList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			l.MoveUp()
		case tea.KeyDown:
			l.MoveDown()
		default:
			// Handle other keys
		}
	}
	return l, nil
}

// View renders the suggestion list.
func (l *SuggestionList) View() string {
	if len(l.suggestions) == 0 {
		return l.styles.Muted.Render("No suggestions")
	}

	lines := make([]string, 0, len(l.suggestions)*2+2)

	header := l.styles.Subtitle.Render(fmt.Sprintf("Suggestions (%d)", len(l.suggestions)))
	lines = append(lines, header, "")

	// Each suggestion takes 2 lines (name + address)
	visibleCount := (l.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.suggestions) {
		end = len(l.suggestions)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderSuggestion(i, &l.suggestions[i]))
	}

	return strings.Join(lines, "\n")
}

// renderSuggestion formats a single suggestion with its address line.
func (l *SuggestionList) renderSuggestion(index int, sg *domain.Suggestion) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	name := sg.Name
	if name == "" {
		name = sg.PlaceID
	}

	maxNameLen := l.width - 20
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	tag := ""
	if sg.Fallback {
		tag = l.styles.Warning.Render(" (recent)")
	}

	var nameLine string
	if index == l.selected {
		nameLine = l.styles.Selected.Render(indicator+name) + tag
	} else {
		nameLine = l.styles.Normal.Render(indicator+name) + tag
	}

	detail := sg.Address
	if detail == "" && len(sg.Types) > 0 {
		detail = strings.Join(sg.Types, ", ")
	}
	if detail == "" {
		return nameLine
	}

	maxDetailLen := l.width - 6
	if maxDetailLen < 20 {
		maxDetailLen = 20
	}
	if len(detail) > maxDetailLen {
		detail = detail[:maxDetailLen-3] + "..."
	}

	return nameLine + "\n" + l.styles.Muted.Render("    "+detail)
}

// SetSuggestions updates the list contents.
func (l *SuggestionList) SetSuggestions(suggestions []domain.Suggestion) {
	l.suggestions = suggestions
	l.selected = 0
}

// Suggestions returns the current suggestions.
func (l *SuggestionList) Suggestions() []domain.Suggestion {
	return l.suggestions
}

// Selected returns the index of the selected suggestion.
func (l *SuggestionList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *SuggestionList) SetSelected(index int) {
	if index >= 0 && index < len(l.suggestions) {
		l.selected = index
	}
}

// SelectedSuggestion returns the currently selected suggestion, or nil if none.
func (l *SuggestionList) SelectedSuggestion() *domain.Suggestion {
	if len(l.suggestions) == 0 || l.selected < 0 || l.selected >= len(l.suggestions) {
		return nil
	}
	return &l.suggestions[l.selected]
}

// MoveUp moves selection up.
func (l *SuggestionList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *SuggestionList) MoveDown() {
	if l.selected < len(l.suggestions)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *SuggestionList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *SuggestionList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *SuggestionList) Height() int {
	return l.height
}

// Count returns the number of suggestions.
func (l *SuggestionList) Count() int {
	return len(l.suggestions)
}

// IsEmpty returns whether the list is empty.
func (l *SuggestionList) IsEmpty() bool {
	return len(l.suggestions) == 0
}
