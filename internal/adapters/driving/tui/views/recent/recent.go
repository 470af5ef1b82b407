// Package recent provides the recent-search ledger view for the TUI.
package recent

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/messages"
	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driving"
)

// View lists the recent-search ledger. Selecting an entry replays it
// in the suggest view.
type View struct {
	styles       *styles.Styles
	autocomplete driving.AutocompleteService
	ctx          context.Context

	searches []domain.RecentSearch
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new recent-searches view.
func NewView(s *styles.Styles, autocomplete driving.AutocompleteService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:       s,
		autocomplete: autocomplete,
		ctx:          context.Background(),
		width:        80,
		height:       24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the ledger.
func (v *View) Init() tea.Cmd {
	return func() tea.Msg {
		return messages.RecentLoaded{Searches: v.autocomplete.Recent(v.ctx)}
	}
}

// Update handles messages for the recent view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.RecentLoaded:
		v.searches = msg.Searches
		v.selected = 0
		return v, nil

	case tea.KeyMsg:
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyEsc:
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewSearch}
			}
		case tea.KeyUp:
			if v.selected > 0 {
				v.selected--
			}
			return v, nil
		case tea.KeyDown:
			if v.selected < len(v.searches)-1 {
				v.selected++
			}
			return v, nil
		case tea.KeyEnter:
			if v.selected >= 0 && v.selected < len(v.searches) {
				query := v.searches[v.selected].Query
				return v, func() tea.Msg {
					return messages.QueryChanged{Query: query}
				}
			}
			return v, nil
		}
	}
	return v, nil
}

// View renders the recent-search ledger.
func (v *View) View() string {
	lines := make([]string, 0, len(v.searches)+4)

	lines = append(lines, v.styles.Title.Render("Recent Searches"), "")

	if len(v.searches) == 0 {
		lines = append(lines, v.styles.Muted.Render("No recent searches"))
	}

	for i, rs := range v.searches {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		when := rs.RecordedAt.Format("Jan 2 15:04")
		line := fmt.Sprintf("%s%-40s %s", indicator, truncate(rs.Query, 40), when)

		var rendered string
		if i == v.selected {
			rendered = v.styles.Selected.Render(line)
		} else {
			rendered = v.styles.Normal.Render(line)
		}
		if !rs.HadResults {
			rendered += v.styles.Muted.Render(" (no results)")
		}
		lines = append(lines, rendered)
	}

	lines = append(lines, "", v.styles.Help.Render("[enter] search again  [esc] back"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// Searches returns the loaded ledger entries.
func (v *View) Searches() []domain.RecentSearch {
	return v.searches
}

// Selected returns the selected index.
func (v *View) Selected() int {
	return v.selected
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
