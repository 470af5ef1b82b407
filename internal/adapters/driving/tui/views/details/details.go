// Package details provides the resolved place detail view for the TUI.
package details

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/messages"
	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

// View displays the full details of a resolved place.
type View struct {
	styles *styles.Styles
	place  *domain.Place
	width  int
	height int
	ready  bool
}

// NewView creates a new details view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the details view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewSearch}
			}
		}
	}
	return v, nil
}

// View renders the place details.
func (v *View) View() string {
	if v.place == nil {
		return v.styles.Muted.Render("No place selected")
	}

	p := v.place
	lines := make([]string, 0, 12)

	lines = append(lines, v.styles.Title.Render(p.Name), "")

	if p.Address != "" {
		lines = append(lines, v.styles.Normal.Render(p.Address))
	}
	if p.Latitude != 0 || p.Longitude != 0 {
		lines = append(lines, v.styles.Muted.Render(
			fmt.Sprintf("%.6f, %.6f", p.Latitude, p.Longitude)))
	}
	if len(p.Types) > 0 {
		lines = append(lines, v.styles.Muted.Render(strings.Join(p.Types, ", ")))
	}
	if p.Rating > 0 {
		lines = append(lines, "", v.styles.Subtitle.Render(
			fmt.Sprintf("Rating: %.1f", p.Rating)))
	}
	if p.Phone != "" {
		lines = append(lines, v.styles.Normal.Render("Phone:   "+p.Phone))
	}
	if p.Website != "" {
		lines = append(lines, v.styles.Normal.Render("Website: "+p.Website))
	}
	if len(p.OpeningHours) > 0 {
		lines = append(lines, "", v.styles.Subtitle.Render("Opening hours"))
		for _, h := range p.OpeningHours {
			lines = append(lines, v.styles.Muted.Render("  "+h))
		}
	}

	lines = append(lines, "", v.styles.Help.Render("[esc] back to search"))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return v.styles.Border.Padding(1, 2).Render(content)
}

// SetPlace sets the place to display.
func (v *View) SetPlace(place *domain.Place) {
	v.place = place
}

// Place returns the currently displayed place.
func (v *View) Place() *domain.Place {
	return v.place
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
