// Package suggest provides the search-as-you-type view for the TUI.
package suggest

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/components/input"
	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/components/list"
	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/components/status"
	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/keymap"
	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/messages"
	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driving"
)

// View represents the suggest view with input, suggestion list, and status bar.
// Every keystroke issues a debounced lookup; responses are tagged with the
// keystroke sequence number so a slow early lookup can never overwrite the
// suggestions for what the user is typing now.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.SuggestionList
	statusbar *status.Bar

	autocomplete driving.AutocompleteService
	ctx          context.Context

	// seq is the sequence number of the latest keystroke.
	seq int

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new suggest view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	autocomplete driving.AutocompleteService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:       s,
		keymap:       km,
		input:        input.NewSearchInput(s),
		list:         list.NewSuggestionList(s),
		statusbar:    status.NewBar(s, km),
		autocomplete: autocomplete,
		ctx:          context.Background(),
		width:        80,
		height:       24,
		ready:        false,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the suggest view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SuggestionsLoaded:
		v.handleSuggestionsLoaded(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		if v.input.Value() != "" {
			return v, v.clearInput()
		}
		return v, nil

	case tea.KeyEnter:
		sg := v.list.SelectedSuggestion()
		if sg == nil {
			return v, nil
		}
		v.statusbar.SetState(status.StateResolving)
		return v, v.resolve(sg.PlaceID)

	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil

	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	if keymap.Matches(msg.String(), v.keymap.Clear) {
		return v, v.clearInput()
	}

	// Everything else goes to the text input. A changed value is a new
	// keystroke: bump the sequence and schedule a debounced lookup.
	before := v.input.Value()
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	after := v.input.Value()

	if after == before {
		return v, inputCmd
	}

	v.seq++
	if after == "" {
		v.list.SetSuggestions(nil)
		v.statusbar.Clear()
		return v, inputCmd
	}

	v.statusbar.SetState(status.StateSearching)
	return v, tea.Batch(inputCmd, v.lookup(v.seq, after))
}

// clearInput empties the input and the suggestion list.
func (v *View) clearInput() tea.Cmd {
	v.seq++
	v.input.SetValue("")
	v.list.SetSuggestions(nil)
	v.statusbar.Clear()
	v.err = nil
	return nil
}

// lookup schedules a debounced autocomplete query for one keystroke.
func (v *View) lookup(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		resp, err := v.autocomplete.DebouncedQuery(v.ctx, query, domain.SearchOptions{})
		if errors.Is(err, domain.ErrSuperseded) {
			// A newer keystroke owns the result now.
			return nil
		}
		return messages.SuggestionsLoaded{Seq: seq, Query: query, Response: resp, Err: err}
	}
}

// resolve fetches full details for the selected suggestion.
func (v *View) resolve(placeID string) tea.Cmd {
	return func() tea.Msg {
		place, err := v.autocomplete.Resolve(v.ctx, placeID, "")
		return messages.PlaceResolved{PlaceID: placeID, Place: place, Err: err}
	}
}

// handleSuggestionsLoaded processes a completed lookup.
func (v *View) handleSuggestionsLoaded(msg messages.SuggestionsLoaded) {
	// Drop stale responses from earlier keystrokes.
	if msg.Seq != v.seq {
		return
	}

	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.list.SetSuggestions(msg.Response.Suggestions)
	v.statusbar.SetResultCount(len(msg.Response.Suggestions))
	if msg.Response.Degraded() {
		v.statusbar.SetState(status.StateDegraded)
	} else {
		v.statusbar.SetState(status.StateResults)
	}
}

// View renders the suggest view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("TripSearch")
	sections = append(sections, header, "")

	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View())

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query and schedules an immediate lookup.
func (v *View) SetQuery(query string) tea.Cmd {
	v.input.SetValue(query)
	if query == "" {
		return nil
	}
	v.seq++
	v.statusbar.SetState(status.StateSearching)
	return v.lookup(v.seq, query)
}

// Seq returns the latest keystroke sequence number.
func (v *View) Seq() int {
	return v.seq
}

// Suggestions returns the current suggestions.
func (v *View) Suggestions() []domain.Suggestion {
	return v.list.Suggestions()
}

// SelectedIndex returns the index of the selected suggestion.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedSuggestion returns the currently selected suggestion.
func (v *View) SelectedSuggestion() *domain.Suggestion {
	return v.list.SelectedSuggestion()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to its initial state.
func (v *View) Reset() {
	v.seq++
	v.input.SetValue("")
	v.input.Focus()
	v.list.SetSuggestions(nil)
	v.err = nil
	v.statusbar.Clear()
}
