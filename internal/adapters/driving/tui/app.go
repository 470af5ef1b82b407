package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/messages"
	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/views/details"
	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/views/recent"
	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driving/tui/views/suggest"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// suggestView is the search-as-you-type view.
	suggestView *suggest.View

	// detailsView shows a resolved place.
	detailsView *details.View

	// recentView lists the recent-search ledger.
	recentView *recent.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	suggestView := suggest.NewView(s, nil, ports.Autocomplete)
	detailsView := details.NewView(s)
	recentView := recent.NewView(s, ports.Autocomplete)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		suggestView: suggestView,
		detailsView: detailsView,
		recentView:  recentView,
		currentView: messages.ViewSearch, // Start typing straight away
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.suggestView.WithContext(ctx)
	a.recentView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("tripsearch - Travel Search"),
		a.suggestView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.suggestView.SetDimensions(msg.Width, msg.Height)
		a.detailsView.SetDimensions(msg.Width, msg.Height)
		a.recentView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Global navigation shortcuts
		switch msg.String() {
		case "ctrl+r":
			if a.currentView != messages.ViewRecent {
				a.currentView = messages.ViewRecent
				return a, a.recentView.Init()
			}
		case "ctrl+h":
			if a.currentView != messages.ViewHelp {
				a.currentView = messages.ViewHelp
				return a, nil
			}
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewSearch:
			a.suggestView, cmd = a.suggestView.Update(msg)
			a.err = a.suggestView.Err()
			return a, cmd

		case messages.ViewDetails:
			a.detailsView, cmd = a.detailsView.Update(msg)
			return a, cmd

		case messages.ViewRecent:
			a.recentView, cmd = a.recentView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes back to search
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewSearch
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.SuggestionsLoaded:
		a.suggestView, cmd = a.suggestView.Update(msg)
		a.err = a.suggestView.Err()
		return a, cmd

	case messages.PlaceResolved:
		if msg.Err != nil {
			a.err = msg.Err
			a.suggestView, cmd = a.suggestView.Update(messages.ErrorOccurred{Err: msg.Err})
			return a, cmd
		}
		a.detailsView.SetPlace(msg.Place)
		a.currentView = messages.ViewDetails
		return a, nil

	case messages.RecentLoaded:
		a.recentView, cmd = a.recentView.Update(msg)
		return a, cmd

	case messages.QueryChanged:
		// A recent search was selected: replay it in the suggest view.
		a.currentView = messages.ViewSearch
		return a, a.suggestView.SetQuery(msg.Query)

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewRecent {
			return a, a.recentView.Init()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewSearch {
			a.suggestView, cmd = a.suggestView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewSearch:
		a.suggestView, cmd = a.suggestView.Update(msg)
	case messages.ViewDetails:
		a.detailsView, cmd = a.detailsView.Update(msg)
	case messages.ViewRecent:
		a.recentView, cmd = a.recentView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.suggestView.View()
	case messages.ViewDetails:
		return a.detailsView.View()
	case messages.ViewRecent:
		return a.recentView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.suggestView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Search:
  (type)      Suggestions update as you type
  ↑/↓         Navigate suggestions
  enter       Resolve selected place
  ctrl+u      Clear input
  esc         Clear / back

Navigation:
  ctrl+r      Recent searches
  ctrl+h      This help
  ctrl+c      Quit

[esc] back to search`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.suggestView.Query()
}

// Suggestions returns the current suggestions.
func (a *App) Suggestions() []domain.Suggestion {
	return a.suggestView.Suggestions()
}

// SelectedIndex returns the currently selected suggestion index.
func (a *App) SelectedIndex() int {
	return a.suggestView.SelectedIndex()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// Also set suggestView dimensions so it renders properly
	a.suggestView.SetDimensions(width, height)
}
