// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

// QueryChanged is sent when the search query input changes.
type QueryChanged struct {
	Query string
}

// SuggestionsLoaded carries autocomplete suggestions back to the model.
// Seq identifies the keystroke that issued the lookup; the view drops
// responses whose Seq is older than the latest keystroke.
type SuggestionsLoaded struct {
	Seq      int
	Query    string
	Response *domain.SearchResponse
	Err      error
}

// SuggestionSelected is sent when a suggestion is selected for resolving.
type SuggestionSelected struct {
	Suggestion domain.Suggestion
}

// PlaceResolved carries a fully resolved place back to the model.
type PlaceResolved struct {
	PlaceID string
	Place   *domain.Place
	Err     error
}

// RecentLoaded carries the recent-search ledger back to the model.
type RecentLoaded struct {
	Searches []domain.RecentSearch
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the suggest-as-you-type view.
	ViewSearch ViewType = iota
	// ViewDetails shows a resolved place.
	ViewDetails
	// ViewRecent lists the recent-search ledger.
	ViewRecent
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewDetails:
		return "details"
	case ViewRecent:
		return "recent"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
