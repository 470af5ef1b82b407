// Package tui provides an interactive terminal user interface for tripsearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Autocomplete provides suggestion and resolve capabilities.
	Autocomplete driving.AutocompleteService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(autocomplete driving.AutocompleteService) *Ports {
	return &Ports{
		Autocomplete: autocomplete,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Autocomplete == nil {
		return ErrMissingAutocompleteService
	}
	return nil
}
