package mcp

import (
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Autocomplete provides suggestion and resolve capabilities.
	Autocomplete driving.AutocompleteService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Autocomplete == nil {
		return ErrMissingAutocompleteService
	}
	return nil
}
