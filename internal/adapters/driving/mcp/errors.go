// Package mcp provides an MCP (Model Context Protocol) server adapter for
// TripSearch. It lets AI assistants query travel-place suggestions through
// the same cached, cost-aware pipeline the CLI uses.
package mcp

import "errors"

// ErrMissingAutocompleteService is returned when the autocomplete service is not provided.
var ErrMissingAutocompleteService = errors.New("mcp: autocomplete service is required")
