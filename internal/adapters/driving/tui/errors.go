package tui

import "errors"

// ErrMissingAutocompleteService is returned when the autocomplete service is not provided.
var ErrMissingAutocompleteService = errors.New("tui: autocomplete service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
