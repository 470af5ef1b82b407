package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

// SuggestInput is the input schema for the suggest tool.
type SuggestInput struct {
	Query     string   `json:"query" jsonschema:"the place text to autocomplete"`
	Limit     int      `json:"limit,omitempty" jsonschema:"maximum number of suggestions to return (default 5)"`
	Latitude  float64  `json:"lat,omitempty" jsonschema:"latitude to bias results towards (requires lng)"`
	Longitude float64  `json:"lng,omitempty" jsonschema:"longitude to bias results towards (requires lat)"`
	Types     []string `json:"types,omitempty" jsonschema:"place types to filter by, e.g. restaurant or beach"`
}

// SuggestOutput is the output schema for the suggest tool.
type SuggestOutput struct {
	Suggestions []SuggestionOutput `json:"suggestions"`
	Total       int                `json:"total"`
	Degraded    bool               `json:"degraded"`
}

// SuggestionOutput represents a single autocomplete candidate.
type SuggestionOutput struct {
	PlaceID    string   `json:"place_id"`
	Name       string   `json:"name"`
	Address    string   `json:"address,omitempty"`
	Latitude   float64  `json:"lat,omitempty"`
	Longitude  float64  `json:"lng,omitempty"`
	Types      []string `json:"types,omitempty"`
	SourceType string   `json:"source_type,omitempty"`
	Fallback   bool     `json:"_fallback,omitempty"`
}

// ResolveInput is the input schema for the resolve tool.
type ResolveInput struct {
	PlaceID      string `json:"place_id" jsonschema:"the place identifier from a prior suggest call"`
	SessionToken string `json:"session_token,omitempty" jsonschema:"session token to close; the active session is used when omitted"`
}

// ResolveOutput is the output schema for the resolve tool.
type ResolveOutput struct {
	PlaceID      string   `json:"place_id"`
	Name         string   `json:"name"`
	Address      string   `json:"address,omitempty"`
	Latitude     float64  `json:"lat,omitempty"`
	Longitude    float64  `json:"lng,omitempty"`
	Types        []string `json:"types,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Website      string   `json:"website,omitempty"`
	OpeningHours []string `json:"opening_hours,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "Autocomplete travel destinations and places for a partial query",
	}, s.handleSuggest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve",
		Description: "Fetch full details for a place selected from suggest results",
	}, s.handleResolve)
}

// handleSuggest handles the suggest tool invocation.
func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	opts := domain.SearchOptions{
		Limit: input.Limit,
		Types: input.Types,
	}
	if input.Latitude != 0 && input.Longitude != 0 {
		opts.Latitude = input.Latitude
		opts.Longitude = input.Longitude
		opts.HasBias = true
	}

	resp, err := s.ports.Autocomplete.Query(ctx, input.Query, opts)
	if err != nil {
		return nil, SuggestOutput{}, err
	}

	output := SuggestOutput{
		Suggestions: make([]SuggestionOutput, len(resp.Suggestions)),
		Total:       resp.Total,
		Degraded:    resp.Degraded(),
	}

	for i := range resp.Suggestions {
		output.Suggestions[i] = SuggestionOutput{
			PlaceID:    resp.Suggestions[i].PlaceID,
			Name:       resp.Suggestions[i].Name,
			Address:    resp.Suggestions[i].Address,
			Latitude:   resp.Suggestions[i].Latitude,
			Longitude:  resp.Suggestions[i].Longitude,
			Types:      resp.Suggestions[i].Types,
			SourceType: resp.Suggestions[i].SourceType,
			Fallback:   resp.Suggestions[i].Fallback,
		}
	}

	return nil, output, nil
}

// handleResolve handles the resolve tool invocation.
func (s *Server) handleResolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	place, err := s.ports.Autocomplete.Resolve(ctx, input.PlaceID, input.SessionToken)
	if err != nil {
		return nil, ResolveOutput{}, err
	}

	output := ResolveOutput{
		PlaceID:      place.PlaceID,
		Name:         place.Name,
		Address:      place.Address,
		Latitude:     place.Latitude,
		Longitude:    place.Longitude,
		Types:        place.Types,
		Rating:       place.Rating,
		Phone:        place.Phone,
		Website:      place.Website,
		OpeningHours: place.OpeningHours,
	}

	return nil, output, nil
}
