package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for TripSearch resources.
	uriScheme = "tripsearch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the recent-search ledger.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "recent",
		Name:        "recent-searches",
		Description: "Recent autocomplete searches, most recent first",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// Static resource for client state counters.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stats",
		Name:        "stats",
		Description: "Autocomplete client state: cache size, ledger size, timing configuration",
		MIMEType:    "application/json",
	}, s.handleStatsResource)
}

// handleRecentResource returns the recent-search ledger.
func (s *Server) handleRecentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	recents := s.ports.Autocomplete.Recent(ctx)

	// Build simplified record list.
	type recentInfo struct {
		Query      string `json:"query"`
		HadResults bool   `json:"had_results"`
		RecordedAt string `json:"recorded_at"`
	}

	infos := make([]recentInfo, len(recents))
	for i := range recents {
		infos[i] = recentInfo{
			Query:      recents[i].Query,
			HadResults: recents[i].HadResults,
			RecordedAt: recents[i].RecordedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling recent searches: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleStatsResource returns client state counters.
func (s *Server) handleStatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats := s.ports.Autocomplete.Stats()

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
