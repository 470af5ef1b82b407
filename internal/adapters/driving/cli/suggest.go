package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

var (
	suggestLimit    int
	suggestLat      float64
	suggestLng      float64
	suggestTypes    []string
	suggestJSON     bool
	suggestDebounce bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Get autocomplete suggestions for a place query",
	Long: `Fetches place suggestions for a query.

Results are cached for repeated queries, and if the backend is
unreachable the command falls back to your recent searches (marked
"recent" in the output).`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 5, "maximum number of suggestions")
	suggestCmd.Flags().Float64Var(&suggestLat, "lat", 0, "latitude to bias results towards")
	suggestCmd.Flags().Float64Var(&suggestLng, "lng", 0, "longitude to bias results towards")
	suggestCmd.Flags().StringSliceVar(&suggestTypes, "types", nil, "filter by place types (csv)")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output results as JSON")
	suggestCmd.Flags().BoolVar(&suggestDebounce, "debounce", false, "apply the configured debounce delay")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	query := args[0]

	if autocompleteService == nil {
		return errors.New("autocomplete service not configured")
	}

	opts := domain.SearchOptions{
		Limit: suggestLimit,
		Types: suggestTypes,
	}
	if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng") {
		opts.Latitude = suggestLat
		opts.Longitude = suggestLng
		opts.HasBias = true
	}

	ctx := cmd.Context()
	var resp *domain.SearchResponse
	var err error
	if suggestDebounce {
		resp, err = autocompleteService.DebouncedQuery(ctx, query, opts)
	} else {
		resp, err = autocompleteService.Query(ctx, query, opts)
	}
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	if suggestJSON {
		return outputJSON(cmd, resp)
	}
	return outputSuggestTable(cmd, resp)
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSuggestTable(cmd *cobra.Command, resp *domain.SearchResponse) error {
	if len(resp.Suggestions) == 0 {
		cmd.Println("No suggestions found.")
		return nil
	}

	if resp.Degraded() {
		cmd.Println("Backend unreachable - showing recent searches:")
	} else {
		cmd.Printf("Suggestions (%d total):\n", resp.Total)
	}
	cmd.Println()

	for i := range resp.Suggestions {
		s := &resp.Suggestions[i]
		cmd.Printf("  [%d] %s\n", i+1, s.Name)
		if s.Address != "" {
			cmd.Printf("      %s\n", s.Address)
		}
		if s.PlaceID != "" {
			cmd.Printf("      ID: %s\n", s.PlaceID)
		}
		if s.Fallback {
			cmd.Printf("      (from recent searches)\n")
		}
	}

	if resp.QueryTimeMS > 0 {
		cmd.Println()
		cmd.Printf("Query time: %dms\n", resp.QueryTimeMS)
	}
	return nil
}
