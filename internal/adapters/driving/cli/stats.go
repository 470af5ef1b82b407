package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show autocomplete client statistics",
	Long:  `Shows cache size, recent-search count, and tuning parameters.`,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if autocompleteService == nil {
		return errors.New("autocomplete service not configured")
	}

	stats := autocompleteService.Stats()

	if statsJSON {
		return outputJSON(cmd, stats)
	}

	cmd.Printf("Cached responses:  %d\n", stats.CacheSize)
	cmd.Printf("Recent searches:   %d\n", stats.RecentCount)
	cmd.Printf("Cache TTL:         %dms\n", stats.CacheTTLMS)
	cmd.Printf("Debounce delay:    %dms\n", stats.DebounceDelayMS)
	return nil
}
