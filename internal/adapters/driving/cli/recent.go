package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var recentJSON bool

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Manage the recent-search ledger",
	Long: `Commands for the persisted ledger of past queries.

The ledger feeds the degraded fallback used when the backend is
unreachable.`,
}

var recentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent searches, newest first",
	RunE:  runRecentList,
}

var recentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase the recent-search ledger",
	RunE:  runRecentClear,
}

func init() {
	recentListCmd.Flags().BoolVar(&recentJSON, "json", false, "output as JSON")
	recentCmd.AddCommand(recentListCmd)
	recentCmd.AddCommand(recentClearCmd)
	rootCmd.AddCommand(recentCmd)
}

func runRecentList(cmd *cobra.Command, _ []string) error {
	if autocompleteService == nil {
		return errors.New("autocomplete service not configured")
	}

	records := autocompleteService.Recent(cmd.Context())

	if recentJSON {
		return outputJSON(cmd, records)
	}

	if len(records) == 0 {
		cmd.Println("No recent searches.")
		return nil
	}

	for i, r := range records {
		marker := " "
		if r.HadResults {
			marker = "*"
		}
		cmd.Printf("  [%d] %s %s (%s)\n", i+1, marker, r.Query, r.RecordedAt.Format("2006-01-02 15:04"))
	}
	cmd.Println()
	cmd.Println("* = returned results")
	return nil
}

func runRecentClear(cmd *cobra.Command, _ []string) error {
	if autocompleteService == nil {
		return errors.New("autocomplete service not configured")
	}

	autocompleteService.ClearAll(cmd.Context())
	cmd.Println("Recent searches and cache cleared.")
	return nil
}
