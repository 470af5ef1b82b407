package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	resolveToken string
	resolveJSON  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [place-id]",
	Short: "Fetch full details for a suggested place",
	Long: `Fetches full details for a place previously returned by suggest.

Resolving a place closes the current autocomplete billing session; the
next suggest call starts a new one. Unlike suggest, a resolve failure is
reported as an error - there is no fallback for place details.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveToken, "token", "", "session token (defaults to the active session)")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output details as JSON")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	placeID := args[0]

	if autocompleteService == nil {
		return errors.New("autocomplete service not configured")
	}

	place, err := autocompleteService.Resolve(cmd.Context(), placeID, resolveToken)
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	if resolveJSON {
		return outputJSON(cmd, place)
	}

	cmd.Printf("%s\n", place.Name)
	if place.Address != "" {
		cmd.Printf("  Address: %s\n", place.Address)
	}
	if place.Latitude != 0 || place.Longitude != 0 {
		cmd.Printf("  Location: %.6f, %.6f\n", place.Latitude, place.Longitude)
	}
	if len(place.Types) > 0 {
		cmd.Printf("  Types: %s\n", strings.Join(place.Types, ", "))
	}
	if place.Rating > 0 {
		cmd.Printf("  Rating: %.1f\n", place.Rating)
	}
	if place.Phone != "" {
		cmd.Printf("  Phone: %s\n", place.Phone)
	}
	if place.Website != "" {
		cmd.Printf("  Website: %s\n", place.Website)
	}
	for _, hours := range place.OpeningHours {
		cmd.Printf("  Hours: %s\n", hours)
	}
	return nil
}
