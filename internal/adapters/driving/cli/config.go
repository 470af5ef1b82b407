package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage TripSearch configuration",
	Long: `Reads and writes the TOML configuration file.

Recognized keys:
  api.base_url        search backend base URL
  api.timeout_ms      HTTP request timeout (default 5000)
  search.cost_tier    cheap | normal | expensive | none
  search.debounce_ms  explicit debounce delay, overrides cost tier
  search.cache_ttl_ms suggestion cache TTL (default 3600000)
  search.limit        default suggestion limit
  recent.max_entries  recent-search ledger bound (default 20)
  storage.backend     file | sqlite | memory`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	RunE:  runConfigList,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// Store integers as integers so millisecond keys round-trip.
	var value any = raw
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		value = n
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	cmd.Printf("%s = %v\n", key, value)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	keys := []string{
		"api.base_url", "api.timeout_ms",
		"search.cost_tier", "search.debounce_ms", "search.cache_ttl_ms", "search.limit",
		"recent.max_entries", "storage.backend",
	}
	sort.Strings(keys)

	found := false
	for _, key := range keys {
		if val, ok := configStore.Get(key); ok {
			cmd.Printf("%s = %v\n", key, val)
			found = true
		}
	}
	if !found {
		cmd.Printf("No configuration set. File: %s\n", configStore.Path())
	}
	return nil
}
