// Package cli implements the cobra command tree for TripSearch.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driven/auth"
	cachemem "github.com/phongnickchinh/tripsearch-cli/internal/adapters/driven/cache/memory"
	configfile "github.com/phongnickchinh/tripsearch-cli/internal/adapters/driven/config/file"
	httpapi "github.com/phongnickchinh/tripsearch-cli/internal/adapters/driven/searchapi/http"
	storagefile "github.com/phongnickchinh/tripsearch-cli/internal/adapters/driven/storage/file"
	storagemem "github.com/phongnickchinh/tripsearch-cli/internal/adapters/driven/storage/memory"
	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driven/storage/sqlite"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driven"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driving"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/services"
	"github.com/phongnickchinh/tripsearch-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "0.1.0"

// DefaultBaseURL is the search backend used when none is configured.
const DefaultBaseURL = "http://localhost:5000/api"

var verbose bool

// Shared services, wired once per invocation by initServices.
// Tests may preset these to inject fakes.
var (
	configStore         driven.ConfigStore
	credentialsStore    *auth.CredentialsStore
	debouncer           *services.Debouncer
	autocompleteService driving.AutocompleteService
)

var rootCmd = &cobra.Command{
	Use:   "tripsearch",
	Short: "Travel place search from your terminal",
	Long: `TripSearch is an autocomplete client for the travel-planning backend.

It keeps network calls and billing cost low: responses are cached with a
TTL, queries are debounced by cost tier, and when the backend is down
suggestions degrade to your recent searches instead of failing.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the adapter stack behind the driving ports.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if autocompleteService != nil {
		// Already wired (tests inject fakes here).
		return nil
	}

	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = cfg

	creds, err := auth.NewCredentialsStore("")
	if err != nil {
		return fmt.Errorf("opening credentials: %w", err)
	}
	credentialsStore = creds

	baseURL := cfg.GetString(configfile.KeyAPIBaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.GetMilliseconds(configfile.KeyAPITimeoutMS, httpapi.DefaultTimeout)
	api := httpapi.NewClient(baseURL, timeout, creds)

	cache := cachemem.NewSuggestionCache(
		cfg.GetMilliseconds(configfile.KeyCacheTTLMS, cachemem.DefaultTTL))

	store, err := buildRecentStore(cfg)
	if err != nil {
		return fmt.Errorf("opening recent-search store: %w", err)
	}
	ledger := services.NewRecentLedger(store, cfg.GetInt(configfile.KeyRecentMax))

	debouncer = services.NewDebouncer(debounceDelay(cfg))
	autocompleteService = services.NewAutocompleteService(
		api, cache, ledger, services.NewSessionTokens(), debouncer)

	return nil
}

// buildRecentStore selects the ledger backend from configuration.
func buildRecentStore(cfg driven.ConfigStore) (driven.RecentStore, error) {
	switch backend := cfg.GetString(configfile.KeyStorageBackend); backend {
	case "", "file":
		return storagefile.NewRecentStore("")
	case "sqlite":
		return sqlite.NewStore("")
	case "memory":
		return storagemem.NewRecentStore(), nil
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", domain.ErrInvalidInput, backend)
	}
}

// debounceDelay resolves the debounce delay: an explicit millisecond
// override wins over the cost tier.
func debounceDelay(cfg driven.ConfigStore) time.Duration {
	if ms := cfg.GetInt(configfile.KeyDebounceMS); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	if raw := cfg.GetString(configfile.KeyCostTier); raw != "" {
		if tier, err := domain.ParseCostTier(raw); err == nil {
			return tier.Delay()
		}
		logger.Warn("Unknown cost tier %q, using normal", raw)
	}
	return domain.CostTierNormal.Delay()
}
