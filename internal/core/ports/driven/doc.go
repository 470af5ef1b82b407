// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SearchAPI: The remote autocomplete/resolve endpoints
//   - SuggestionCache: In-memory response cache with TTL expiry
//   - RecentStore: Durable storage for the recent-search ledger
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - TokenProvider: Supplies the backend API token. Without it, requests
//     are sent unauthenticated and the backend decides whether to accept them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
