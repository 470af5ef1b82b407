package driven

import (
	"context"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

// RecentStore persists the recent-search ledger across sessions.
// The store holds the full ordered list; dedupe, ordering, and bounding
// are the ledger service's responsibility.
type RecentStore interface {
	// Load returns all persisted records, most-recent-first.
	// A missing ledger is not an error; it loads as an empty list.
	Load(ctx context.Context) ([]domain.RecentSearch, error)

	// Save replaces the persisted ledger with the given records.
	Save(ctx context.Context, records []domain.RecentSearch) error

	// Clear erases the persisted ledger.
	Clear(ctx context.Context) error
}
