package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driven"
	"github.com/phongnickchinh/tripsearch-cli/internal/logger"
)

// RecentLedger maintains the bounded, persisted log of past queries.
// It is a best-effort fallback, not a system of record: persistence
// failures are logged and swallowed, and a read failure yields an
// empty list rather than an error.
type RecentLedger struct {
	mu    sync.Mutex
	store driven.RecentStore
	limit int
	now   func() time.Time
}

// NewRecentLedger creates a ledger backed by the given store.
// A limit of zero or less uses domain.DefaultRecentLimit.
func NewRecentLedger(store driven.RecentStore, limit int) *RecentLedger {
	if limit <= 0 {
		limit = domain.DefaultRecentLimit
	}
	return &RecentLedger{
		store: store,
		limit: limit,
		now:   time.Now,
	}
}

// SetNow overrides the clock. Only used by tests.
func (l *RecentLedger) SetNow(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// Limit returns the maximum number of records kept.
func (l *RecentLedger) Limit() int {
	return l.limit
}

// List returns all records, most-recent-first.
func (l *RecentLedger) List(ctx context.Context) []domain.RecentSearch {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx)
}

// Record logs a completed query attempt. Any existing record with the
// same query moves to the front; the list is truncated to the bound and
// persisted. Persistence failures do not propagate.
func (l *RecentLedger) Record(ctx context.Context, query string, hadResults bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	records := l.load(ctx)

	// De-duplicate by query; the new occurrence wins and moves to front.
	kept := make([]domain.RecentSearch, 0, len(records)+1)
	kept = append(kept, domain.RecentSearch{
		Query:      query,
		HadResults: hadResults,
		RecordedAt: l.now(),
	})
	for _, r := range records {
		if r.Query != query {
			kept = append(kept, r)
		}
	}
	if len(kept) > l.limit {
		kept = kept[:l.limit]
	}

	if err := l.store.Save(ctx, kept); err != nil {
		logger.Warn("Recent ledger save failed: %v", err)
	}
}

// Match returns up to limit records whose query contains text as a
// case-insensitive substring, most-recent-first.
func (l *RecentLedger) Match(ctx context.Context, text string, limit int) []domain.RecentSearch {
	text = domain.NormalizeQuery(text)

	l.mu.Lock()
	records := l.load(ctx)
	l.mu.Unlock()

	matched := make([]domain.RecentSearch, 0, limit)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Query), text) {
			matched = append(matched, r)
			if len(matched) >= limit {
				break
			}
		}
	}
	return matched
}

// Clear erases the persisted ledger.
func (l *RecentLedger) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.store.Clear(ctx); err != nil {
		logger.Warn("Recent ledger clear failed: %v", err)
	}
}

// load reads the persisted records (caller must hold lock).
// A failed read degrades to an empty ledger.
func (l *RecentLedger) load(ctx context.Context) []domain.RecentSearch {
	records, err := l.store.Load(ctx)
	if err != nil {
		logger.Warn("Recent ledger load failed: %v", err)
		return []domain.RecentSearch{}
	}
	return records
}
