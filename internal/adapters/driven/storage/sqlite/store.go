// Package sqlite provides the SQLite-backed recent-search store for
// installations that prefer a database over a flat JSON file.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/phongnickchinh/tripsearch-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RecentStore = (*Store)(nil)

// Store is a SQLite-backed implementation of driven.RecentStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.tripsearch/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tripsearch", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "tripsearch.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns all persisted records ordered by ledger position,
// most-recent-first.
func (s *Store) Load(ctx context.Context) ([]domain.RecentSearch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT query, had_results, recorded_at
		FROM recent_searches ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying recent searches: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RecentSearch, 0)
	for rows.Next() {
		var r domain.RecentSearch
		var hadResults int
		if err := rows.Scan(&r.Query, &hadResults, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning recent search: %w", err)
		}
		r.HadResults = hadResults != 0
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recent searches: %w", err)
	}
	return records, nil
}

// Save replaces the persisted ledger with the given records.
// Positions encode the most-recent-first order.
func (s *Store) Save(ctx context.Context, records []domain.RecentSearch) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, `DELETE FROM recent_searches`); err != nil {
		return fmt.Errorf("clearing recent searches: %w", err)
	}

	for i, r := range records {
		hadResults := 0
		if r.HadResults {
			hadResults = 1
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO recent_searches (position, query, had_results, recorded_at)
			VALUES (?, ?, ?, ?)
		`, i, r.Query, hadResults, r.RecordedAt.UTC())
		if err != nil {
			return fmt.Errorf("inserting recent search: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing recent searches: %w", err)
	}
	return nil
}

// Clear erases the persisted ledger.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM recent_searches`); err != nil {
		return fmt.Errorf("clearing recent searches: %w", err)
	}
	return nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_recent_searches.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
