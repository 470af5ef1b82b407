package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *RecentStore {
	t.Helper()
	store, err := NewRecentStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestRecentStore_Load_MissingFile(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRecentStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	records := []domain.RecentSearch{
		{Query: "hanoi beach", HadResults: true, RecordedAt: now},
		{Query: "saigon", HadResults: false, RecordedAt: now.Add(-time.Minute)},
	}
	require.NoError(t, store.Save(ctx, records))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "hanoi beach", loaded[0].Query)
	assert.True(t, loaded[0].HadResults)
	assert.True(t, loaded[0].RecordedAt.Equal(now))
}

func TestRecentStore_Save_FilePermissions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []domain.RecentSearch{{Query: "hanoi"}}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestRecentStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []domain.RecentSearch{{Query: "hanoi"}}))
	require.NoError(t, store.Clear(ctx))

	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRecentStore_Clear_MissingFile(t *testing.T) {
	store := newTestStore(t)

	// Clearing an absent ledger is not an error.
	assert.NoError(t, store.Clear(context.Background()))
}

func TestRecentStore_Load_CorruptFile(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, os.WriteFile(store.Path(), []byte("not json"), 0600))

	_, err := store.Load(context.Background())
	assert.Error(t, err)
}

func TestNewRecentStore_CreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewRecentStore(dataDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, LedgerFileName), store.Path())

	info, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
