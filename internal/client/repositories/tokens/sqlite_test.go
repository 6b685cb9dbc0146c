package tokens

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:tokens_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestLoad_EmptyStoreYieldsZeroPair(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	pair, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.True(t, pair.IsZero())
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, Pair{Access: "A1", Refresh: "R1"}))

	pair, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, Pair{Access: "A1", Refresh: "R1"}, pair)
}

func TestSave_OverwritesBothKeys(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, Pair{Access: "A1", Refresh: "R1"}))
	require.NoError(t, repo.Save(ctx, Pair{Access: "A2", Refresh: "R2"}))

	pair, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, Pair{Access: "A2", Refresh: "R2"}, pair)
}

func TestClear_RemovesBothKeysAndIsIdempotent(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, Pair{Access: "A1", Refresh: "R1"}))
	require.NoError(t, repo.Clear(ctx))

	pair, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, pair.IsZero())

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM credentials`).Scan(&n))
	require.Equal(t, 0, n)

	// clearing again is safe
	require.NoError(t, repo.Clear(ctx))
}
