package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessionrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM session;
`)
	require.NoError(t, err)
	return db
}

func TestGet_MissingKeyReturnsNil(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSetGet_RoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("abc123")))
	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("abc123"), v)
}

func TestSet_Upserts(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("old")))
	require.NoError(t, repo.Set(ctx, KeyToken, []byte("new")))

	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestDelete_RemovesSingleKey(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("t")))
	require.NoError(t, repo.Set(ctx, KeyUser, []byte("u")))
	require.NoError(t, repo.Delete(ctx, KeyToken))

	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = repo.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.Equal(t, []byte("u"), v)
}

func TestClear_RemovesEverything(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, []byte("t")))
	require.NoError(t, repo.Set(ctx, KeyUser, []byte("u")))
	require.NoError(t, repo.Clear(ctx))

	for _, key := range []string{KeyToken, KeyUser} {
		v, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, v)
	}
}
