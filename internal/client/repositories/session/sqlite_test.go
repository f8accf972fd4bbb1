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
	db, err := sql.Open("sqlite", "file:sessionstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_SetGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte("tok123")))
	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok123"), v)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyCart, []byte("[]")))
	require.NoError(t, r.Set(ctx, KeyCart, []byte(`[{"offre_id":"o1"}]`)))

	v, err := r.Get(ctx, KeyCart)
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"offre_id":"o1"}]`), v)
}

func TestSQLiteStore_GetAbsentKeyReturnsNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteStore(db)

	v, err := r.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteStore_DeleteAndClear(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte("tok")))
	require.NoError(t, r.Set(ctx, KeyCart, []byte("[]")))

	require.NoError(t, r.Delete(ctx, KeyToken))
	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Nil(t, v)

	// delete is idempotent
	require.NoError(t, r.Delete(ctx, KeyToken))

	require.NoError(t, r.Clear(ctx))
	v, err = r.Get(ctx, KeyCart)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemoryStore_MatchesContract(t *testing.T) {
	r := NewMemoryStore()
	ctx := context.Background()

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Set(ctx, KeyToken, []byte("tok")))
	v, err = r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok"), v)

	require.NoError(t, r.Delete(ctx, KeyToken))
	v, err = r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Nil(t, v)
}
