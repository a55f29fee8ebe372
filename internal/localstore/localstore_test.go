package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcircle/internal/database"
	"github.com/mrlokans/bookcircle/internal/database/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(storage.NewRepository(db.DB))
}

func TestStore_GetItem(t *testing.T) {
	t.Run("missing key reports not found without error", func(t *testing.T) {
		store := setupTestStore(t)

		value, ok, err := store.GetItem("accessToken")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("returns stored value", func(t *testing.T) {
		store := setupTestStore(t)
		require.NoError(t, store.SetItem("accessToken", "demo-access-token"))

		value, ok, err := store.GetItem("accessToken")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "demo-access-token", value)
	})
}

func TestStore_JSONRoundTrip(t *testing.T) {
	type entry struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}

	store := setupTestStore(t)
	require.NoError(t, store.SetJSON("userBooks", []entry{{ID: "a", Status: "reading"}}))

	raw, ok, err := store.GetItem("userBooks")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"a","status":"reading"}]`, raw)

	var got []entry
	found, err := store.GetJSON("userBooks", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []entry{{ID: "a", Status: "reading"}}, got)
}

func TestStore_GetJSON_Malformed(t *testing.T) {
	store := setupTestStore(t)
	require.NoError(t, store.SetItem("currentUser", "{not json"))

	var out map[string]any
	found, err := store.GetJSON("currentUser", &out)

	assert.Error(t, err)
	assert.False(t, found)
}

func TestStore_RemoveItem(t *testing.T) {
	store := setupTestStore(t)
	require.NoError(t, store.SetItem("currentUser", "{}"))
	require.NoError(t, store.SetItem("accessToken", "x"))

	require.NoError(t, store.RemoveItem("currentUser"))

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"accessToken"}, keys)
}

func TestStore_Clear(t *testing.T) {
	store := setupTestStore(t)
	require.NoError(t, store.SetItem("currentUser", "{}"))
	require.NoError(t, store.SetItem("userBooks", "[]"))

	require.NoError(t, store.Clear())

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}
