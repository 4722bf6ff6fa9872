package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get("missing")
	require.ErrorIs(t, err, ErrNoSlot)

	require.NoError(t, store.Put("news", []byte(`[{"id":"1"}]`)))

	got, err := store.Get("news")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"1"}]`), got)

	// Overwrite replaces the whole slot.
	require.NoError(t, store.Put("news", []byte(`[]`)))
	got, err = store.Get("news")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), got)

	require.NoError(t, store.Delete("news"))
	_, err = store.Get("news")
	require.ErrorIs(t, err, ErrNoSlot)

	// Deleting a missing slot is fine.
	require.NoError(t, store.Delete("news"))
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Put("events", []byte(`[{"id":"42"}]`)))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("events")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"42"}]`), got)
}
