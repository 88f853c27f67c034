package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/doco-cli/internal/store"
)

func TestMemoryStore(t *testing.T) {
	st := store.NewMemory()

	_, err := st.Get("missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Set("k", []byte("v1")))
	v, err := st.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	// overwrites replace, and Get hands back a copy
	require.NoError(t, st.Set("k", []byte("v2")))
	v, err = st.Get("k")
	require.NoError(t, err)
	v[0] = 'X'
	again, err := st.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), again)

	require.NoError(t, st.Close())
}

func TestBadgerStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	st, err := store.OpenBadger(dir)
	require.NoError(t, err)

	_, err = st.Get("missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Set("snapshot", []byte(`{"files":{}}`)))
	v, err := st.Get("snapshot")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"files":{}}`), v)
	require.NoError(t, st.Close())

	// values survive reopening the database
	st2, err := store.OpenBadger(dir)
	require.NoError(t, err)
	defer st2.Close()
	v, err = st2.Get("snapshot")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"files":{}}`), v)
}
