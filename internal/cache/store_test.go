package cache

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	return NewStore(afero.NewMemMapFs(), "/cache", ttl)
}

func TestStorePutAndOpen(t *testing.T) {
	store := newMemStore(t, time.Hour)

	err := store.Put("sisyphus", func(w io.Writer) error {
		_, err := w.Write([]byte(`{"packages": []}`))
		return err
	})
	require.NoError(t, err)

	f, err := store.Open("sisyphus")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, `{"packages": []}`, string(data))
}

func TestStoreFreshness(t *testing.T) {
	store := newMemStore(t, time.Hour)
	require.NoError(t, store.Put("p11", func(w io.Writer) error {
		_, err := w.Write([]byte("{}"))
		return err
	}))

	assert.True(t, store.Fresh("p11"))
	assert.False(t, store.Fresh("p10"), "missing file must count as stale")

	// Entry written more than a TTL ago is stale.
	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	assert.False(t, store.Fresh("p11"))
}

func TestStorePutFailureLeavesNoPartialFile(t *testing.T) {
	store := newMemStore(t, time.Hour)
	require.NoError(t, store.Put("p11", func(w io.Writer) error {
		_, err := w.Write([]byte("original"))
		return err
	}))

	err := store.Put("p11", func(w io.Writer) error {
		w.Write([]byte("trunc"))
		return errors.New("connection reset")
	})
	require.Error(t, err)

	// The previous entry is untouched and no .part file remains.
	f, err := store.Open("p11")
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	exists, err := afero.Exists(store.fs, store.Path("p11")+".part")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStoreInvalidate(t *testing.T) {
	store := newMemStore(t, time.Hour)
	require.NoError(t, store.Put("p11", func(w io.Writer) error {
		_, err := w.Write([]byte("{}"))
		return err
	}))

	require.NoError(t, store.Invalidate("p11"))
	assert.False(t, store.Fresh("p11"))

	// Invalidating a missing entry is not an error.
	assert.NoError(t, store.Invalidate("p11"))
}
