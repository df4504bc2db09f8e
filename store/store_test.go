package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mbolis/quick-form/database"
)

// testStore runs the behaviour every Store must share.
func testStore(t *testing.T, s Store) {
	require := require.New(t)

	_, ok, err := s.Get("missing")
	require.NoError(err)
	require.False(ok)

	require.NoError(s.Set("forms", `[{"id":"1"}]`))
	value, ok, err := s.Get("forms")
	require.NoError(err)
	require.True(ok)
	require.Equal(`[{"id":"1"}]`, value)

	require.NoError(s.Set("forms", `[]`))
	value, ok, err = s.Get("forms")
	require.NoError(err)
	require.True(ok)
	require.Equal(`[]`, value)

	require.NoError(s.Set("empty", ""))
	value, ok, err = s.Get("empty")
	require.NoError(err)
	require.True(ok)
	require.Empty(value)
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestBolt(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "forms.db")
	b, err := OpenBolt(path)
	require.NoError(err)
	testStore(t, b)
	require.NoError(b.Set("kept", "yes"))
	require.NoError(b.Close())

	_, _, err = b.Get("kept")
	require.ErrorIs(err, ErrClosed)

	b, err = OpenBolt(path)
	require.NoError(err)
	defer b.Close()
	value, ok, err := b.Get("kept")
	require.NoError(err)
	require.True(ok)
	require.Equal("yes", value)
}

func TestSQL(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "forms.sqlite"))
	require.NoError(t, err)
	defer db.Close()

	testStore(t, NewSQL(db))
}

type countingStore struct {
	*Memory
	gets int
	fail error
}

func (c *countingStore) Get(key string) (string, bool, error) {
	c.gets++
	return c.Memory.Get(key)
}

func (c *countingStore) Set(key, value string) error {
	if c.fail != nil {
		return c.fail
	}
	return c.Memory.Set(key, value)
}

func TestCached(t *testing.T) {
	require := require.New(t)

	backend := &countingStore{Memory: NewMemory()}
	cached, err := NewCached(backend, 4)
	require.NoError(err)
	testStore(t, cached)

	backend.gets = 0
	require.NoError(cached.Set("k", "v1"))
	for i := 0; i < 3; i++ {
		value, ok, err := cached.Get("k")
		require.NoError(err)
		require.True(ok)
		require.Equal("v1", value)
	}
	require.Zero(backend.gets)

	backend.fail = errors.New("quota exceeded")
	require.Error(cached.Set("k", "v2"))
	value, _, err := cached.Get("k")
	require.NoError(err)
	require.Equal("v1", value)
	require.Equal(1, backend.gets)
}

func TestCachedRejectsZeroSize(t *testing.T) {
	_, err := NewCached(NewMemory(), 0)
	require.Error(t, err)
}
