package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenCreatesKVTable(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "test.sqlite")
	db, err := Open(path)
	require.NoError(err)
	defer db.Close()

	_, err = db.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", "k", "v")
	require.NoError(err)

	var value string
	require.NoError(db.QueryRow("SELECT value FROM kv WHERE key = ?", "k").Scan(&value))
	require.Equal("v", value)
}

func TestOpenTwiceIsNoChange(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "test.sqlite")
	db, err := Open(path)
	require.NoError(err)
	require.NoError(db.Close())

	db, err = Open(path)
	require.NoError(err)
	require.NoError(db.Close())
}
