package fsx

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMkdirFailsWhenNameTaken(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, Mkdir(fs, "/work"))
	err := Mkdir(fs, "/work")
	assert.ErrorIs(t, err, os.ErrExist)
}

func TestExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, Mkdir(fs, "/work"))

	ok, err := Exists(fs, "/work")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(fs, "/missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListEntries(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, EnsureDir(fs, "/work"))
	require.NoError(t, Mkdir(fs, "/work/1-data"))
	require.NoError(t, afero.WriteFile(fs, "/work/notes.txt", []byte("x"), 0o644))

	names, err := ListEntries(fs, "/work")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1-data", "notes.txt"}, names)
}

func TestListEntriesMissingDir(t *testing.T) {
	fs := afero.NewMemMapFs()

	names, err := ListEntries(fs, "/missing")
	require.NoError(t, err)
	assert.Empty(t, names)
}
