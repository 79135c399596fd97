package jsonfile

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "data.json")

	in := payload{Name: "login", Count: 7}
	require.NoError(t, Write(path, in))

	var out payload
	require.NoError(t, Read(path, &out))
	assert.Equal(t, in, out)
}

func TestWriteReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")

	require.NoError(t, Write(path, payload{Name: "first"}))
	require.NoError(t, Write(path, payload{Name: "second"}))

	var out payload
	require.NoError(t, Read(path, &out))
	assert.Equal(t, "second", out.Name)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestReadMissingFile(t *testing.T) {
	var out payload
	err := Read(filepath.Join(t.TempDir(), "absent.json"), &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrMalformed)
}

func TestReadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var out payload
	err := Read(path, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.NotErrorIs(t, err, fs.ErrNotExist)
}
