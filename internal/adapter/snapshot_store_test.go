package adapter

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/tomodakengo/playwright-ai/internal/model"
)

func sampleSnapshot(name string, at time.Time) *m.Snapshot {
	loc := m.NewRoleLocator("button", "Log in")

	return &m.Snapshot{
		URL:          "https://example.com/" + name,
		Page:         name,
		GeneratedAt:  at,
		ElementCount: 1,
		Elements: m.ResolvedBatch{{
			Identifier: "loginButton",
			Locator:    loc,
			Expression: loc.Source(),
			Category:   m.CategoryButton,
			Descriptor: m.Descriptor{Tag: "button", AriaLabel: m.String("Log in")},
		}},
		Config: m.DefaultConfig(),
	}
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	store := NewSnapshotStore()
	path := filepath.Join(t.TempDir(), "login"+SnapshotSuffix)

	in := sampleSnapshot("login", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, store.Save(path, in))

	out, err := store.Load(path)
	require.NoError(t, err)

	assert.Equal(t, in.URL, out.URL)
	assert.Equal(t, in.Page, out.Page)
	assert.True(t, in.GeneratedAt.Equal(out.GeneratedAt))
	assert.Equal(t, in.ElementCount, out.ElementCount)
	assert.Equal(t, in.Elements, out.Elements)
	assert.Equal(t, in.Config, out.Config)

	// The descriptor's optional fields survive with presence intact.
	require.NotNil(t, out.Elements[0].Descriptor.AriaLabel)
	assert.Nil(t, out.Elements[0].Descriptor.Label)
}

func TestSnapshotStoreLoadMissing(t *testing.T) {
	store := NewSnapshotStore()

	_, err := store.Load(filepath.Join(t.TempDir(), "absent"+SnapshotSuffix))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrCorruptSnapshot)
}

func TestSnapshotStoreLoadCorrupt(t *testing.T) {
	store := NewSnapshotStore()
	path := filepath.Join(t.TempDir(), "broken"+SnapshotSuffix)
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := store.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptSnapshot, "corrupt metadata must never pass as missing baseline")
}

func TestSnapshotStoreLatest(t *testing.T) {
	store := NewSnapshotStore()
	dir := t.TempDir()

	older := sampleSnapshot("old", time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	newer := sampleSnapshot("new", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, store.Save(filepath.Join(dir, "old"+SnapshotSuffix), older))
	require.NoError(t, store.Save(filepath.Join(dir, "new"+SnapshotSuffix), newer))

	latest, path, err := store.Latest(dir)
	require.NoError(t, err)
	assert.Equal(t, "new", latest.Page)
	assert.Equal(t, filepath.Join(dir, "new"+SnapshotSuffix), path)
}

func TestSnapshotStoreLatestEmptyDir(t *testing.T) {
	store := NewSnapshotStore()

	_, _, err := store.Latest(t.TempDir())
	require.Error(t, err)
}
