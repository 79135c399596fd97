package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/tomodakengo/playwright-ai/internal/model"
	"github.com/tomodakengo/playwright-ai/pkg/jsonfile"
)

// SnapshotSuffix is the filename suffix for persisted snapshot metadata.
const SnapshotSuffix = ".snapshot.json"

// ErrCorruptSnapshot marks snapshot metadata that exists but cannot be
// parsed. Callers must treat it as a hard error: a corrupt baseline is
// not the same as no baseline, and conflating the two would mask drift.
var ErrCorruptSnapshot = errors.New("corrupt snapshot metadata")

// SnapshotStore persists and loads snapshot metadata files.
type SnapshotStore interface {
	Save(path string, snapshot *m.Snapshot) error
	Load(path string) (*m.Snapshot, error)
	Latest(dir string) (*m.Snapshot, string, error)
}

type fsSnapshotStore struct{}

// NewSnapshotStore returns a filesystem-backed snapshot store.
func NewSnapshotStore() SnapshotStore {
	return &fsSnapshotStore{}
}

func (s *fsSnapshotStore) Save(path string, snapshot *m.Snapshot) error {
	if err := jsonfile.Write(path, snapshot); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (s *fsSnapshotStore) Load(path string) (*m.Snapshot, error) {
	var snapshot m.Snapshot

	if err := jsonfile.Read(path, &snapshot); err != nil {
		if errors.Is(err, jsonfile.ErrMalformed) {
			return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}

		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return &snapshot, nil
}

// Latest loads the most recently generated snapshot in dir, by the
// GeneratedAt timestamp inside the files rather than file mtimes. A
// corrupt file fails the whole lookup.
func (s *fsSnapshotStore) Latest(dir string) (*m.Snapshot, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read snapshot directory %s: %w", dir, err)
	}

	var (
		latest     *m.Snapshot
		latestPath string
	)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), SnapshotSuffix) {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		snapshot, err := s.Load(path)
		if err != nil {
			return nil, "", err
		}

		if latest == nil || snapshot.GeneratedAt.After(latest.GeneratedAt) {
			latest = snapshot
			latestPath = path
		}
	}

	if latest == nil {
		return nil, "", fmt.Errorf("no snapshots found in %s", dir)
	}

	return latest, latestPath, nil
}
