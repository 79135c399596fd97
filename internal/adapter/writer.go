package adapter

import (
	"fmt"
	"os"
	"path/filepath"
)

// ArtifactSuffix is the filename suffix for generated page objects.
const ArtifactSuffix = ".page.ts"

// ArtifactWriter persists generated page-object source.
type ArtifactWriter interface {
	WritePageObject(dir, name, source string) (string, error)
}

type fsArtifactWriter struct{}

// NewArtifactWriter returns a filesystem-backed artifact writer.
func NewArtifactWriter() ArtifactWriter {
	return &fsArtifactWriter{}
}

// WritePageObject writes source to <dir>/<name>.page.ts, creating the
// directory if needed, and returns the written path.
func (w *fsArtifactWriter) WritePageObject(dir, name, source string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name+ArtifactSuffix)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		return "", fmt.Errorf("failed to write page object %s: %w", path, err)
	}

	return path, nil
}
