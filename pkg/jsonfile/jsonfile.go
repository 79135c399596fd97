// Package jsonfile provides atomic JSON file persistence with errors
// that let callers tell a missing file from a corrupt one.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrMalformed wraps any JSON decoding failure so callers can
// distinguish a corrupt file from a missing one with errors.Is.
var ErrMalformed = errors.New("malformed JSON file")

// Write marshals v with indentation and writes it atomically: the data
// lands in a temp file in the target directory and is renamed over the
// destination, so readers never observe a partial file.
func Write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}

	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(append(data, '\n'))
	closeErr := tmp.Close()

	if writeErr != nil || closeErr != nil {
		os.Remove(tmpPath)
		if writeErr != nil {
			return fmt.Errorf("failed to write %s: %w", tmpPath, writeErr)
		}

		return fmt.Errorf("failed to close %s: %w", tmpPath, closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename %s: %w", tmpPath, err)
	}

	slog.Debug("wrote JSON file", "path", path, "bytes", len(data))

	return nil
}

// Read unmarshals the file at path into v. A missing file surfaces as
// an error satisfying errors.Is(err, fs.ErrNotExist); invalid JSON
// surfaces as one satisfying errors.Is(err, ErrMalformed). The two are
// never conflated.
func Read(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	return nil
}
