package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDataDir creates the data directory if it does not exist and
// verifies it is writable. The repositories assume the directory is present;
// a missing collection file inside it is fine (seed fallback), a missing or
// read-only directory is a startup error.
func EnsureDataDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	probe := filepath.Join(dir, ".write-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("data dir not writable: %w", err)
	}
	if err := os.Remove(probe); err != nil {
		return fmt.Errorf("clean up write probe: %w", err)
	}
	return nil
}
