// Package testing provides shared test helpers for atlas.
package testing

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteCardDir writes the given card files into a fresh temp directory
// and returns its path. Keys are file paths relative to the directory,
// values the file contents. Cleanup is handled by t.TempDir.
func WriteCardDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create card directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write card file %s: %v", name, err)
		}
	}
	return dir
}

// WriteCardFile overwrites one card file under dir. Used to observe
// cache-invalidation behavior after a source mutation.
func WriteCardFile(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write card file %s: %v", name, err)
	}
}
