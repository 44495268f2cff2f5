// Package testutil holds shared helpers for tests that need problem files
// on disk.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteProblemFile writes content into a temp file with the given name and
// returns its path. The file is cleaned up with the test's temp dir.
func WriteProblemFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write problem file: %v", err)
	}
	return path
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
