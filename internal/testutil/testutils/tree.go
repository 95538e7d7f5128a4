package helpers

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTree creates files (slash-separated path relative to root -> content)
// under root, creating parent directories as needed.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatalf("create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

// NewProjectTree returns a temporary directory populated with files.
func NewProjectTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	WriteTree(t, root, files)
	return root
}

// ReadFile returns the content of root/rel, failing the test when it cannot be read.
func ReadFile(t *testing.T, root, rel string) string {
	t.Helper()
	// #nosec G304 - test helper, paths are controlled by test code
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}
