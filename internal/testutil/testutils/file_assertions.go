package helpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FileAssertions provides utilities for asserting file system state in tests.
type FileAssertions struct {
	t       *testing.T
	baseDir string
}

// NewFileAssertions creates a new file assertions helper rooted at baseDir.
func NewFileAssertions(t *testing.T, baseDir string) *FileAssertions {
	return &FileAssertions{
		t:       t,
		baseDir: baseDir,
	}
}

// AssertFileExists validates that a regular file exists.
func (fa *FileAssertions) AssertFileExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := fa.path(relativePath)
	stat, err := os.Stat(fullPath)
	switch {
	case os.IsNotExist(err):
		fa.t.Errorf("Expected file to exist: %s", fullPath)
	case err == nil && stat.IsDir():
		fa.t.Errorf("Expected %s to be a file, but it's a directory", fullPath)
	}
	return fa
}

// AssertNoFile validates that nothing exists at relativePath.
func (fa *FileAssertions) AssertNoFile(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := fa.path(relativePath)
	if _, err := os.Stat(fullPath); err == nil {
		fa.t.Errorf("Expected no file at %s", fullPath)
	}
	return fa
}

// AssertFileContains validates that a file contains expected content.
func (fa *FileAssertions) AssertFileContains(relativePath, expectedContent string) *FileAssertions {
	fa.t.Helper()
	content, ok := fa.read(relativePath)
	if ok && !strings.Contains(content, expectedContent) {
		fa.t.Errorf("Expected file %s to contain %q\nActual content:\n%s",
			relativePath, expectedContent, content)
	}
	return fa
}

// AssertFileEquals validates the exact content of a file.
func (fa *FileAssertions) AssertFileEquals(relativePath, expectedContent string) *FileAssertions {
	fa.t.Helper()
	content, ok := fa.read(relativePath)
	if ok && content != expectedContent {
		fa.t.Errorf("Unexpected content in %s\nExpected:\n%s\nActual:\n%s",
			relativePath, expectedContent, content)
	}
	return fa
}

// AssertOccurrences validates how many times needle appears in a file.
func (fa *FileAssertions) AssertOccurrences(relativePath, needle string, want int) *FileAssertions {
	fa.t.Helper()
	content, ok := fa.read(relativePath)
	if got := strings.Count(content, needle); ok && got != want {
		fa.t.Errorf("Expected %q %d time(s) in %s, found %d", needle, want, relativePath, got)
	}
	return fa
}

func (fa *FileAssertions) path(relativePath string) string {
	return filepath.Join(fa.baseDir, filepath.FromSlash(relativePath))
}

func (fa *FileAssertions) read(relativePath string) (string, bool) {
	fa.t.Helper()
	fullPath := fa.path(relativePath)
	// #nosec G304 - test helper, paths are controlled by test code
	content, err := os.ReadFile(fullPath)
	if err != nil {
		fa.t.Errorf("Failed to read file %s: %v", fullPath, err)
		return "", false
	}
	return string(content), true
}
