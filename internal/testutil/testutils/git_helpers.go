package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
)

// SetupTestGitRepo initializes a temporary git repository for testing.
// Returns the repository and the symlink-free absolute path of its worktree.
func SetupTestGitRepo(t *testing.T) (*git.Repository, string) {
	t.Helper()

	tempDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	repo, err := git.PlainInit(tempDir, false)
	if err != nil {
		t.Fatalf("failed to initialize git repo: %v", err)
	}
	return repo, tempDir
}

// Mkdir creates root/rel (and parents) and returns its path.
func Mkdir(t *testing.T, root, rel string) string {
	t.Helper()
	dir := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("create %s: %v", dir, err)
	}
	return dir
}
