// Package projectroot decides which directory counts as the project root.
package projectroot

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/giza/internal/logfields"
)

// Resolve returns the absolute project root. An explicit configured value wins
// (relative values are taken from startDir). Otherwise the top of the git
// worktree containing startDir is used, falling back to startDir itself.
func Resolve(configured, startDir string) (string, error) {
	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	if configured != "" {
		if !filepath.IsAbs(configured) {
			configured = filepath.Join(start, configured)
		}
		return filepath.Clean(configured), nil
	}

	root, err := worktreeRoot(start)
	switch {
	case err == nil:
		slog.Debug("Project root from git worktree", logfields.Path(root))
		return root, nil
	case errors.Is(err, git.ErrRepositoryNotExists), errors.Is(err, git.ErrIsBareRepository):
		slog.Debug("No git worktree, using start directory", logfields.Path(start))
		return start, nil
	default:
		return "", fmt.Errorf("open git repository: %w", err)
	}
}

func worktreeRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	return filepath.Clean(wt.Filesystem.Root()), nil
}
