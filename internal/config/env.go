package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/giza/internal/logfields"
)

var envFileNames = []string{".env", ".env.local"}

// loadEnvFiles loads the first .env/.env.local found next to the config file,
// then in the working directory. Existing process variables are never overridden.
// Finding no file is not an error.
func loadEnvFiles(configDir string) error {
	seen := make(map[string]struct{})
	for _, dir := range []string{configDir, "."} {
		for _, name := range envFileNames {
			path, err := filepath.Abs(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}

			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err := godotenv.Load(path); err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			slog.Debug("Loaded environment variables", logfields.Path(path))
			return nil
		}
	}
	return nil
}
