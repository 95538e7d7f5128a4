// Package discovery resolves installed applications to directories on disk and
// lists the Python modules in each one that are worth documenting.
package discovery

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	derrors "git.home.luguber.info/inful/giza/internal/discovery/errors"
	"git.home.luguber.info/inful/giza/internal/logfields"
)

// SourceSuffix is the file suffix of candidate modules.
const SourceSuffix = ".py"

// App is an installed application and the modules found relevant in it.
type App struct {
	Name     string   // Dotted application name, e.g. "blog.api"
	Dir      string   // Resolved application directory
	Internal bool     // True when the app lives under the project root
	Modules  []string // Module names without SourceSuffix, in file-name order
}

// Options configures a Discoverer.
type Options struct {
	ProjectRoot     string
	SearchPaths     []string // Searched after ProjectRoot when resolving apps
	ExcludedApps    []string
	ExcludedModules []string
	Relevance       RelevanceFunc // Defaults to SubstringRelevance
	Out             io.Writer     // Diagnostics; defaults to io.Discard
}

// Discoverer turns application names into Apps.
type Discoverer struct {
	projectRoot     string
	roots           []string
	excludedApps    []string
	excludedModules map[string]struct{}
	relevant        RelevanceFunc
	out             io.Writer
}

// New creates a Discoverer from opts.
func New(opts Options) *Discoverer {
	excluded := make(map[string]struct{}, len(opts.ExcludedModules))
	for _, name := range opts.ExcludedModules {
		excluded[name] = struct{}{}
	}

	roots := make([]string, 0, 1+len(opts.SearchPaths))
	roots = append(roots, opts.ProjectRoot)
	for _, p := range opts.SearchPaths {
		if p != "" && p != opts.ProjectRoot {
			roots = append(roots, p)
		}
	}

	d := &Discoverer{
		projectRoot:     opts.ProjectRoot,
		roots:           roots,
		excludedApps:    opts.ExcludedApps,
		excludedModules: excluded,
		relevant:        opts.Relevance,
		out:             opts.Out,
	}
	if d.relevant == nil {
		d.relevant = SubstringRelevance
	}
	if d.out == nil {
		d.out = io.Discard
	}
	return d
}

// Discover builds an App for every name not matched by the exclusion patterns,
// preserving input order. The first unresolvable app or unreadable module aborts
// the whole pass.
func (d *Discoverer) Discover(names []string) ([]App, error) {
	apps := make([]App, 0, len(names))
	for _, name := range names {
		if MatchesExclusion(name, d.excludedApps) {
			slog.Debug("Skipping excluded application", logfields.App(name))
			continue
		}
		app, err := d.App(name)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	slog.Info("Applications discovered", logfields.Count(len(apps)))
	return apps, nil
}

// App resolves a single application and collects its relevant modules.
func (d *Discoverer) App(name string) (App, error) {
	dir, err := d.ResolveDir(name)
	if err != nil {
		return App{}, err
	}

	modules, err := d.modules(name, dir)
	if err != nil {
		return App{}, err
	}

	app := App{
		Name:     name,
		Dir:      dir,
		Internal: d.IsInternal(name),
		Modules:  modules,
	}
	slog.Debug("Application resolved",
		logfields.App(name),
		logfields.Path(dir),
		slog.Bool("internal", app.Internal),
		logfields.Count(len(modules)))
	return app, nil
}

// ResolveDir locates the directory holding the application's source. A package
// resolves to its own directory; a single-file module resolves to the directory
// containing it. Roots are tried in order, project root first.
func (d *Discoverer) ResolveDir(name string) (string, error) {
	segments, err := splitName(name)
	if err != nil {
		return "", err
	}

	for _, root := range d.roots {
		candidate := filepath.Join(append([]string{root}, segments...)...)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return realDir(candidate)
		}
		if info, err := os.Stat(candidate + SourceSuffix); err == nil && !info.IsDir() {
			return realDir(filepath.Dir(candidate))
		}
	}
	return "", fmt.Errorf("%w: %s (searched %s)", derrors.ErrAppNotFound, name, strings.Join(d.roots, ", "))
}

// IsInternal reports whether the app's dotted path exists under the project root.
func (d *Discoverer) IsInternal(name string) bool {
	segments := strings.Split(name, ".")
	_, err := os.Stat(filepath.Join(append([]string{d.projectRoot}, segments...)...))
	return err == nil
}

func (d *Discoverer) modules(app, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrAppDirListFailed, dir, err)
	}

	// os.ReadDir sorts by file name, which keeps generated output stable.
	var modules []string
	for _, entry := range entries {
		fileName := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(fileName, SourceSuffix) {
			continue
		}
		if _, skip := d.excludedModules[fileName]; skip {
			continue
		}

		// #nosec G304 -- path is built from a listed directory entry.
		content, err := os.ReadFile(filepath.Join(dir, fileName))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", derrors.ErrModuleReadFailed, filepath.Join(dir, fileName), err)
		}

		module := strings.TrimSuffix(fileName, SourceSuffix)
		if !d.relevant(content) {
			_, _ = fmt.Fprintf(d.out, "%s.%s not relevant, removed\n", app, module)
			slog.Debug("Module not relevant", logfields.App(app), logfields.Module(module))
			continue
		}
		modules = append(modules, module)
	}
	return modules, nil
}

func splitName(name string) ([]string, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", derrors.ErrInvalidAppName)
	}
	segments := strings.Split(name, ".")
	for _, s := range segments {
		if s == "" || strings.ContainsAny(s, `/\`) {
			return nil, fmt.Errorf("%w: %q", derrors.ErrInvalidAppName, name)
		}
	}
	return segments, nil
}

func realDir(dir string) (string, error) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", derrors.ErrAppNotFound, dir)
		}
		return "", err
	}
	return filepath.Abs(resolved)
}
