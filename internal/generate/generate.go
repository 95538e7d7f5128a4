// Package generate runs a full documentation pass: discover applications, write
// the automodule index and reference it from the master index document.
package generate

import (
	"errors"
	"io"
	"log/slog"

	"git.home.luguber.info/inful/giza/internal/config"
	"git.home.luguber.info/inful/giza/internal/discovery"
	derrors "git.home.luguber.info/inful/giza/internal/discovery/errors"
	ferrors "git.home.luguber.info/inful/giza/internal/foundation/errors"
	"git.home.luguber.info/inful/giza/internal/logfields"
	"git.home.luguber.info/inful/giza/internal/projectroot"
	"git.home.luguber.info/inful/giza/internal/settings"
	"git.home.luguber.info/inful/giza/internal/toc"
	"git.home.luguber.info/inful/giza/internal/writer"
)

// Options are the per-invocation inputs that do not come from the config file.
type Options struct {
	StartDir string    // Directory the project root is resolved from
	DocsRoot string    // Optional override of docs.root, relative to the project root
	Out      io.Writer // Diagnostics; defaults to io.Discard
}

// Report summarizes a run.
type Report struct {
	ProjectRoot   string
	DocsRoot      string
	GeneratedPath string
	IndexPath     string
	Apps          []discovery.App
	IndexResult   toc.Result
}

// Plan resolves the project root and discovers applications without touching any file.
func Plan(cfg *config.Config, opts Options) (*Report, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	root, err := projectroot.Resolve(cfg.ProjectRoot, opts.StartDir)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "resolve project root").Fatal().Build()
	}

	names, err := appNames(cfg, root)
	if err != nil {
		return nil, err
	}

	d := discovery.New(discovery.Options{
		ProjectRoot:     root,
		SearchPaths:     absPaths(root, cfg.SearchPaths),
		ExcludedApps:    cfg.Exclude.Apps,
		ExcludedModules: cfg.Exclude.Modules,
		Relevance:       RelevanceFor(cfg.Relevance),
		Out:             out,
	})
	apps, err := d.Discover(names)
	if err != nil {
		return nil, classifyDiscovery(err)
	}

	docsRoot := cfg.DocsRoot(root, opts.DocsRoot)
	return &Report{
		ProjectRoot:   root,
		DocsRoot:      docsRoot,
		GeneratedPath: cfg.GeneratedPath(docsRoot),
		IndexPath:     cfg.IndexPath(docsRoot),
		Apps:          apps,
	}, nil
}

// Run performs Plan, writes the generated document and patches the master index.
func Run(cfg *config.Config, opts Options) (*Report, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	report, err := Plan(cfg, opts)
	if err != nil {
		return nil, err
	}

	w := writer.New(writer.Options{
		Path:              report.GeneratedPath,
		Title:             cfg.Docs.Title,
		InternalTitle:     cfg.Docs.InternalTitle,
		ExternalTitle:     cfg.Docs.ExternalTitle,
		AutomoduleOptions: cfg.AutomoduleOptions,
		Out:               out,
	})
	w.AddApps(report.Apps)
	if err := w.Write(); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "write generated document").Fatal().
			WithContext(logfields.KeyPath, report.GeneratedPath).
			Build()
	}

	result, err := toc.Patch(report.IndexPath, w.FileName(), cfg.Docs.TOCMarker, out)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "patch master index").Fatal().
			WithContext(logfields.KeyPath, report.IndexPath).
			Build()
	}
	report.IndexResult = result

	slog.Info("Documentation index generated",
		logfields.Path(report.GeneratedPath),
		logfields.Count(len(report.Apps)),
		slog.String("index", result.String()))
	return report, nil
}

// RelevanceFor maps the configured mode onto a discovery predicate.
func RelevanceFor(mode config.RelevanceMode) discovery.RelevanceFunc {
	if mode == config.RelevanceDeclaration {
		return discovery.DeclarationRelevance
	}
	return discovery.SubstringRelevance
}

// appNames merges installed_apps with the settings file apps, first occurrence wins.
func appNames(cfg *config.Config, root string) ([]string, error) {
	names := append([]string(nil), cfg.InstalledApps...)
	if cfg.SettingsFile != "" {
		path := absPath(root, cfg.SettingsFile)
		fromSettings, err := settings.InstalledApps(path)
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "read INSTALLED_APPS").Fatal().
				WithContext(logfields.KeyPath, path).
				Build()
		}
		slog.Debug("Loaded INSTALLED_APPS from settings", logfields.Path(path), logfields.Count(len(fromSettings)))
		names = append(names, fromSettings...)
	}

	seen := make(map[string]struct{}, len(names))
	unique := names[:0]
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique, nil
}

func classifyDiscovery(err error) error {
	switch {
	case errors.Is(err, derrors.ErrAppNotFound):
		return ferrors.NotFoundError("application not found").WithCause(err).Build()
	case errors.Is(err, derrors.ErrInvalidAppName):
		return ferrors.ValidationError("invalid application name").WithCause(err).Build()
	case errors.Is(err, derrors.ErrModuleReadFailed), errors.Is(err, derrors.ErrAppDirListFailed):
		return ferrors.FileSystemError("read application sources").WithCause(err).Build()
	default:
		return ferrors.DiscoveryError("discover applications").WithCause(err).Build()
	}
}
