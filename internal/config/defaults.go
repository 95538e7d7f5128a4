package config

import "fmt"

// Default values, matching what a Django project without giza settings gets.
const (
	DefaultDocsRoot      = "docs"
	DefaultIndexDoc      = "index"
	DefaultFilename      = "auto_modules"
	DefaultTitle         = "Python modules"
	DefaultInternalTitle = "Project Apps"
	DefaultExternalTitle = "3rd Party Apps"
	DefaultTOCMarker     = ":maxdepth: 2"
)

// DefaultExcludedApps skips the framework's own applications and giza itself.
func DefaultExcludedApps() []string { return []string{"django.*", "giza"} }

// DefaultExcludedModules skips package init files.
func DefaultExcludedModules() []string { return []string{"__init__.py"} }

// DefaultAutomoduleOptions are the flag options added to every automodule directive.
func DefaultAutomoduleOptions() []string {
	return []string{"deprecated", "members", "private-members", "special-members", "show-inheritance"}
}

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// DocsDefaultApplier fills the docs section. Empty strings count as unset.
type DocsDefaultApplier struct{}

func (DocsDefaultApplier) Domain() string { return "docs" }

func (DocsDefaultApplier) ApplyDefaults(cfg *Config) error {
	d := &cfg.Docs
	setDefault(&d.Root, DefaultDocsRoot)
	setDefault(&d.IndexDoc, DefaultIndexDoc)
	setDefault(&d.Filename, DefaultFilename)
	setDefault(&d.Title, DefaultTitle)
	setDefault(&d.InternalTitle, DefaultInternalTitle)
	setDefault(&d.ExternalTitle, DefaultExternalTitle)
	setDefault(&d.TOCMarker, DefaultTOCMarker)
	return nil
}

// ListDefaultApplier fills the list settings. Only an omitted key gets the
// default: an explicit empty list (e.g. `apps: []`) disables exclusions.
type ListDefaultApplier struct{}

func (ListDefaultApplier) Domain() string { return "lists" }

func (ListDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Exclude.Apps == nil {
		cfg.Exclude.Apps = DefaultExcludedApps()
	}
	if cfg.Exclude.Modules == nil {
		cfg.Exclude.Modules = DefaultExcludedModules()
	}
	if cfg.AutomoduleOptions == nil {
		cfg.AutomoduleOptions = DefaultAutomoduleOptions()
	}
	return nil
}

// EnumDefaultApplier normalizes the enum-valued settings.
type EnumDefaultApplier struct{}

func (EnumDefaultApplier) Domain() string { return "enums" }

func (EnumDefaultApplier) ApplyDefaults(cfg *Config) error {
	mode, err := relevanceNormalizer.Parse(string(cfg.Relevance))
	if err != nil {
		return err
	}
	cfg.Relevance = mode

	level, err := logLevelNormalizer.Parse(string(cfg.Logging.Level))
	if err != nil {
		return err
	}
	cfg.Logging.Level = level

	format, err := logFormatNormalizer.Parse(string(cfg.Logging.Format))
	if err != nil {
		return err
	}
	cfg.Logging.Format = format
	return nil
}

var defaultAppliers = []DefaultApplier{
	DocsDefaultApplier{},
	ListDefaultApplier{},
	EnumDefaultApplier{},
}

func applyDefaults(cfg *Config) error {
	for _, applier := range defaultAppliers {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return validationError(fmt.Sprintf("applying defaults for %s", applier.Domain()), err)
		}
	}
	return nil
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
