// Package config loads the giza configuration: which applications to document,
// where the docs live and how the generated document looks.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/giza/internal/foundation/errors"
)

// DefaultPath is the configuration file used when -c is not given.
const DefaultPath = "giza.yaml"

// DocSuffix is appended to the configured document base names.
const DocSuffix = ".rst"

// Config represents the giza configuration file.
type Config struct {
	ProjectRoot       string        `yaml:"project_root,omitempty" toml:"project_root,omitempty"`
	SearchPaths       []string      `yaml:"search_paths,omitempty" toml:"search_paths,omitempty"`
	SettingsFile      string        `yaml:"settings_file,omitempty" toml:"settings_file,omitempty"`
	InstalledApps     []string      `yaml:"installed_apps" toml:"installed_apps"`
	Docs              DocsConfig    `yaml:"docs" toml:"docs"`
	Exclude           ExcludeConfig `yaml:"exclude" toml:"exclude"`
	AutomoduleOptions []string      `yaml:"automodule_options" toml:"automodule_options"`
	Relevance         RelevanceMode `yaml:"relevance,omitempty" toml:"relevance,omitempty"`
	Logging           LoggingConfig `yaml:"logging" toml:"logging"`
}

// DocsConfig describes the documentation directory and the generated document.
// Root is relative to the project root; IndexDoc and Filename are base names
// without DocSuffix.
type DocsConfig struct {
	Root          string `yaml:"root" toml:"root"`
	IndexDoc      string `yaml:"index_doc" toml:"index_doc"`
	Filename      string `yaml:"filename" toml:"filename"`
	Title         string `yaml:"title" toml:"title"`
	InternalTitle string `yaml:"internal_title" toml:"internal_title"`
	ExternalTitle string `yaml:"external_title" toml:"external_title"`
	TOCMarker     string `yaml:"toc_marker" toml:"toc_marker"`
}

// ExcludeConfig lists applications and module files that are never documented.
// Apps holds exact names or "prefix.*" patterns, Modules holds file names such
// as "__init__.py".
type ExcludeConfig struct {
	Apps    []string `yaml:"apps" toml:"apps"`
	Modules []string `yaml:"modules" toml:"modules"`
}

// LoggingConfig controls the structured log output on stderr.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty" toml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty" toml:"format,omitempty"`
}

// Load reads, expands, defaults and validates the configuration at configPath.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFiles(filepath.Dir(configPath)); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "load .env file").Fatal().Build()
	}

	// #nosec G304 -- the config path is supplied by the operator.
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ferrors.ConfigError(fmt.Sprintf("configuration file not found: %s", configPath)).
				WithContext("path", configPath).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "read config file").Fatal().
			WithContext("path", configPath).
			Build()
	}

	cfg, err := ParseAs(data, FormatFor(configPath))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse expands environment references in YAML data and decodes it.
func Parse(data []byte) (*Config, error) {
	return ParseAs(data, FormatYAML)
}

// ParseAs expands environment references in data and decodes it as format.
func ParseAs(data []byte, format Format) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := format.unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "unmarshal config").Fatal().
			WithContext("format", string(format)).
			Build()
	}
	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every default applied and no applications.
func Default() *Config {
	cfg := &Config{}
	// Defaults never fail on an empty config.
	_ = applyDefaults(cfg)
	return cfg
}

// DocsRoot returns the absolute documentation directory. A non-empty override
// replaces the configured root and, like it, is relative to projectRoot.
func (c *Config) DocsRoot(projectRoot, override string) string {
	root := c.Docs.Root
	if override != "" {
		root = override
	}
	if filepath.IsAbs(root) {
		return filepath.Clean(root)
	}
	return filepath.Join(projectRoot, root)
}

// GeneratedPath is the generated document's path inside docsRoot.
func (c *Config) GeneratedPath(docsRoot string) string {
	return filepath.Join(docsRoot, c.Docs.Filename+DocSuffix)
}

// IndexPath is the master index document's path inside docsRoot.
func (c *Config) IndexPath(docsRoot string) string {
	return filepath.Join(docsRoot, c.Docs.IndexDoc+DocSuffix)
}

// Init writes an example configuration file, as TOML when configPath ends in
// ".toml" and as YAML otherwise.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ValidationError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).
			WithContext("path", configPath).
			Build()
	}

	example := Default()
	example.InstalledApps = []string{
		"django.contrib.admin",
		"django.contrib.auth",
		"myproject.blog",
	}
	example.SearchPaths = []string{"${VIRTUAL_ENV}/lib/python3.12/site-packages"}

	data, err := FormatFor(configPath).marshal(example)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "marshal example config").Fatal().Build()
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create config directory").Fatal().Build()
		}
	}
	// #nosec G306 -- the example config holds no secrets.
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write config file").Fatal().
			WithContext("path", configPath).
			Build()
	}
	return nil
}
