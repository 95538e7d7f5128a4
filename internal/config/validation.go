package config

import (
	"fmt"
	"strings"

	ferrors "git.home.luguber.info/inful/giza/internal/foundation/errors"
)

// ValidateConfig checks a defaulted configuration.
func ValidateConfig(cfg *Config) error {
	v := &configurationValidator{config: cfg}
	for _, check := range []func() error{
		v.validateApps,
		v.validateDocs,
		v.validateOptions,
		v.validatePaths,
	} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

type configurationValidator struct {
	config *Config
}

func (cv *configurationValidator) validateApps() error {
	seen := make(map[string]struct{}, len(cv.config.InstalledApps))
	for i, name := range cv.config.InstalledApps {
		if strings.TrimSpace(name) == "" {
			return validationError(fmt.Sprintf("installed_apps[%d] is empty", i), nil)
		}
		if _, dup := seen[name]; dup {
			return validationError(fmt.Sprintf("installed_apps lists %q twice", name), nil)
		}
		seen[name] = struct{}{}
	}
	for i, pattern := range cv.config.Exclude.Apps {
		if pattern == "" {
			return validationError(fmt.Sprintf("exclude.apps[%d] is empty", i), nil)
		}
	}
	return nil
}

func (cv *configurationValidator) validateDocs() error {
	d := cv.config.Docs
	for field, value := range map[string]string{
		"docs.index_doc": d.IndexDoc,
		"docs.filename":  d.Filename,
	} {
		if strings.ContainsAny(value, `/\`) {
			return validationError(fmt.Sprintf("%s must be a base name, got %q", field, value), nil)
		}
		if strings.HasSuffix(value, DocSuffix) {
			return validationError(fmt.Sprintf("%s must not include the %s suffix, got %q", field, DocSuffix, value), nil)
		}
	}
	if d.IndexDoc == d.Filename {
		return validationError("docs.filename must differ from docs.index_doc", nil)
	}
	for field, value := range map[string]string{
		"docs.title":          d.Title,
		"docs.internal_title": d.InternalTitle,
		"docs.external_title": d.ExternalTitle,
	} {
		if strings.ContainsAny(value, "\r\n") {
			return validationError(fmt.Sprintf("%s must be a single line", field), nil)
		}
	}
	return nil
}

func (cv *configurationValidator) validateOptions() error {
	for _, opt := range cv.config.AutomoduleOptions {
		if opt == "" || strings.ContainsAny(opt, ": \t\r\n") {
			return validationError(fmt.Sprintf("invalid automodule option %q", opt), nil)
		}
	}
	return nil
}

func (cv *configurationValidator) validatePaths() error {
	for i, p := range cv.config.SearchPaths {
		if strings.TrimSpace(p) == "" {
			return validationError(fmt.Sprintf("search_paths[%d] is empty", i), nil)
		}
	}
	return nil
}

func validationError(message string, cause error) error {
	b := ferrors.ValidationError(message)
	if cause != nil {
		b = b.WithCause(cause)
	}
	return b.Build()
}
