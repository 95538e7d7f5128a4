// Package writer assembles the generated automodule index document and writes it to disk.
package writer

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/giza/internal/discovery"
	"git.home.luguber.info/inful/giza/internal/logfields"
	"git.home.luguber.info/inful/giza/internal/rst"
)

// Heading levels used by the generated document.
const (
	titleLevel   = 1
	sectionLevel = 2
	appLevel     = 3
	moduleLevel  = 4
)

// Header is the comment block opening every generated document.
var Header = []string{
	".. This file is auto-generated by the giza generate command",
	"   (When you add and remove modules from the project you'll need to",
	"   re-run the command to generate this file again)",
	"",
}

// Options configures a ModulesWriter.
type Options struct {
	Path              string // Target file, overwritten on Write
	Title             string
	InternalTitle     string
	ExternalTitle     string
	AutomoduleOptions []string
	Out               io.Writer // Diagnostics; defaults to io.Discard
}

// ModulesWriter collects automodule blocks for internal and external apps.
type ModulesWriter struct {
	opts     Options
	internal []string
	external []string
	out      io.Writer
}

// New creates a ModulesWriter.
func New(opts Options) *ModulesWriter {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &ModulesWriter{opts: opts, out: out}
}

// Path returns the target file path.
func (w *ModulesWriter) Path() string { return w.opts.Path }

// FileName returns the target file's base name without extension,
// which is how the master index refers to it.
func (w *ModulesWriter) FileName() string {
	base := filepath.Base(w.opts.Path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// AddApps adds every app in order.
func (w *ModulesWriter) AddApps(apps []discovery.App) {
	for i := range apps {
		w.AddApp(apps[i])
	}
}

// AddApp appends the automodule block for app to its section. An app without
// modules contributes nothing and is reported on the diagnostics writer.
func (w *ModulesWriter) AddApp(app discovery.App) {
	if len(app.Modules) == 0 {
		_, _ = fmt.Fprintf(w.out, "no modules in app %s\n", app.Name)
		slog.Debug("Skipping application without modules", logfields.App(app.Name))
		return
	}

	block := rst.MustHeading(appLevel, app.Name, 1)
	for _, module := range app.Modules {
		block = append(block, rst.MustHeading(moduleLevel, module, 1)...)
		block = append(block, rst.Automodule(app.Name+"."+module, w.opts.AutomoduleOptions)...)
		block = append(block, "")
	}

	if app.Internal {
		w.internal = append(w.internal, block...)
	} else {
		w.external = append(w.external, block...)
	}
}

// Lines renders the full document: header, internal section, external section.
func (w *ModulesWriter) Lines() []string {
	lines := make([]string, 0, len(Header)+len(w.internal)+len(w.external)+16)
	lines = append(lines, Header...)
	lines = append(lines, rst.MustHeading(titleLevel, w.opts.Title, 2)...)
	lines = appendSection(lines, w.opts.InternalTitle, w.internal)
	lines = appendSection(lines, w.opts.ExternalTitle, w.external)
	return lines
}

func appendSection(lines []string, title string, body []string) []string {
	lines = append(lines, "")
	lines = append(lines, rst.MustHeading(sectionLevel, title, 1)...)
	return append(lines, body...)
}

// Write creates or truncates the target file and writes one newline-terminated
// line per document line. The parent directory is created when missing.
func (w *ModulesWriter) Write() error {
	if err := os.MkdirAll(filepath.Dir(w.opts.Path), 0o750); err != nil {
		return fmt.Errorf("create docs directory: %w", err)
	}

	// #nosec G304 -- path comes from the loaded configuration.
	file, err := os.Create(w.opts.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", w.opts.Path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	lines := w.Lines()
	if err := WriteLines(file, lines); err != nil {
		return fmt.Errorf("write %s: %w", w.opts.Path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", w.opts.Path, err)
	}

	slog.Info("Generated document written", logfields.Path(w.opts.Path), slog.Int("lines", len(lines)))
	return nil
}

// WriteLines writes each line followed by a newline.
func WriteLines(dst io.Writer, lines []string) error {
	bw := bufio.NewWriter(dst)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
