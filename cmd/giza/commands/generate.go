package commands

import (
	"fmt"

	"git.home.luguber.info/inful/giza/internal/generate"
	"git.home.luguber.info/inful/giza/internal/toc"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	DocsRoot string `arg:"" optional:"" name:"docs-root" help:"Documentation directory relative to the project root (overrides docs.root)"`
}

func (g *GenerateCmd) Run(globals *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	wd, err := workingDir()
	if err != nil {
		return err
	}

	report, err := generate.Run(cfg, generate.Options{
		StartDir: wd,
		DocsRoot: g.DocsRoot,
		Out:      globals.Stdout,
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(globals.Stdout, "Wrote %s (%d apps)\n", report.GeneratedPath, len(report.Apps))
	if report.IndexResult == toc.ResultInserted {
		_, _ = fmt.Fprintf(globals.Stdout, "Added %s to %s\n", cfg.Docs.Filename, report.IndexPath)
	}
	return nil
}
