package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/giza/internal/generate"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct{}

func (d *DiscoverCmd) Run(globals *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	wd, err := workingDir()
	if err != nil {
		return err
	}

	report, err := generate.Plan(cfg, generate.Options{StartDir: wd, Out: globals.Stdout})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(globals.Stdout, "Project root: %s\n", report.ProjectRoot)
	for _, app := range report.Apps {
		kind := "external"
		if app.Internal {
			kind = "internal"
		}
		modules := "-"
		if len(app.Modules) > 0 {
			modules = strings.Join(app.Modules, ", ")
		}
		_, _ = fmt.Fprintf(globals.Stdout, "%s (%s): %s\n", app.Name, kind, modules)
	}
	return nil
}
