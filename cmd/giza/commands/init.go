package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/giza/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Directory to write giza.yaml into (defaults to --config)"`
}

func (i *InitCmd) Run(globals *Global, root *CLI) error {
	path := root.Config
	if i.Output != "" {
		path = filepath.Join(i.Output, config.DefaultPath)
	}

	_, _ = fmt.Fprintf(globals.Stdout, "Writing configuration to %s\n", path)
	if err := config.Init(path, i.Force); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(globals.Stdout, "initialized successfully")
	return nil
}
