package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/giza/internal/config"
	ferrors "git.home.luguber.info/inful/giza/internal/foundation/errors"
	"git.home.luguber.info/inful/giza/internal/version"
)

// Global carries per-process state shared by subcommands.
type Global struct {
	Stdout io.Writer // Human-readable diagnostics
	Stderr io.Writer // Structured logs and error messages
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (.yaml or .toml)" default:"giza.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Generate the automodule index and add it to the master index"`
	Discover DiscoverCmd `cmd:"" help:"List the applications and modules that would be documented"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`

	stderr io.Writer `kong:"-"`
}

// AfterApply runs after flag parsing; logging starts at info (-v: debug) until
// the configuration is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// Execute parses args, runs the selected command and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer, exit func(int)) int {
	cli := &CLI{stderr: stderr}
	parser, err := kong.New(cli,
		kong.Name("giza"),
		kong.Description("Generate a Sphinx automodule index for the applications of a Django project."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
	if err != nil {
		return ferrors.NewCLIErrorAdapter(false, nil).WithOutput(stderr).Report(
			ferrors.InternalError("build command line parser").WithCause(err).Build())
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return ferrors.NewCLIErrorAdapter(false, nil).WithOutput(stderr).Report(
			ferrors.ValidationError("invalid arguments").WithCause(err).Build())
	}

	globals := &Global{Stdout: stdout, Stderr: stderr}
	if err := ctx.Run(globals, cli); err != nil {
		return ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).
			WithOutput(stderr).
			WithColor(isFile(stderr)).
			Report(err)
	}
	return 0
}

// loadConfig loads the configuration and switches logging to its settings.
// -v always wins over the configured level.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	configureLogging(cfg.Logging, root.Verbose, root.stderr)
	return cfg, nil
}

func configureLogging(lc config.LoggingConfig, verbose bool, w io.Writer) {
	level := lc.Level.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if lc.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func isFile(w io.Writer) bool {
	_, ok := w.(*os.File)
	return ok
}

func workingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "determine working directory").Fatal().Build()
	}
	return wd, nil
}
