package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/notesexport/internal/config"
	"git.home.luguber.info/inful/notesexport/internal/exporter"
	ferrors "git.home.luguber.info/inful/notesexport/internal/foundation/errors"
	"git.home.luguber.info/inful/notesexport/internal/metrics"
	"git.home.luguber.info/inful/notesexport/internal/version"
)

// DefaultConfigFile is picked up from the working directory when --config is not given.
const DefaultConfigFile = "notesexport.yaml"

// Global is the state shared by every subcommand once flags are parsed.
type Global struct {
	Context  context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Verbose  bool
	Recorder *metrics.PrometheusRecorder

	// ExporterOptions are appended to the options derived from Config.
	ExporterOptions []exporter.Option
}

// Exporter builds an Exporter for the configured script source.
func (g *Global) Exporter() (*exporter.Exporter, error) {
	opts := []exporter.Option{exporter.WithLogger(g.Logger)}
	if g.Recorder != nil {
		opts = append(opts, exporter.WithRecorder(g.Recorder))
	}
	return exporter.New(g.Config, append(opts, g.ExporterOptions...)...)
}

// CLI definition & global flags.
type CLI struct {
	Config      string           `short:"c" help:"Configuration file path (default: ./notesexport.yaml when present)" env:"NOTESEXPORT_CONFIG"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	Script      string           `help:"Use this export script instead of the bundled one" placeholder:"PATH"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics for this run to FILE" placeholder:"FILE"`
	VersionFlag kong.VersionFlag `name:"version" help:"Show version and exit"`

	List    ListCmd    `cmd:"" aliases:"ls" help:"List the folders of every Notes account"`
	Export  ExportCmd  `cmd:"" help:"Export a Notes folder to HTML files"`
	Check   CheckCmd   `cmd:"" help:"Check platform and script without running anything"`
	Init    InitCmd    `cmd:"" help:"Write an example configuration file"`
	Help    HelpCmd    `cmd:"" help:"Show help"`
	Version VersionCmd `cmd:"" help:"Show version information"`

	cfg    *config.Config
	logger *slog.Logger
}

// Options returns the kong options shared by main and tests.
func Options() []kong.Option {
	return []kong.Option{
		kong.Name("notesexport"),
		kong.Description("Export Apple Notes folders to HTML through the bundled AppleScript."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.String()},
	}
}

// NewParser builds the kong parser for cli. extra options follow the defaults.
func NewParser(cli *CLI, extra ...kong.Option) *kong.Kong {
	return kong.Must(cli, append(Options(), extra...)...)
}

// Parse parses args. Parse errors print the error and the usage text to
// stderr and exit through kong; the returned context is nil in that case
// when the parser's exit function returns.
func Parse(parser *kong.Kong, args []string) *kong.Context {
	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Stdout = parser.Stderr
		parser.FatalIfErrorf(err)
		return nil
	}
	return ctx
}

// AfterApply runs after flag parsing; load configuration and set up logging once.
// 'init' creates the file named by --config, so it starts from the defaults.
func (c *CLI) AfterApply(kctx *kong.Context) error {
	cfg := config.Default(config.InstallRoot())
	if kctx.Command() != "init" {
		loaded, err := config.Load(c.configPath(), config.InstallRoot())
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.Script != "" {
		cfg.Script.Path = c.Script
	}
	if c.MetricsFile != "" {
		cfg.Metrics.Textfile = c.MetricsFile
	}

	c.cfg = cfg
	c.logger = cfg.Logging.NewLogger(os.Stderr, c.Verbose)
	slog.SetDefault(c.logger)
	return nil
}

func (c *CLI) configPath() string {
	if c.Config != "" {
		return c.Config
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

// Global returns the shared state built by AfterApply.
func (c *CLI) Global() *Global {
	g := &Global{
		Context: context.Background(),
		Config:  c.cfg,
		Logger:  c.logger,
		Verbose: c.Verbose,
	}
	if g.Logger == nil {
		g.Logger = slog.Default()
	}
	if c.cfg != nil && c.cfg.Metrics.Textfile != "" {
		g.Recorder = metrics.NewPrometheusRecorder(nil)
	}
	return g
}

// Execute runs the selected command and returns the process exit code.
// Taxonomy errors are printed as "Error: <message>" with a per-kind code;
// anything else is passed to kong unchanged.
func Execute(ctx *kong.Context, g *Global) int {
	err := ctx.Run(g)
	flushMetrics(g)

	if err == nil {
		return 0
	}
	adapter := ferrors.NewCLIErrorAdapter(g.Verbose, g.Logger)
	if code, handled := adapter.Handle(ctx.Stderr, err); handled {
		return code
	}
	ctx.FatalIfErrorf(err)
	return ferrors.ExitGeneral
}

func flushMetrics(g *Global) {
	if g.Recorder == nil || g.Config == nil {
		return
	}
	path := g.Config.Metrics.Textfile
	if err := metrics.WriteTextfile(path, g.Recorder.Registry()); err != nil {
		g.Logger.Warn("Failed to write metrics", "error", err)
		return
	}
	g.Logger.Debug("Metrics written", "path", path)
}
