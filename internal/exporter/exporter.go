// Package exporter is the entry point for exporting Apple Notes folders to
// HTML. An Exporter binds one script source for its whole lifetime and runs
// every operation through the same pipeline:
//
//	platform guard -> resolve script -> build invocation -> launch -> map outcome
//
// Each operation comes in a blocking form and an Async form returning a
// *runner.Call. The package-level functions in facade.go build a throwaway
// Exporter for one-off calls.
package exporter

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/notesexport/internal/config"
	"git.home.luguber.info/inful/notesexport/internal/invocation"
	"git.home.luguber.info/inful/notesexport/internal/logfields"
	"git.home.luguber.info/inful/notesexport/internal/metrics"
	"git.home.luguber.info/inful/notesexport/internal/platform"
	"git.home.luguber.info/inful/notesexport/internal/runner"
	"git.home.luguber.info/inful/notesexport/internal/script"
)

// Exporter runs the export script. It is safe to share between goroutines;
// concurrent calls start independent child processes.
type Exporter struct {
	resolver *script.Resolver
	builder  *invocation.Builder
	runner   *runner.Runner
	logger   *slog.Logger
}

type options struct {
	source     *script.Source
	fs         script.FileSystem
	builder    *invocation.Builder
	logger     *slog.Logger
	runnerOpts []runner.Option
}

// Option customizes an Exporter.
type Option func(*options)

// WithScriptPath binds an explicit script file. New fails if it does not exist.
func WithScriptPath(path string) Option {
	return func(o *options) {
		src := script.FromPath(path)
		o.source = &src
	}
}

// WithDefaultScript binds the bundled script even if the config names an explicit one.
func WithDefaultScript() Option {
	return func(o *options) {
		src := script.Default()
		o.source = &src
	}
}

// WithFileSystem replaces the filesystem used to check script existence.
func WithFileSystem(fsys script.FileSystem) Option {
	return func(o *options) { o.fs = fsys }
}

// WithBuilder replaces the invocation builder.
func WithBuilder(b *invocation.Builder) Option {
	return func(o *options) { o.builder = b }
}

// WithLauncher replaces the process launcher.
func WithLauncher(l runner.Launcher) Option {
	return func(o *options) { o.runnerOpts = append(o.runnerOpts, runner.WithLauncher(l)) }
}

// WithGuard replaces the platform guard.
func WithGuard(g platform.Guard) Option {
	return func(o *options) { o.runnerOpts = append(o.runnerOpts, runner.WithGuard(g)) }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) { o.runnerOpts = append(o.runnerOpts, runner.WithRecorder(r)) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
		o.runnerOpts = append(o.runnerOpts, runner.WithLogger(l))
	}
}

// New creates an Exporter from cfg. The script source is the explicit
// cfg.Script.Path when set, otherwise the bundled script; options override
// both. A nil cfg means the defaults for the current install root.
func New(cfg *config.Config, opts ...Option) (*Exporter, error) {
	if cfg == nil {
		cfg = config.Default(config.InstallRoot())
	}

	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	source := script.Default()
	if cfg.Script.Path != "" {
		source = script.FromPath(cfg.Script.Path)
	}
	if o.source != nil {
		source = *o.source
	}

	var resolverOpts []script.Option
	if o.fs != nil {
		resolverOpts = append(resolverOpts, script.WithFileSystem(o.fs))
	}
	resolver, err := script.NewResolver(source, cfg.Script.DefaultPath, resolverOpts...)
	if err != nil {
		return nil, err
	}

	builder := o.builder
	if builder == nil {
		builder = invocation.NewBuilder()
	}

	runnerOpts := append([]runner.Option{runner.WithInterpreter(cfg.Script.Interpreter)}, o.runnerOpts...)
	return &Exporter{
		resolver: resolver,
		builder:  builder,
		runner:   runner.New(runnerOpts...),
		logger:   o.logger,
	}, nil
}

// Source returns the script source bound at construction.
func (e *Exporter) Source() script.Source {
	return e.resolver.Source()
}

// Check runs the platform guard and resolves the script without launching it.
func (e *Exporter) Check() (string, error) {
	if err := e.runner.Preflight(); err != nil {
		return "", err
	}
	return e.resolver.Resolve()
}

// List prints the folders of every account.
func (e *Exporter) List(ctx context.Context) error {
	return e.run(ctx, func() (invocation.Invocation, error) {
		return e.builder.List(), nil
	})
}

// ListAsync is List without blocking the caller.
func (e *Exporter) ListAsync(ctx context.Context) *runner.Call {
	return runner.Go(func() error { return e.List(ctx) })
}

// Export writes the notes of folder to outputDir, creating it if needed.
// folder is "Folder" (searched in every account) or "Account:Folder".
func (e *Exporter) Export(ctx context.Context, folder, outputDir string) error {
	e.logger.DebugContext(ctx, "Exporting folder", logfields.Folder(folder), logfields.Output(outputDir))
	return e.run(ctx, func() (invocation.Invocation, error) {
		return e.builder.Export(folder, outputDir)
	})
}

// ExportAsync is Export without blocking the caller.
func (e *Exporter) ExportAsync(ctx context.Context, folder, outputDir string) *runner.Call {
	return runner.Go(func() error { return e.Export(ctx, folder, outputDir) })
}

// ExportFromAccount exports folder of a single account.
func (e *Exporter) ExportFromAccount(ctx context.Context, account, folder, outputDir string) error {
	e.logger.DebugContext(ctx, "Exporting folder from account",
		logfields.Account(account), logfields.Folder(folder), logfields.Output(outputDir))
	return e.run(ctx, func() (invocation.Invocation, error) {
		return e.builder.ExportFromAccount(account, folder, outputDir)
	})
}

// ExportFromAccountAsync is ExportFromAccount without blocking the caller.
func (e *Exporter) ExportFromAccountAsync(ctx context.Context, account, folder, outputDir string) *runner.Call {
	return runner.Go(func() error { return e.ExportFromAccount(ctx, account, folder, outputDir) })
}

// run is the shared pipeline: guard, resolve, build, launch. The guard runs
// once, inside Check, so nothing touches the filesystem on an unsupported
// platform; the script is resolved before the output directory is created.
// Exec therefore skips the guard.
func (e *Exporter) run(ctx context.Context, build func() (invocation.Invocation, error)) error {
	scriptPath, err := e.Check()
	if err != nil {
		return err
	}
	inv, err := build()
	if err != nil {
		return err
	}
	return e.runner.Exec(ctx, scriptPath, inv)
}
