// Package runner executes the export script as a child process and maps how
// it ended onto the error taxonomy.
package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	ferrors "git.home.luguber.info/inful/notesexport/internal/foundation/errors"
	"git.home.luguber.info/inful/notesexport/internal/invocation"
	"git.home.luguber.info/inful/notesexport/internal/logfields"
	"git.home.luguber.info/inful/notesexport/internal/metrics"
	"git.home.luguber.info/inful/notesexport/internal/platform"
)

// Runner launches scripts through an interpreter. It holds no per-call state;
// concurrent calls simply start independent child processes.
type Runner struct {
	interpreter string
	launcher    Launcher
	guard       platform.Guard
	recorder    metrics.Recorder
	logger      *slog.Logger
}

// Option customizes a Runner.
type Option func(*Runner)

// WithInterpreter overrides the interpreter binary.
func WithInterpreter(name string) Option {
	return func(r *Runner) {
		if name != "" {
			r.interpreter = name
		}
	}
}

// WithLauncher replaces the process launcher.
func WithLauncher(l Launcher) Option {
	return func(r *Runner) {
		if l != nil {
			r.launcher = l
		}
	}
}

// WithGuard replaces the platform guard.
func WithGuard(g platform.Guard) Option {
	return func(r *Runner) { r.guard = g }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(rec metrics.Recorder) Option {
	return func(r *Runner) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Runner using osascript, the real process launcher and the
// runtime platform.
func New(opts ...Option) *Runner {
	r := &Runner{
		interpreter: DefaultInterpreter,
		launcher:    ExecLauncher{},
		guard:       platform.Default(),
		recorder:    metrics.NoopRecorder{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Interpreter returns the interpreter binary.
func (r *Runner) Interpreter() string { return r.interpreter }

// Preflight runs the platform guard. It touches neither the filesystem nor
// any process.
func (r *Runner) Preflight() error {
	return r.guard.Check()
}

// Run runs the platform guard, then launches scriptPath with inv and blocks
// until the child exits.
func (r *Runner) Run(ctx context.Context, scriptPath string, inv invocation.Invocation) error {
	if err := r.Preflight(); err != nil {
		return err
	}
	return r.Exec(ctx, scriptPath, inv)
}

// Exec is Run without the platform guard, for callers that already ran
// Preflight earlier in the same call.
func (r *Runner) Exec(ctx context.Context, scriptPath string, inv invocation.Invocation) error {
	id := uuid.NewString()
	verb := string(inv.Verb())
	cmd := Command{Interpreter: r.interpreter, Script: scriptPath, Args: inv.Args()}
	log := r.logger.With(logfields.InvocationID(id), logfields.Verb(verb))

	log.InfoContext(ctx, "Running export script", logfields.Script(scriptPath), slog.Any("args", cmd.Args))
	start := time.Now()
	outcome := r.launcher.Launch(ctx, cmd)
	elapsed := time.Since(start)

	err := MapOutcome(outcome)
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultLabel(ferrors.KindOf(err))
	}
	r.recorder.ObserveInvocation(verb, elapsed, result)

	attrs := []any{
		logfields.Outcome(outcome.Kind.String()),
		logfields.DurationMS(float64(elapsed.Milliseconds())),
	}
	if err != nil {
		log.WarnContext(ctx, "Export script failed", append(attrs, logfields.Error(err))...)
		return err
	}
	log.InfoContext(ctx, "Export script finished", attrs...)
	return nil
}

// Start launches scriptPath with inv without blocking the caller.
func (r *Runner) Start(ctx context.Context, scriptPath string, inv invocation.Invocation) *Call {
	return Go(func() error { return r.Run(ctx, scriptPath, inv) })
}
