package runner

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

//go:generate mockgen -destination=runnertest/mock_launcher.go -package=runnertest . Launcher

// DefaultInterpreter runs AppleScript files on macOS.
const DefaultInterpreter = "osascript"

// Command is one child process: Interpreter Script Args...
type Command struct {
	Interpreter string
	Script      string
	Args        []string
}

// Argv returns the full argument vector including the interpreter.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+2)
	argv = append(argv, c.Interpreter, c.Script)
	return append(argv, c.Args...)
}

// Launcher starts a child process and blocks until it ends.
type Launcher interface {
	Launch(ctx context.Context, cmd Command) Outcome
}

// ExecLauncher launches commands with os/exec. Standard streams default to
// the parent's so the script's progress output reaches the user live.
type ExecLauncher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Launch runs cmd to completion. The context is not used to kill the child;
// an invocation always runs until the script exits.
func (l ExecLauncher) Launch(_ context.Context, cmd Command) Outcome {
	c := exec.Command(cmd.Interpreter, append([]string{cmd.Script}, cmd.Args...)...) // #nosec G204 - interpreter and script are chosen by the user
	c.Stdin = l.Stdin
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	c.Stdout = l.Stdout
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	c.Stderr = l.Stderr
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	if err := c.Start(); err != nil {
		return LaunchError(err)
	}
	slog.Debug("Export script started", "pid", c.Process.Pid, "interpreter", cmd.Interpreter)

	err := c.Wait()
	return OutcomeFromWait(err, c.ProcessState)
}
