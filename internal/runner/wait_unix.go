//go:build unix

package runner

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// OutcomeFromWait translates the result of (*exec.Cmd).Wait into an Outcome.
func OutcomeFromWait(waitErr error, state *os.ProcessState) Outcome {
	if state == nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			state = exitErr.ProcessState
		}
	}
	if state == nil {
		if waitErr != nil {
			return LaunchError(waitErr)
		}
		return Unknown()
	}

	if ws, ok := state.Sys().(syscall.WaitStatus); ok {
		switch {
		case ws.Signaled():
			return Signaled(signalName(ws.Signal()))
		case ws.Exited():
			return Exited(ws.ExitStatus())
		default:
			return Unknown()
		}
	}
	if state.Exited() {
		return Exited(state.ExitCode())
	}
	return Unknown()
}

func signalName(sig syscall.Signal) string {
	if name := unix.SignalName(sig); name != "" {
		return name
	}
	return sig.String()
}
