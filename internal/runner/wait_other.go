//go:build !unix

package runner

import (
	"errors"
	"os"
	"os/exec"
)

// OutcomeFromWait translates the result of (*exec.Cmd).Wait into an Outcome.
// Signals are not reported on these platforms.
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
	if state.Exited() {
		return Exited(state.ExitCode())
	}
	return Unknown()
}
