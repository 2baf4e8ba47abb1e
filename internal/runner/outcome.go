package runner

import (
	"fmt"

	ferrors "git.home.luguber.info/inful/notesexport/internal/foundation/errors"
)

// OutcomeKind tags how a child process ended.
type OutcomeKind int

const (
	// OutcomeUnknown means neither an exit code nor a signal was reported.
	OutcomeUnknown OutcomeKind = iota
	OutcomeExited
	OutcomeSignaled
	OutcomeLaunchFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeExited:
		return "exited"
	case OutcomeSignaled:
		return "signaled"
	case OutcomeLaunchFailed:
		return "launch_failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one child process. It only lives until MapOutcome
// turns it into nil or a taxonomy error.
type Outcome struct {
	Kind   OutcomeKind
	Code   int    // OutcomeExited
	Stderr string // OutcomeExited, when captured
	Signal string // OutcomeSignaled, e.g. "SIGTERM"
	Err    error  // OutcomeLaunchFailed
}

// Exited reports a normal exit with code.
func Exited(code int) Outcome { return Outcome{Kind: OutcomeExited, Code: code} }

// Signaled reports termination by the named signal.
func Signaled(name string) Outcome { return Outcome{Kind: OutcomeSignaled, Signal: name} }

// LaunchError reports that the process never started.
func LaunchError(err error) Outcome { return Outcome{Kind: OutcomeLaunchFailed, Err: err} }

// Unknown reports an outcome with neither code nor signal.
func Unknown() Outcome { return Outcome{Kind: OutcomeUnknown} }

// MapOutcome converts an Outcome into nil (clean exit) or a taxonomy error.
// It is the only place exit semantics are defined; both the blocking and the
// awaitable execution paths go through it.
func MapOutcome(o Outcome) error {
	switch o.Kind {
	case OutcomeLaunchFailed:
		return ferrors.LaunchFailed(o.Err)
	case OutcomeExited:
		if o.Code == 0 {
			return nil
		}
		return ferrors.ScriptExitedNonZero(o.Code, o.Stderr)
	case OutcomeSignaled:
		return ferrors.ScriptExitedNonZero(-1, fmt.Sprintf("Script terminated by signal %s", o.Signal))
	default:
		return ferrors.ScriptExitedNonZero(-1, "Unknown error")
	}
}
