// Package platform guards script invocations against running on an
// operating system the export script cannot work on.
package platform

import (
	"runtime"

	ferrors "git.home.luguber.info/inful/notesexport/internal/foundation/errors"
)

// Required is the only GOOS the export script supports.
const Required = "darwin"

// Guard checks the current platform before every invocation.
// GOOS is injectable so tests can simulate other platforms.
type Guard struct {
	GOOS func() string
}

// Default returns a Guard reporting runtime.GOOS.
func Default() Guard {
	return Guard{GOOS: func() string { return runtime.GOOS }}
}

// Current returns the platform identifier the guard sees.
func (g Guard) Current() string {
	if g.GOOS == nil {
		return runtime.GOOS
	}
	return g.GOOS()
}

// Check fails with KindUnsupportedPlatform unless the current platform is Required.
func (g Guard) Check() error {
	if current := g.Current(); current != Required {
		return ferrors.UnsupportedPlatform(current)
	}
	return nil
}

// Fixed returns a Guard that always reports goos.
func Fixed(goos string) Guard {
	return Guard{GOOS: func() string { return goos }}
}
