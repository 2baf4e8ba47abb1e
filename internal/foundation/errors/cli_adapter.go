package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Exit codes reported by the CLI for taxonomy errors.
const (
	ExitGeneral             = 1
	ExitInvalidOutputPath   = 2
	ExitScriptNotFound      = 7
	ExitScriptFailed        = 8
	ExitFileSystem          = 11
	ExitUnsupportedPlatform = 12
	ExitLaunchFailed        = 13
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	switch KindOf(err) {
	case KindInvalidOutputPath:
		return ExitInvalidOutputPath
	case KindScriptNotFound:
		return ExitScriptNotFound
	case KindScriptExitedNonZero:
		return ExitScriptFailed
	case KindTempFileCreationFailed:
		return ExitFileSystem
	case KindUnsupportedPlatform:
		return ExitUnsupportedPlatform
	case KindLaunchFailed:
		return ExitLaunchFailed
	default:
		return ExitGeneral
	}
}

// FormatError formats an error for user-facing display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	e, ok := AsError(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return fmt.Sprintf("Error: %s", e.Error())
	}
	return fmt.Sprintf("Error: %s", e.Message())
}

// Handle prints a recognized error to w and returns its exit code.
// Errors outside the taxonomy are left untouched: handled is false and the
// caller is expected to propagate err as-is. In verbose mode the error is
// also logged with its kind and context.
func (a *CLIErrorAdapter) Handle(w io.Writer, err error) (code int, handled bool) {
	if err == nil {
		return 0, true
	}
	if !IsRecognized(err) {
		return 0, false
	}

	if a.verbose {
		a.logError(err)
	}
	_, _ = fmt.Fprintln(w, a.FormatError(err))
	return a.ExitCodeFor(err), true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	e, ok := AsError(err)
	if !ok {
		a.logger.Error("Unclassified error", "error", err)
		return
	}

	attrs := []slog.Attr{slog.String("kind", string(e.Kind()))}
	for k, v := range e.Context() {
		attrs = append(attrs, slog.Any(k, v))
	}
	if e.Cause() != nil {
		attrs = append(attrs, slog.String("cause", e.Cause().Error()))
	}
	a.logger.LogAttrs(context.Background(), a.slogLevelFromSeverity(e.Severity()), e.Message(), attrs...)
}

// slogLevelFromSeverity converts severity to slog level.
func (a *CLIErrorAdapter) slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError, SeverityFatal:
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
