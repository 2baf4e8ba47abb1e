package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyInvocationID = "invocation_id"
	KeyVerb         = "verb"
	KeyScript       = "script"
	KeyFolder       = "folder"
	KeyAccount      = "account"
	KeyOutput       = "output"
	KeyOutcome      = "outcome"
	KeyExitCode     = "exit_code"
	KeyPlatform     = "platform"
	KeyDurationMS   = "duration_ms"
	KeyError        = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func InvocationID(id string) slog.Attr { return slog.String(KeyInvocationID, id) }
func Verb(v string) slog.Attr          { return slog.String(KeyVerb, v) }
func Script(p string) slog.Attr        { return slog.String(KeyScript, p) }
func Folder(f string) slog.Attr        { return slog.String(KeyFolder, f) }
func Account(a string) slog.Attr       { return slog.String(KeyAccount, a) }
func Output(p string) slog.Attr        { return slog.String(KeyOutput, p) }
func Outcome(o string) slog.Attr       { return slog.String(KeyOutcome, o) }
func ExitCode(c int) slog.Attr         { return slog.Int(KeyExitCode, c) }
func Platform(p string) slog.Attr      { return slog.String(KeyPlatform, p) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
