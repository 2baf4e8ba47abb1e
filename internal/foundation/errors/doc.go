// Package errors provides the closed error taxonomy used across notesexport.
//
// Every failure the script-invocation core can produce is an *Error whose
// Kind is one of a fixed set. Callers branch on the Kind rather than on the
// Go type, and read the kind-specific fields through accessors.
//
// Key features:
//   - Kind: closed discriminator (unsupported platform, script not found, ...)
//   - Severity: impact level used when logging
//   - ErrorContext: structured key/value context carried for diagnostics
//   - ErrorBuilder: fluent API used by the per-kind constructors
//   - CLIErrorAdapter: exit code and message presentation for the CLI
//
// Example usage:
//
//	err := errors.ScriptExitedNonZero(2, "")
//	switch errors.KindOf(err) {
//	case errors.KindScriptExitedNonZero:
//		...
//	}
package errors
