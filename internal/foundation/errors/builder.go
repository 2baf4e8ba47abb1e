package errors

import "fmt"

// ErrorBuilder provides a fluent API for creating Error instances.
// The per-kind constructors below are the normal entry points.
type ErrorBuilder struct {
	err Error
}

// NewError creates a new ErrorBuilder with the specified kind and message.
func NewError(kind Kind, message string) *ErrorBuilder {
	return &ErrorBuilder{err: Error{
		kind:     kind,
		severity: SeverityError,
		message:  message,
		context:  make(ErrorContext),
	}}
}

// WrapError creates a new ErrorBuilder that wraps an existing error.
func WrapError(err error, kind Kind, message string) *ErrorBuilder {
	return NewError(kind, message).WithCause(err)
}

// WithCause sets the underlying error.
func (b *ErrorBuilder) WithCause(err error) *ErrorBuilder {
	b.err.cause = err
	return b
}

// WithSeverity sets the error severity.
func (b *ErrorBuilder) WithSeverity(severity ErrorSeverity) *ErrorBuilder {
	b.err.severity = severity
	return b
}

// WithContext adds a context key-value pair.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	b.err.context = b.err.context.Set(key, value)
	return b
}

// WithContextMap adds multiple context values.
func (b *ErrorBuilder) WithContextMap(ctx ErrorContext) *ErrorBuilder {
	b.err.context = b.err.context.Merge(ctx)
	return b
}

// Fatal sets the severity to fatal.
func (b *ErrorBuilder) Fatal() *ErrorBuilder {
	return b.WithSeverity(SeverityFatal)
}

// Warning sets the severity to warning.
func (b *ErrorBuilder) Warning() *ErrorBuilder {
	return b.WithSeverity(SeverityWarning)
}

func (b *ErrorBuilder) platform(p string) *ErrorBuilder {
	b.err.platform = p
	return b.WithContext("platform", p)
}

func (b *ErrorBuilder) path(p string) *ErrorBuilder {
	b.err.path = p
	return b.WithContext("path", p)
}

func (b *ErrorBuilder) exit(code int, stderr string) *ErrorBuilder {
	b.err.code = code
	b.err.stderr = stderr
	return b.WithContext("exit_code", code)
}

// Build creates the final Error.
func (b *ErrorBuilder) Build() *Error {
	out := b.err
	return &out
}

// Per-kind constructors

// UnsupportedPlatform reports that the script cannot run on platform.
func UnsupportedPlatform(platform string) *Error {
	return NewError(KindUnsupportedPlatform,
		fmt.Sprintf("Unsupported platform %q: exporting notes requires macOS", platform)).
		Fatal().
		platform(platform).
		Build()
}

// ScriptNotFound reports a missing script file.
func ScriptNotFound(path string) *Error {
	return NewError(KindScriptNotFound, fmt.Sprintf("Script not found: %s", path)).
		Fatal().
		path(path).
		Build()
}

// TempFileCreationFailed reports a failure to stage the script in a scratch file.
func TempFileCreationFailed(cause error) *Error {
	return WrapError(cause, KindTempFileCreationFailed, "Failed to create temporary script file").
		Build()
}

// InvalidOutputPath reports an output directory that cannot be used.
func InvalidOutputPath(path string) *Error {
	return NewError(KindInvalidOutputPath, fmt.Sprintf("Invalid output path: %q", path)).
		path(path).
		Build()
}

// LaunchFailed reports that the interpreter process could not be started.
func LaunchFailed(cause error) *Error {
	return WrapError(cause, KindLaunchFailed, "Failed to launch export script").
		Build()
}

// ScriptExitedNonZero reports a script that ran but did not exit cleanly.
// Signal terminations use code -1 and name the signal in stderr.
func ScriptExitedNonZero(code int, stderr string) *Error {
	msg := fmt.Sprintf("Script exited with code %d", code)
	if stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, stderr)
	}
	return NewError(KindScriptExitedNonZero, msg).
		exit(code, stderr).
		Build()
}
