package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the single concrete type of the taxonomy. Which of the
// kind-specific fields is meaningful depends on Kind:
//
//	KindUnsupportedPlatform     Platform
//	KindScriptNotFound          Path
//	KindTempFileCreationFailed  Cause
//	KindInvalidOutputPath       Path
//	KindLaunchFailed            Cause
//	KindScriptExitedNonZero     Code, Stderr
type Error struct {
	kind     Kind
	severity ErrorSeverity
	message  string
	cause    error
	context  ErrorContext

	platform string
	path     string
	code     int
	stderr   string
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the discriminator.
func (e *Error) Kind() Kind { return e.kind }

// Severity returns the error severity.
func (e *Error) Severity() ErrorSeverity { return e.severity }

// Message returns the human readable message without the cause.
func (e *Error) Message() string { return e.message }

// Cause returns the underlying error, if any.
func (e *Error) Cause() error { return e.cause }

// Context returns the structured context.
func (e *Error) Context() ErrorContext { return e.context }

// Platform returns the offending platform identifier (KindUnsupportedPlatform).
func (e *Error) Platform() string { return e.platform }

// Path returns the script or output path involved (KindScriptNotFound, KindInvalidOutputPath).
func (e *Error) Path() string { return e.path }

// Code returns the exit code (KindScriptExitedNonZero). Signals report -1.
func (e *Error) Code() int { return e.code }

// Stderr returns diagnostic text attached to a non-zero exit, if any.
func (e *Error) Stderr() string { return e.stderr }

// WithContext adds context to the error and returns a new error.
func (e *Error) WithContext(key string, value any) *Error {
	clone := *e
	clone.context = e.context.Merge(ErrorContext{key: value})
	return &clone
}

// Is matches another *Error of the same kind and message.
func (e *Error) Is(target error) bool {
	if other, ok := target.(*Error); ok {
		return e.kind == other.kind && e.message == other.message
	}
	return false
}

// AsError finds the first *Error in the chain of err.
func AsError(err error) (*Error, bool) {
	var target *Error
	if stderrors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// KindOf returns the Kind of err, or KindUnknown when err is outside the taxonomy.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsRecognized reports whether err belongs to the taxonomy.
func IsRecognized(err error) bool {
	return KindOf(err).Valid()
}
