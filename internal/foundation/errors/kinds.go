package errors

import "maps"

// Kind discriminates the failure conditions of the script-invocation core.
// The set is closed; KindUnknown is reported for errors outside the taxonomy.
type Kind string

const (
	KindUnknown Kind = ""

	// KindUnsupportedPlatform is raised when the running OS is not the one the script requires.
	KindUnsupportedPlatform Kind = "unsupported_platform"
	// KindScriptNotFound is raised when the explicit or default script path does not exist.
	KindScriptNotFound Kind = "script_not_found"
	// KindTempFileCreationFailed is reserved for staging the script into a scratch file.
	KindTempFileCreationFailed Kind = "temp_file_creation_failed"
	// KindInvalidOutputPath is raised when the output directory cannot be resolved.
	KindInvalidOutputPath Kind = "invalid_output_path"
	// KindLaunchFailed is raised when the interpreter process cannot be started.
	KindLaunchFailed Kind = "launch_failed"
	// KindScriptExitedNonZero is raised for non-zero exits and signal terminations.
	KindScriptExitedNonZero Kind = "script_exited_non_zero"
)

// Kinds lists every member of the taxonomy.
var Kinds = []Kind{
	KindUnsupportedPlatform,
	KindScriptNotFound,
	KindTempFileCreationFailed,
	KindInvalidOutputPath,
	KindLaunchFailed,
	KindScriptExitedNonZero,
}

// Valid reports whether k is a member of the taxonomy.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution completely
	SeverityError   ErrorSeverity = "error"   // Fails the current operation
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// ErrorContext provides structured context for errors.
type ErrorContext map[string]any

// Set adds or updates a context value.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}

// Get retrieves a context value.
func (c ErrorContext) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	value, exists := c[key]
	return value, exists
}

// GetString retrieves a string context value.
func (c ErrorContext) GetString(key string) (string, bool) {
	if value, exists := c.Get(key); exists {
		if str, ok := value.(string); ok {
			return str, true
		}
	}
	return "", false
}

// Merge combines two contexts, with other taking precedence.
func (c ErrorContext) Merge(other ErrorContext) ErrorContext {
	if c == nil {
		return other
	}
	if other == nil {
		return c
	}
	result := make(ErrorContext)
	maps.Copy(result, c)
	maps.Copy(result, other)
	return result
}
