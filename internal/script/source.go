// Package script decides which export script file an invocation runs.
package script

import "fmt"

// SourceKind tags a Source.
type SourceKind int

const (
	// SourceDefault uses the script bundled with the installation.
	SourceDefault SourceKind = iota
	// SourcePath uses a caller supplied file.
	SourcePath
)

// Source is the tagged choice between the bundled script and an explicit path.
// It is a value type; once bound to a Resolver it never changes.
type Source struct {
	kind SourceKind
	path string
}

// Default selects the bundled script.
func Default() Source {
	return Source{kind: SourceDefault}
}

// FromPath selects an explicit script file.
func FromPath(path string) Source {
	return Source{kind: SourcePath, path: path}
}

// Kind returns the tag.
func (s Source) Kind() SourceKind { return s.kind }

// IsDefault reports whether the bundled script is selected.
func (s Source) IsDefault() bool { return s.kind == SourceDefault }

// Path returns the explicit path; empty for the default source.
func (s Source) Path() string { return s.path }

func (s Source) String() string {
	if s.IsDefault() {
		return "default"
	}
	return fmt.Sprintf("path:%s", s.path)
}
