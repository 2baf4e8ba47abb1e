package script

import (
	"io/fs"
	"log/slog"
	"os"

	ferrors "git.home.luguber.info/inful/notesexport/internal/foundation/errors"
)

// FileSystem is the slice of the filesystem the resolver needs.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
}

// OSFileSystem implements FileSystem with the os package.
type OSFileSystem struct{}

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// Resolver turns a Source into a concrete, existing script path.
//
// An explicit path is validated once, when the Resolver is built, so a bad
// --script fails immediately. The default path depends on the install
// layout and is checked on every Resolve call instead.
type Resolver struct {
	source      Source
	defaultPath string
	fs          FileSystem
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithFileSystem replaces the filesystem used for existence checks.
func WithFileSystem(fsys FileSystem) Option {
	return func(r *Resolver) {
		if fsys != nil {
			r.fs = fsys
		}
	}
}

// NewResolver binds src to a new Resolver. defaultPath is the location of
// the bundled script and is only consulted for the default source.
func NewResolver(src Source, defaultPath string, opts ...Option) (*Resolver, error) {
	r := &Resolver{source: src, defaultPath: defaultPath, fs: OSFileSystem{}}
	for _, opt := range opts {
		opt(r)
	}

	if !src.IsDefault() {
		if !r.exists(src.Path()) {
			return nil, ferrors.ScriptNotFound(src.Path()).WithContext("source", "explicit")
		}
		slog.Debug("Using explicit export script", "path", src.Path())
	}
	return r, nil
}

// Source returns the bound source.
func (r *Resolver) Source() Source { return r.source }

// DefaultPath returns the configured bundled script location.
func (r *Resolver) DefaultPath() string { return r.defaultPath }

// Resolve returns the script path to execute.
func (r *Resolver) Resolve() (string, error) {
	if !r.source.IsDefault() {
		return r.source.Path(), nil
	}
	if r.defaultPath == "" || !r.exists(r.defaultPath) {
		return "", ferrors.ScriptNotFound(r.defaultPath).WithContext("source", "default")
	}
	return r.defaultPath, nil
}

// exists reports whether path names something other than a directory.
func (r *Resolver) exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := r.fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
