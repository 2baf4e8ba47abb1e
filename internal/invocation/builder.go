package invocation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/notesexport/internal/foundation/errors"
)

const outputDirPerm = 0o755

// DirMaker creates directories.
type DirMaker interface {
	MkdirAll(path string, perm os.FileMode) error
}

type osDirMaker struct{}

func (osDirMaker) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }

// Builder produces invocations and prepares export destinations.
type Builder struct {
	dirs DirMaker
	abs  func(string) (string, error)
}

// NewBuilder returns a Builder backed by the real filesystem.
func NewBuilder() *Builder {
	return &Builder{dirs: osDirMaker{}, abs: filepath.Abs}
}

// WithDirMaker replaces the directory creator.
func (b *Builder) WithDirMaker(d DirMaker) *Builder {
	if d != nil {
		b.dirs = d
	}
	return b
}

// WithAbs replaces the function used to make paths absolute.
func (b *Builder) WithAbs(abs func(string) (string, error)) *Builder {
	if abs != nil {
		b.abs = abs
	}
	return b
}

// List returns the invocation that lists folders.
func (b *Builder) List() Invocation {
	return Invocation{string(VerbList)}
}

// Export prepares outputDir and returns the invocation exporting folder into it.
// folder is passed through as-is: either "Folder" or "Account:Folder".
func (b *Builder) Export(folder, outputDir string) (Invocation, error) {
	abs, err := b.PrepareOutputDir(outputDir)
	if err != nil {
		return nil, err
	}
	return Invocation{string(VerbExport), folder, abs}, nil
}

// ExportFromAccount is Export with the folder scoped to account.
func (b *Builder) ExportFromAccount(account, folder, outputDir string) (Invocation, error) {
	return b.Export(FolderSpecifier(account, folder), outputDir)
}

// PrepareOutputDir creates outputDir with any missing parents and returns its
// absolute form. Calling it again on an existing directory succeeds.
func (b *Builder) PrepareOutputDir(outputDir string) (string, error) {
	if outputDir == "" {
		return "", ferrors.InvalidOutputPath(outputDir)
	}

	if err := b.dirs.MkdirAll(outputDir, outputDirPerm); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", outputDir, err)
	}

	abs, err := b.abs(outputDir)
	if err != nil || abs == "" || !filepath.IsAbs(abs) {
		slog.Debug("Output directory could not be made absolute", "output", outputDir, "error", err)
		return "", ferrors.InvalidOutputPath(outputDir)
	}
	return abs, nil
}
