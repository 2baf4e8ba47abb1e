package config

import (
	"os"
	"path/filepath"
)

// DefaultScriptRelPath is where the bundled script lives under the install root.
var DefaultScriptRelPath = filepath.Join("scripts", "export-notes.applescript")

// DefaultScriptPath returns the bundled script location for installRoot.
func DefaultScriptPath(installRoot string) string {
	if installRoot == "" {
		return ""
	}
	return filepath.Join(installRoot, DefaultScriptRelPath)
}

// InstallRoot returns the directory the bundled script is looked up in.
// NOTESEXPORT_HOME wins; otherwise it is the directory holding the running
// executable, or its parent when the executable sits in a bin/ directory.
func InstallRoot() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return rootFromExecutable(exe)
}

func rootFromExecutable(exe string) string {
	dir := filepath.Dir(exe)
	if filepath.Base(dir) == "bin" {
		return filepath.Dir(dir)
	}
	return dir
}
