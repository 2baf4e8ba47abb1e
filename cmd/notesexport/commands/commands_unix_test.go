//go:build unix

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/notesexport/internal/exporter"
	ferrors "git.home.luguber.info/inful/notesexport/internal/foundation/errors"
	"git.home.luguber.info/inful/notesexport/internal/runner"
)

// shellSetup writes a config whose bundled script is a POSIX shell script
// run through /bin/sh, and returns the --config argument pair.
func shellSetup(t *testing.T, body string) (string, string) {
	t.Helper()
	root := t.TempDir()
	script := filepath.Join(root, "scripts", "export-notes.sh")
	require.NoError(t, os.MkdirAll(filepath.Dir(script), 0o755))
	require.NoError(t, os.WriteFile(script, []byte(body), 0o600))

	cfgPath := filepath.Join(root, "notesexport.yaml")
	cfg := "script:\n  default_path: " + script + "\n  interpreter: /bin/sh\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))
	return cfgPath, script
}

func TestExport_RunsScript(t *testing.T) {
	dir := isolate(t)
	cfgPath, _ := shellSetup(t, "printf '%s\\n' \"$@\"\n")

	var stdout bytes.Buffer
	launcher := exporter.WithLauncher(runner.ExecLauncher{Stdout: &stdout})

	res := runCLI(t, "darwin", []exporter.Option{launcher}, "--config", cfgPath, "export", "--account", "iCloud", "Work", "html")
	require.Equal(t, 0, res.code, res.stderr)

	out := filepath.Join(dir, "html")
	assert.DirExists(t, out)
	assert.Contains(t, stdout.String(), "export\niCloud:Work\n")
	assert.Contains(t, stdout.String(), "html\n")
}

func TestList_ScriptFailure(t *testing.T) {
	isolate(t)
	cfgPath, _ := shellSetup(t, "exit 3\n")

	res := runCLI(t, "darwin", nil, "--config", cfgPath, "ls")
	assert.Equal(t, ferrors.ExitScriptFailed, res.code)
	assert.Contains(t, res.stderr, "Error: Script exited with code 3")
}

func TestCheck_Ready(t *testing.T) {
	isolate(t)
	cfgPath, script := shellSetup(t, "exit 0\n")

	res := runCLI(t, "darwin", nil, "--config", cfgPath, "check")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, script+" (default)")
	assert.Contains(t, res.stdout, "Interpreter: /bin/sh")
}

func TestMetricsFile(t *testing.T) {
	isolate(t)
	cfgPath, _ := shellSetup(t, "exit 0\n")
	metricsPath := filepath.Join(t.TempDir(), "notesexport.prom")

	res := runCLI(t, "darwin", []exporter.Option{exporter.WithLauncher(runner.ExecLauncher{Stdout: &bytes.Buffer{}})},
		"--config", cfgPath, "--metrics-file", metricsPath, "list")
	require.Equal(t, 0, res.code, res.stderr)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `notesexport_invocation_results_total{result="success",verb="list"} 1`)
}
