//go:build unix

package exporter

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/notesexport/internal/config"
	ferrors "git.home.luguber.info/inful/notesexport/internal/foundation/errors"
	"git.home.luguber.info/inful/notesexport/internal/platform"
	"git.home.luguber.info/inful/notesexport/internal/runner"
)

// shellConfig installs a POSIX shell script in place of the AppleScript and
// runs it through /bin/sh, so the real process path is exercised anywhere.
func shellConfig(t *testing.T, body string) *config.Config {
	t.Helper()
	cfg := config.Default(t.TempDir())
	cfg.Script.Interpreter = "/bin/sh"
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.Script.DefaultPath), 0o755))
	require.NoError(t, os.WriteFile(cfg.Script.DefaultPath, []byte(body), 0o600))
	return cfg
}

func TestExport_RealProcess(t *testing.T) {
	cfg := shellConfig(t, "printf '%s\\n' \"$@\"\nexit 0\n")
	out := filepath.Join(t.TempDir(), "html")

	var stdout bytes.Buffer
	e, err := New(cfg,
		WithGuard(platform.Fixed("darwin")),
		WithLauncher(runner.ExecLauncher{Stdout: &stdout}),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)

	require.NoError(t, e.ExportFromAccount(context.Background(), "iCloud", "Work", out))
	assert.Equal(t, "export\niCloud:Work\n"+out+"\n", stdout.String())
	assert.DirExists(t, out)
}

func TestExport_RealProcessNonZero(t *testing.T) {
	cfg := shellConfig(t, "echo 'Folder not found' >&2\nexit 2\n")

	e, err := New(cfg,
		WithGuard(platform.Fixed("darwin")),
		WithLauncher(runner.ExecLauncher{Stdout: io.Discard, Stderr: io.Discard}),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)

	err = e.ExportAsync(context.Background(), "Missing", t.TempDir()).Wait()
	fe, ok := ferrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.KindScriptExitedNonZero, fe.Kind())
	assert.Equal(t, 2, fe.Code())
	assert.Empty(t, fe.Stderr(), "stderr is inherited, not captured")
}

func TestList_MissingInterpreter(t *testing.T) {
	cfg := shellConfig(t, "exit 0\n")
	cfg.Script.Interpreter = filepath.Join(t.TempDir(), "osascript")

	e, err := New(cfg,
		WithGuard(platform.Fixed("darwin")),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)

	err = e.List(context.Background())
	require.True(t, ferrors.IsKind(err, ferrors.KindLaunchFailed))
	fe, _ := ferrors.AsError(err)
	require.Error(t, fe.Cause())
}
