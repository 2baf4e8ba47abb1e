package exporter

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/notesexport/internal/config"
	ferrors "git.home.luguber.info/inful/notesexport/internal/foundation/errors"
)

func TestFacade_UsesDefaultSource(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.Script.Path = filepath.Join(t.TempDir(), "explicit-but-missing.applescript")
	out := filepath.Join(t.TempDir(), "out")

	// The explicit path is ignored: a missing explicit script would fail
	// construction, while the missing bundled script fails later, at call time.
	err := Export(context.Background(), cfg, "Work", out)
	if runtime.GOOS != "darwin" {
		require.True(t, ferrors.IsKind(err, ferrors.KindUnsupportedPlatform))
	} else {
		require.True(t, ferrors.IsKind(err, ferrors.KindScriptNotFound))
		fe, _ := ferrors.AsError(err)
		assert.Equal(t, cfg.Script.DefaultPath, fe.Path())
	}
	assert.NoDirExists(t, out)
}

func TestFacade_AsyncMatchesSync(t *testing.T) {
	cfg := config.Default(t.TempDir())
	out := filepath.Join(t.TempDir(), "out")
	ctx := context.Background()

	syncErrs := []error{
		List(ctx, cfg),
		Export(ctx, cfg, "Work", out),
		ExportFromAccount(ctx, cfg, "iCloud", "Work", out),
	}
	asyncErrs := []error{
		ListAsync(ctx, cfg).Wait(),
		ExportAsync(ctx, cfg, "Work", out).Wait(),
		ExportFromAccountAsync(ctx, cfg, "iCloud", "Work", out).Wait(),
	}

	for i := range syncErrs {
		require.Error(t, syncErrs[i])
		assert.Equal(t, ferrors.KindOf(syncErrs[i]), ferrors.KindOf(asyncErrs[i]))
	}
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
