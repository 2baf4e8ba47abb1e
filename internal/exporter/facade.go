package exporter

import (
	"context"

	"git.home.luguber.info/inful/notesexport/internal/config"
	"git.home.luguber.info/inful/notesexport/internal/runner"
)

// These helpers build a default-source Exporter per call. cfg supplies the
// bundled script location and interpreter; nil means config.Default.

// List lists folders with the bundled script.
func List(ctx context.Context, cfg *config.Config) error {
	e, err := New(cfg, WithDefaultScript())
	if err != nil {
		return err
	}
	return e.List(ctx)
}

// ListAsync is List without blocking the caller.
func ListAsync(ctx context.Context, cfg *config.Config) *runner.Call {
	return runner.Go(func() error { return List(ctx, cfg) })
}

// Export exports folder to outputDir with the bundled script.
func Export(ctx context.Context, cfg *config.Config, folder, outputDir string) error {
	e, err := New(cfg, WithDefaultScript())
	if err != nil {
		return err
	}
	return e.Export(ctx, folder, outputDir)
}

// ExportAsync is Export without blocking the caller.
func ExportAsync(ctx context.Context, cfg *config.Config, folder, outputDir string) *runner.Call {
	return runner.Go(func() error { return Export(ctx, cfg, folder, outputDir) })
}

// ExportFromAccount exports folder of account to outputDir with the bundled script.
func ExportFromAccount(ctx context.Context, cfg *config.Config, account, folder, outputDir string) error {
	e, err := New(cfg, WithDefaultScript())
	if err != nil {
		return err
	}
	return e.ExportFromAccount(ctx, account, folder, outputDir)
}

// ExportFromAccountAsync is ExportFromAccount without blocking the caller.
func ExportFromAccountAsync(ctx context.Context, cfg *config.Config, account, folder, outputDir string) *runner.Call {
	return runner.Go(func() error { return ExportFromAccount(ctx, cfg, account, folder, outputDir) })
}
