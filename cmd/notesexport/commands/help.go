package commands

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// HelpCmd implements the 'help' command.
type HelpCmd struct {
	Command []string `arg:"" optional:"" help:"Show help for this command"`
}

func (h *HelpCmd) Run(kctx *kong.Context) error {
	target, err := kong.Trace(kctx.Kong, h.Command)
	if err != nil {
		return err
	}
	if target.Error != nil {
		return target.Error
	}
	if err := target.PrintUsage(false); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(kctx.Stdout)
	return nil
}
