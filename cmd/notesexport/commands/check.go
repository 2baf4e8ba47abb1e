package commands

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// CheckCmd implements the 'check' command: platform guard and script
// resolution without launching the interpreter.
type CheckCmd struct{}

func (c *CheckCmd) Run(g *Global, kctx *kong.Context) error {
	e, err := g.Exporter()
	if err != nil {
		return err
	}
	path, err := e.Check()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(kctx.Stdout, "Script:      %s (%s)\n", path, e.Source())
	_, _ = fmt.Fprintf(kctx.Stdout, "Interpreter: %s\n", g.Config.Script.Interpreter)
	_, _ = fmt.Fprintln(kctx.Stdout, "Ready to export")
	return nil
}
