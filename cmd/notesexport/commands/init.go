package commands

import (
	"fmt"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/notesexport/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(kctx *kong.Context, root *CLI) error {
	path := root.Config
	if path == "" {
		path = DefaultConfigFile
	}

	_, _ = fmt.Fprintf(kctx.Stdout, "Writing configuration to %s\n", path)
	if err := config.Init(path, i.Force); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(kctx.Stdout, "initialized successfully")
	return nil
}
