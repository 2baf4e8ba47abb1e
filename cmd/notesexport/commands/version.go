package commands

import (
	"fmt"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/notesexport/internal/version"
)

// VersionCmd implements the 'version' command.
type VersionCmd struct{}

func (v *VersionCmd) Run(kctx *kong.Context) error {
	_, err := fmt.Fprintf(kctx.Stdout, "notesexport %s\n", version.String())
	return err
}
