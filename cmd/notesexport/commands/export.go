package commands

import (
	"git.home.luguber.info/inful/notesexport/internal/logfields"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	Folder    string `arg:"" help:"Folder to export, optionally as Account:Folder"`
	OutputDir string `arg:"" name:"output-dir" help:"Directory receiving the HTML files (created if missing)"`
	Account   string `short:"a" help:"Only look for the folder in this account"`
}

func (x *ExportCmd) Run(g *Global) error {
	e, err := g.Exporter()
	if err != nil {
		return err
	}

	if x.Account != "" {
		err = e.ExportFromAccount(g.Context, x.Account, x.Folder, x.OutputDir)
	} else {
		err = e.Export(g.Context, x.Folder, x.OutputDir)
	}
	if err != nil {
		return err
	}

	g.Logger.Info("Export complete", logfields.Folder(x.Folder), logfields.Output(x.OutputDir))
	return nil
}
