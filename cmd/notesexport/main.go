package main

import (
	"os"

	"git.home.luguber.info/inful/notesexport/cmd/notesexport/commands"
)

func main() {
	cli := &commands.CLI{}
	ctx := commands.Parse(commands.NewParser(cli), os.Args[1:])
	os.Exit(commands.Execute(ctx, cli.Global()))
}
