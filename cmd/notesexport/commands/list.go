package commands

// ListCmd implements the 'list' command.
type ListCmd struct{}

func (l *ListCmd) Run(g *Global) error {
	e, err := g.Exporter()
	if err != nil {
		return err
	}
	return e.List(g.Context)
}
