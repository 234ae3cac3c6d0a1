package commands

import "fmt"

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Quiet bool `short:"q" help:"Only print errors"`
}

// Run prints every error and warning, then a summary. Any error fails the command.
func (cmd *ValidateCmd) Run(g *Global, root *CLI) error {
	loaded, err := LoadSite(root)
	if loaded != nil && loaded.Report != nil {
		for _, e := range loaded.Report.Errors {
			fmt.Fprintf(g.Out, "error: %s\n", e.Error())
		}
		if !cmd.Quiet {
			if loaded.Normalization != nil {
				for _, w := range loaded.Normalization.Warnings {
					fmt.Fprintf(g.Out, "warning: %s\n", w)
				}
			}
			for _, w := range loaded.Report.Warnings {
				fmt.Fprintf(g.Out, "warning: %s\n", w)
			}
		}
	}
	if err != nil {
		return err
	}
	if !cmd.Quiet {
		fmt.Fprintf(g.Out, "ok: %q with %d links in %d groups\n",
			loaded.Site.Title, loaded.Report.Links, loaded.Report.Groups)
	}
	return nil
}
