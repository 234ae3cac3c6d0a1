package commands

import (
	"fmt"

	"git.home.luguber.info/inful/navbuilder/internal/navtree"
	"git.home.luguber.info/inful/navbuilder/internal/site"
)

// FlattenCmd implements the 'flatten' command.
type FlattenCmd struct {
	URLs bool `short:"u" help:"Print public URLs (base path applied) instead of routes"`
}

func (cmd *FlattenCmd) Run(g *Global, root *CLI) error {
	loaded, err := LoadSite(root)
	if err != nil {
		return err
	}
	for link := range site.FlattenSidebar(loaded.Site.ThemeConfig.Sidebar) {
		line := string(link)
		if cmd.URLs {
			line = navtree.JoinURL(loaded.Site.BasePath, line)
		}
		if _, err := fmt.Fprintln(g.Out, line); err != nil {
			return err
		}
	}
	return nil
}
