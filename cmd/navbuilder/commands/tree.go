package commands

import (
	"log/slog"

	ferrors "git.home.luguber.info/inful/navbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/navtree"
	"git.home.luguber.info/inful/navbuilder/internal/site"
)

// TreeCmd implements the 'tree' command.
type TreeCmd struct {
	Content string `help:"Content directory holding the Markdown pages (labels fall back to routes when empty)"`
	Strict  bool   `help:"Fail when a route has no source page"`
}

func (cmd *TreeCmd) Run(g *Global, root *CLI) error {
	loaded, err := LoadSite(root)
	if err != nil {
		return err
	}
	tree, err := resolveTree(loaded.Site, cmd.Content)
	if err != nil {
		return err
	}
	if err := tree.Render(g.Out); err != nil {
		return err
	}
	if cmd.Strict && len(tree.Missing) > 0 {
		return ferrors.NotFoundError("sidebar routes without a source page").
			WithContext("content", cmd.Content).
			WithContext("routes", tree.Missing).
			Build()
	}
	return nil
}

func resolveTree(cfg *site.SiteConfig, contentDir string) (*navtree.Tree, error) {
	tree, err := navtree.Resolve(cfg, contentDir)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to resolve navigation tree").
			WithContext("content", contentDir).
			Build()
	}
	for _, route := range tree.Missing {
		slog.Warn("No source page for sidebar route", logfields.Route(route), logfields.Path(contentDir))
	}
	return tree, nil
}
