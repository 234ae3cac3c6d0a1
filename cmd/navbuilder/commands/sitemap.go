package commands

import (
	"bytes"

	ferrors "git.home.luguber.info/inful/navbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/navbuilder/internal/navtree"
	"git.home.luguber.info/inful/navbuilder/internal/site"
	"git.home.luguber.info/inful/navbuilder/internal/sitemap"
)

// SitemapCmd implements the 'sitemap' command.
type SitemapCmd struct {
	Format   string `short:"f" help:"Output format: text, markdown, xml" default:"text" enum:"text,markdown,xml"`
	Hostname string `short:"H" help:"Scheme and host for absolute URLs (required for xml)"`
	Content  string `help:"Content directory used to label markdown entries with page titles"`
	Output   string `short:"o" help:"Output file path (optional, prints to stdout if not specified)"`
}

func (cmd *SitemapCmd) Run(g *Global, root *CLI) error {
	loaded, err := LoadSite(root)
	if err != nil {
		return err
	}

	opts := sitemap.Options{Hostname: cmd.Hostname}
	if cmd.Content != "" {
		labels, err := pageLabels(loaded.Site, cmd.Content)
		if err != nil {
			return err
		}
		opts.Label = func(route string) string { return labels[route] }
	}

	var buf bytes.Buffer
	if err := sitemap.Write(&buf, loaded.Site, sitemap.Format(cmd.Format), opts); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "failed to generate site map").
			WithContext("format", cmd.Format).
			WithContext("hostname", cmd.Hostname).
			Build()
	}
	return writeOutput(g, cmd.Output, cmd.Format, buf.Bytes())
}

// pageLabels maps each route to the title of its content page.
func pageLabels(cfg *site.SiteConfig, contentDir string) (map[string]string, error) {
	tree, err := resolveTree(cfg, contentDir)
	if err != nil {
		return nil, err
	}
	labels := map[string]string{}
	var collect func([]*navtree.Node)
	collect = func(nodes []*navtree.Node) {
		for _, n := range nodes {
			if n.Kind == navtree.KindLink && !n.Missing {
				labels[n.Route] = n.Title
			}
			collect(n.Children)
		}
	}
	collect(tree.Nodes)
	return labels, nil
}
