package commands

import (
	"git.home.luguber.info/inful/navbuilder/internal/export"
	ferrors "git.home.luguber.info/inful/navbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/navbuilder/internal/site"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	Format string `short:"f" help:"Output format: json, yaml, js" default:"json" enum:"json,yaml,js"`
	Output string `short:"o" help:"Output file path (optional, prints to stdout if not specified)"`
}

func (cmd *ExportCmd) Run(g *Global, root *CLI) error {
	loaded, err := LoadSite(root)
	if err != nil {
		return err
	}
	return cmd.export(g, loaded.Site)
}

func (cmd *ExportCmd) export(g *Global, cfg *site.SiteConfig) error {
	data, err := export.Marshal(cfg, export.Format(cmd.Format))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to export configuration").
			WithContext("format", cmd.Format).
			Build()
	}
	return writeOutput(g, cmd.Output, cmd.Format, data)
}
