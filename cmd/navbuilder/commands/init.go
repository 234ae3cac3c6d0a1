package commands

import (
	"errors"
	"fmt"

	"git.home.luguber.info/inful/navbuilder/internal/config"
	ferrors "git.home.luguber.info/inful/navbuilder/internal/foundation/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (cmd *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	if path == "" {
		path = DefaultConfigFile
	}
	if err := config.Init(path, cmd.Force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return ferrors.ValidationError("configuration file already exists (use --force to overwrite)").
				WithContext("config", path).
				Build()
		}
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write configuration file").
			WithContext("config", path).
			Build()
	}
	fmt.Fprintf(g.Out, "Wrote %s\n", path)
	return nil
}
