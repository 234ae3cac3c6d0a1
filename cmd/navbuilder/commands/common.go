package commands

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/navbuilder/internal/config"
	ferrors "git.home.luguber.info/inful/navbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/site"
)

// DefaultConfigFile is where init writes when no --config is given.
const DefaultConfigFile = "navbuilder.yaml"

// Global context passed to subcommands.
type Global struct {
	Out io.Writer
}

// NewGlobal returns the production Global writing to stdout.
func NewGlobal() *Global {
	return &Global{Out: os.Stdout}
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (YAML). The built-in navigation is used when empty."`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate ValidateCmd `cmd:"" help:"Build the configuration and report errors and warnings"`
	Flatten  FlattenCmd  `cmd:"" help:"Print every sidebar route in navigation order"`
	Sitemap  SitemapCmd  `cmd:"" help:"Generate a site map (text, markdown, xml)"`
	Tree     TreeCmd     `cmd:"" help:"Print the navigation tree, labelled from a content directory"`
	Export   ExportCmd   `cmd:"" help:"Export the configuration for the site renderer (json, yaml, js)"`
	Init     InitCmd     `cmd:"" help:"Write the built-in navigation to a new configuration file"`
	Watch    WatchCmd    `cmd:"" help:"Rebuild the configuration whenever the file changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadSite builds the configuration selected by --config and logs its
// warnings. On a validation failure the partial result is still returned so
// callers can print the full report.
func LoadSite(root *CLI) (*config.Loaded, error) {
	if root.Config == "" {
		cfg, report := site.NewBuilder(site.Declare).BuildReport()
		loaded := &config.Loaded{Site: cfg, Report: report, Normalization: &config.NormalizationResult{}}
		logWarnings(loaded)
		if err := report.Err(); err != nil {
			return loaded, classify(err, "built-in declaration")
		}
		return loaded, nil
	}

	loaded, err := config.Load(root.Config)
	if loaded != nil {
		logWarnings(loaded)
	}
	if err != nil {
		return loaded, classify(err, root.Config)
	}
	slog.Debug("Configuration loaded",
		logfields.Config(root.Config),
		logfields.Theme(loaded.Site.Theme),
		logfields.Links(loaded.Report.Links),
		logfields.Groups(loaded.Report.Groups))
	return loaded, nil
}

func logWarnings(loaded *config.Loaded) {
	if loaded.Normalization != nil {
		for _, w := range loaded.Normalization.Warnings {
			slog.Warn(w, logfields.Config(loaded.Path))
		}
	}
	if loaded.Report != nil {
		for _, w := range loaded.Report.Warnings {
			slog.Warn(w.Message, logfields.Path(w.Path), logfields.Location(w.Location))
		}
	}
}

// classify maps loader and build errors onto the CLI error categories.
func classify(err error, source string) error {
	var cfgErr *site.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		return ferrors.WrapError(err, ferrors.CategoryConfig, "invalid site configuration").
			Fatal().
			WithContext("config", source).
			WithContext("path", cfgErr.Path).
			WithContext("location", cfgErr.Location).
			Build()
	case errors.Is(err, os.ErrNotExist):
		return ferrors.WrapError(err, ferrors.CategoryNotFound, "configuration file not found").
			UserAction().
			WithContext("config", source).
			Build()
	default:
		return ferrors.WrapError(err, ferrors.CategoryConfig, "failed to load configuration").
			Fatal().
			WithContext("config", source).
			Build()
	}
}

// writeOutput writes data to path, or to the global output when path is empty.
func writeOutput(g *Global, path, format string, data []byte) error {
	if path == "" {
		_, err := g.Out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write output file").
			WithContext("file", path).
			Build()
	}
	slog.Info("Output written", logfields.File(path), logfields.Format(format))
	return nil
}
