package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "git.home.luguber.info/inful/navbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/metrics"
	"git.home.luguber.info/inful/navbuilder/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce    time.Duration `help:"Quiet period before rebuilding after a change" default:"250ms"`
	MetricsFile string        `help:"Write Prometheus metrics to this textfile after every build"`
	Export      string        `help:"Re-export the configuration as JSON to this file after every successful build"`
}

func (cmd *WatchCmd) Run(g *Global, root *CLI) error {
	if root.Config == "" {
		return ferrors.ValidationError("watch requires --config").Build()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return cmd.run(ctx, g, root)
}

func (cmd *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var reg *prom.Registry
	if cmd.MetricsFile != "" {
		reg = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
	}

	w, err := watch.New(root.Config, watch.Options{
		Debounce: cmd.Debounce,
		Recorder: recorder,
		OnBuild: func(res watch.Result) {
			if res.Err == nil && cmd.Export != "" {
				if err := (&ExportCmd{Format: "json", Output: cmd.Export}).export(g, res.Loaded.Site); err != nil {
					slog.Error("Export after rebuild failed", logfields.BuildID(res.BuildID), logfields.Error(err))
				}
			}
			if reg != nil {
				if err := metrics.WriteTextfile(cmd.MetricsFile, reg); err != nil {
					slog.Error("Failed to write metrics", logfields.File(cmd.MetricsFile), logfields.Error(err))
				}
			}
		},
	})
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
