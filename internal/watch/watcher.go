// Package watch rebuilds the site configuration whenever its file changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/navbuilder/internal/config"
	ferrors "git.home.luguber.info/inful/navbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/metrics"
	"git.home.luguber.info/inful/navbuilder/internal/site"
)

// DefaultDebounce is the quiet window applied to bursts of file events.
const DefaultDebounce = 250 * time.Millisecond

// Result describes one rebuild.
type Result struct {
	BuildID  string
	Loaded   *config.Loaded
	Err      error
	Duration time.Duration
}

// Warnings counts normalization and validation warnings.
func (r Result) Warnings() int {
	if r.Loaded == nil {
		return 0
	}
	n := 0
	if r.Loaded.Normalization != nil {
		n += len(r.Loaded.Normalization.Warnings)
	}
	if r.Loaded.Report != nil {
		n += len(r.Loaded.Report.Warnings)
	}
	return n
}

// Options configures a Watcher.
type Options struct {
	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration
	// Loader defaults to config.NewLoader().
	Loader *config.Loader
	// Recorder defaults to metrics.NoopRecorder.
	Recorder metrics.Recorder
	// OnBuild is called after every rebuild, including the initial one.
	OnBuild func(Result)
}

// Watcher monitors a configuration file and rebuilds it on change.
// It is safe to run as a single goroutine.
type Watcher struct {
	configPath string
	loader     *config.Loader
	recorder   metrics.Recorder
	onBuild    func(Result)
	debounce   time.Duration
	ready      chan struct{}
}

// New creates a watcher for the configuration file at path.
func New(path string, opts Options) (*Watcher, error) {
	if path == "" {
		return nil, ferrors.ValidationError("watch requires a configuration file path").Build()
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to resolve config path").
			WithContext("path", path).Build()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Loader == nil {
		opts.Loader = config.NewLoader()
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if opts.OnBuild == nil {
		opts.OnBuild = func(Result) {}
	}
	return &Watcher{
		configPath: absPath,
		loader:     opts.Loader,
		recorder:   opts.Recorder,
		onBuild:    opts.OnBuild,
		debounce:   opts.Debounce,
		ready:      make(chan struct{}),
	}, nil
}

// Ready is closed once Run has subscribed to file events and finished the
// initial build.
func (w *Watcher) Ready() <-chan struct{} { return w.ready }

// Run performs an initial build, then rebuilds after every debounced change
// until ctx is cancelled. Failed builds are reported and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to create file watcher").Build()
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil {
			slog.Error("Error closing file watcher", logfields.Error(cerr))
		}
	}()

	// The directory is watched because editors often replace the file.
	configDir := filepath.Dir(w.configPath)
	if err := fw.Add(configDir); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to watch config directory").
			WithContext("path", configDir).Build()
	}
	slog.Info("Watching configuration", logfields.Config(w.configPath))

	w.Rebuild()
	close(w.ready)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	configFile := filepath.Base(w.configPath)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping configuration watcher")
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != configFile {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				slog.Debug("Config file change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
				timer.Reset(w.debounce)
			case event.Has(fsnotify.Remove):
				slog.Warn("Config file removed", logfields.File(event.Name))
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("Config watcher error", logfields.Error(err))
		case <-timer.C:
			w.Rebuild()
		}
	}
}

// Rebuild loads the configuration once, records metrics and reports the result.
func (w *Watcher) Rebuild() Result {
	res := Result{BuildID: uuid.NewString()}
	start := time.Now()
	res.Loaded, res.Err = w.loader.Load(w.configPath)
	res.Duration = time.Since(start)

	warnings := res.Warnings()
	w.recorder.ObserveBuildDuration(res.Duration)
	w.recorder.IncBuildOutcome(metrics.OutcomeFor(res.Err, warnings))
	w.recorder.AddValidationWarnings(warnings)

	attrs := []any{
		logfields.BuildID(res.BuildID),
		logfields.Config(w.configPath),
		logfields.DurationMS(float64(res.Duration.Microseconds()) / 1000),
	}
	if res.Err != nil {
		slog.Error("Configuration rebuild failed", append(attrs, logfields.Error(res.Err))...)
	} else {
		links := len(site.Links(res.Loaded.Site.ThemeConfig.Sidebar))
		w.recorder.SetSidebarLinks(links)
		slog.Info("Configuration rebuilt", append(attrs, logfields.Links(links), logfields.Warnings(warnings))...)
	}

	w.onBuild(res)
	return res
}
