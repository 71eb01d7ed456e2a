package main

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docfxgen/internal/build"
	"git.home.luguber.info/inful/docfxgen/internal/config"
	"git.home.luguber.info/inful/docfxgen/internal/logfields"
	"git.home.luguber.info/inful/docfxgen/internal/metrics"
)

// runBuild performs one full build: load the events file, feed every event
// into a fresh session, and drain the registry into the output directory.
func runBuild(cfg *config.Config, eventsPath string) error {
	recorder, shutdown := setupMetrics(cfg)
	defer shutdown()
	return buildOnce(cfg, eventsPath, recorder)
}

func buildOnce(cfg *config.Config, eventsPath string, recorder metrics.Recorder) error {
	session, err := build.NewSession(cfg, build.WithRecorder(recorder))
	if err != nil {
		return err
	}
	events, err := build.LoadEvents(eventsPath)
	if err != nil {
		return err
	}
	slog.Info("Processing discovery events", logfields.File(eventsPath), logfields.Count(len(events)))
	for _, ev := range events {
		// Per-symbol failures are recoverable; ProcessSymbol logs and skips.
		if err := session.ProcessSymbol(ev); err != nil {
			slog.Warn("Skipping symbol", logfields.Symbol(ev.Name), logfields.Error(err))
		}
	}
	return session.Finish()
}

// setupMetrics returns the configured recorder and a shutdown func. With no
// metrics address configured the noop recorder is used.
func setupMetrics(cfg *config.Config) (metrics.Recorder, func()) {
	if cfg.MetricsListen == "" {
		return metrics.NoopRecorder{}, func() {}
	}
	recorder := metrics.NewPrometheusRecorder(nil)
	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())
	srv := &http.Server{Addr: cfg.MetricsListen, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Warn("Metrics endpoint failed", logfields.Error(err))
		}
	}()
	return recorder, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}

// runWatch rebuilds whenever the events file changes, until interrupted.
// Bursts of filesystem events are debounced into a single rebuild.
func runWatch(cfg *config.Config, eventsPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors replace files, which drops a watch on the
	// file itself.
	dir := filepath.Dir(eventsPath)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	if err := buildOnce(cfg, eventsPath, metrics.NoopRecorder{}); err != nil {
		slog.Error("Initial build failed", logfields.Error(err))
	}
	slog.Info("Watching for changes", logfields.File(eventsPath))

	target, _ := filepath.Abs(eventsPath)
	watchLoop(ctx, watcher.Events, watcher.Errors, target, 200*time.Millisecond, func() {
		slog.Info("Events file changed, rebuilding", logfields.File(eventsPath))
		if err := buildOnce(cfg, eventsPath, metrics.NoopRecorder{}); err != nil {
			slog.Error("Rebuild failed", logfields.Error(err))
		}
	})
	return nil
}

// watchLoop consumes filesystem events and invokes rebuildFn once per burst:
// each relevant event for target restarts a quiet-period timer, and the
// rebuild fires only after the burst settles. Events for other files and
// non-content operations are ignored. Returns when ctx is done or the event
// channels close.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, target string, quiet time.Duration, rebuildFn func()) {
	var debounce *time.Timer
	rebuild := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			name, _ := filepath.Abs(event.Name)
			if name != target || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(quiet, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case err, ok := <-errs:
			if !ok {
				return
			}
			slog.Warn("Watcher error", logfields.Error(err))
		case <-rebuild:
			rebuildFn()
		}
	}
}
