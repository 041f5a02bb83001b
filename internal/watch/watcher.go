package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/reindex/internal/logfields"
	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs a function whenever the top level of a directory changes.
// Bursts of events are collapsed by a debounce timer, and runs never overlap.
type Watcher struct {
	dir      string
	debounce time.Duration
	run      func(context.Context)
	watcher  *fsnotify.Watcher
}

// New starts watching dir. Events that happen after New returns are seen
// by Run.
func New(dir string, debounce time.Duration, run func(context.Context)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to resolve content root: %w", err)
	}
	if err := fw.Add(absDir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch content root %s: %w", absDir, err)
	}

	return &Watcher{
		dir:      absDir,
		debounce: debounce,
		run:      run,
		watcher:  fw,
	}, nil
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	slog.Info("Watching content root", logfields.Root(w.dir))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			slog.Debug("Content change detected", logfields.Path(event.Name), logfields.Event(event.Op.String()))
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Content watcher error", logfields.Error(err))
		case <-timer.C:
			w.run(ctx)
		}
	}
}
