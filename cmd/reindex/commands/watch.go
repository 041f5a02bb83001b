package commands

import (
	"context"
	"time"

	"git.home.luguber.info/inful/reindex/internal/git"
	"git.home.luguber.info/inful/reindex/internal/logfields"
	"git.home.luguber.info/inful/reindex/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	RunOptions `embed:""`
	Debounce   time.Duration `help:"Quiet period before rerunning after a change (default 500ms)"`
}

// Run processes the content root once and then after every change until interrupted.
func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	if err := w.apply(cfg); err != nil {
		return err
	}
	if w.Debounce > 0 {
		cfg.Watch.Debounce = w.Debounce.String()
	}
	if cfg.RequireClean {
		if err := git.CheckClean(cfg.ContentDir); err != nil {
			return err
		}
	}

	// Register the watch before the first pass so edits made during it are not missed.
	watcher, err := watch.New(cfg.ContentDir, cfg.Watch.DebounceDuration(), func(ctx context.Context) {
		if err := runOnce(&Global{Context: ctx, Logger: g.Logger, Stdout: g.Stdout}, cfg); err != nil {
			g.Logger.Error("Reindex pass failed", logfields.Error(err))
		}
	})
	if err != nil {
		return err
	}
	if err := runOnce(g, cfg); err != nil {
		g.Logger.Error("Initial reindex pass failed", logfields.Error(err))
	}
	return watcher.Run(g.Context)
}
