package commands

import (
	"fmt"

	"git.home.luguber.info/inful/reindex/internal/config"
	"git.home.luguber.info/inful/reindex/internal/foundation/errors"
	"git.home.luguber.info/inful/reindex/internal/git"
	"git.home.luguber.info/inful/reindex/internal/reindex"
)

// RunOptions are the flags shared by run and watch.
type RunOptions struct {
	Dir          string `arg:"" optional:"" help:"Content root to process (default: content)"`
	Atomic       bool   `help:"Write through a temporary file and rename it over the original"`
	LeafOnly     bool   `name:"leaf-only" help:"Skip the content root entirely when it contains subdirectories"`
	RequireClean bool   `name:"require-clean" help:"Refuse to run when the content root has uncommitted git changes"`
	Format       string `short:"f" help:"Output format (text or json)"`
	Strict       bool   `help:"Exit non-zero when any file could not be updated"`
}

// RunCmd implements the default 'run' command.
type RunCmd struct {
	RunOptions `embed:""`
}

// Run executes one pass over the content root.
func (r *RunCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	if err := r.apply(cfg); err != nil {
		return err
	}
	if cfg.RequireClean {
		if err := git.CheckClean(cfg.ContentDir); err != nil {
			return err
		}
	}
	return runOnce(g, cfg)
}

// apply merges command line flags over the loaded configuration.
func (o *RunOptions) apply(cfg *config.Config) error {
	if o.Dir != "" {
		cfg.ContentDir = o.Dir
	}
	if o.Atomic {
		cfg.WriteMode = string(reindex.WriteModeAtomic)
	}
	cfg.LeafOnly = cfg.LeafOnly || o.LeafOnly
	cfg.RequireClean = cfg.RequireClean || o.RequireClean
	cfg.Output.Strict = cfg.Output.Strict || o.Strict
	switch o.Format {
	case "":
	case "text", "json":
		cfg.Output.Format = o.Format
	default:
		return errors.ValidationError(fmt.Sprintf("unsupported output format %q (use text or json)", o.Format)).Build()
	}
	return nil
}

func options(g *Global, cfg *config.Config) reindex.Options {
	return reindex.Options{
		WriteMode: reindex.WriteMode(cfg.WriteMode),
		LeafOnly:  cfg.LeafOnly,
		Rewriter:  reindex.NewRewriter(cfg.Fields...),
		Logger:    g.Logger,
	}
}

func runOnce(g *Global, cfg *config.Config) error {
	result, err := reindex.Run(g.Context, cfg.ContentDir, options(g, cfg))
	if err != nil {
		return err
	}
	if err := reindex.NewFormatter(cfg.Output.Format).Format(g.Stdout, result); err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "failed to write report").Build()
	}
	if cfg.Output.Strict && result.HasErrors() {
		return errors.FileSystemError(fmt.Sprintf("%d file(s) could not be updated", len(result.Errors))).
			WithContext("files", result.FailedPaths()).
			Build()
	}
	return nil
}
