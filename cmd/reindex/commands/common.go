package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/reindex/internal/config"
	"github.com/alecthomas/kong"
)

// Global carries state shared by every subcommand.
type Global struct {
	Context context.Context
	Logger  *slog.Logger
	Stdout  io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: reindex.yaml if present)" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Run   RunCmd   `cmd:"" default:"withargs" help:"Rewrite title and alias indexes of the files in the content root"`
	Watch WatchCmd `cmd:"" help:"Rewrite indexes now and again whenever the content root changes"`
	Init  InitCmd  `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

// loadConfig loads the configuration named by --config, or reindex.yaml when it exists.
func (c *CLI) loadConfig(g *Global) (*config.Config, error) {
	path, required := c.Config, true
	if path == "" {
		path, required = config.DefaultPath, false
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}
	configureLogging(g, cfg.Logging, c.Verbose)
	return cfg, nil
}

// configureLogging applies the configured level and format. --verbose wins over the file.
func configureLogging(g *Global, lc config.LoggingConfig, verbose bool) {
	opts := &slog.HandlerOptions{Level: lc.SlogLevel()}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if lc.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	g.Logger = slog.New(handler)
	slog.SetDefault(g.Logger)
}
