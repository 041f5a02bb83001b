package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/reindex/cmd/reindex/commands"
	"git.home.luguber.info/inful/reindex/internal/foundation/errors"
	"git.home.luguber.info/inful/reindex/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cli := &commands.CLI{}
	global := &commands.Global{Context: ctx, Logger: slog.Default(), Stdout: os.Stdout}

	parser := kong.Parse(cli,
		kong.Name("reindex"),
		kong.Description("Keep title and alias indexes of Markdown content in sync with their filenames."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)

	if err := parser.Run(global, cli); err != nil {
		cancel()
		errors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
	}
}
