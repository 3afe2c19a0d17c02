package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/pfile/internal/version"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	g := &globals{}
	app := &cli.Command{
		Name:    "pfile",
		Usage:   "Inspect GE MR P-file headers",
		Version: version.String(),
		Flags:   g.flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			dumpCmd(g),
			revisionCmd(g),
			revisionsCmd(g),
			layoutCmd(g),
			catalogCmd(g),
			serveCmd(g),
			versionCmd(),
		},
	}
	// Subcommands parse the persistent flags themselves, so setup runs there
	// rather than on the root.
	for _, sub := range app.Commands {
		sub.Before = g.before
		sub.After = g.after
	}
	return app
}
