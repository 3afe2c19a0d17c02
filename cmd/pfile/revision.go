package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/pfile/internal/logger"
	"github.com/samcharles93/pfile/internal/render"
	"github.com/samcharles93/pfile/pkg/pfile"
)

func revisionCmd(g *globals) *cli.Command {
	return &cli.Command{
		Name:      "revision",
		Usage:     "Print the revision tag of each file",
		ArgsUsage: "<path|s3://bucket/key>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			if cmd.NArg() == 0 {
				return cli.Exit("revision: at least one path is required", 1)
			}

			tw := tabwriter.NewWriter(stdout(cmd), 0, 4, 2, ' ', 0)
			failed := 0
			for _, src := range cmd.Args().Slice() {
				tag, err := probe(ctx, g, src)
				if err != nil {
					log.Error("probe failed", "source", src, "error", err)
					failed++
					continue
				}
				key := pfile.FormatRevision(tag)
				status := "known"
				if _, err := pfile.Lookup(key); err != nil {
					status = "unknown"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", src, key, status)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return cli.Exit(fmt.Sprintf("revision: %d of %d inputs failed", failed, cmd.NArg()), 1)
			}
			return nil
		},
	}
}

func probe(ctx context.Context, g *globals, src string) (float32, error) {
	r, release, err := g.openSource(ctx, src)
	if err != nil {
		return 0, err
	}
	defer release()
	return pfile.ProbeRevision(r)
}

func revisionsCmd(g *globals) *cli.Command {
	var output string

	return &cli.Command{
		Name:  "revisions",
		Usage: "List the header revisions this build can decode",
		Flags: []cli.Flag{outputFlag(&output)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyDecodeConfig(cmd, g.cfg, nil, &output)
			format, err := parseOutput(output)
			if err != nil {
				return err
			}
			return render.WriteRevisions(stdout(cmd), format, render.Revisions())
		},
	}
}

func layoutCmd(g *globals) *cli.Command {
	var (
		output string
		all    bool
	)

	return &cli.Command{
		Name:      "layout",
		Usage:     "Print the field layout of a revision",
		ArgsUsage: "<revision>",
		Flags: []cli.Flag{
			outputFlag(&output),
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "include padding fields",
				Destination: &all,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyDecodeConfig(cmd, g.cfg, nil, &output)
			if cmd.NArg() != 1 {
				return cli.Exit("layout: exactly one revision is required", 1)
			}
			format, err := parseOutput(output)
			if err != nil {
				return err
			}
			key := cmd.Args().First()
			schema, err := pfile.Lookup(key)
			if err != nil {
				return cli.Exit(fmt.Sprintf("layout: %v (known: %v)", err, pfile.KnownRevisions()), 1)
			}
			return render.WriteLayout(stdout(cmd), format, render.BuildLayout(key, schema, all))
		},
	}
}
