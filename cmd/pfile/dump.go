package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/pfile/internal/logger"
	"github.com/samcharles93/pfile/internal/render"
)

func dumpCmd(g *globals) *cli.Command {
	var (
		revision string
		output   string
		all      bool
		raw      bool
	)

	return &cli.Command{
		Name:      "dump",
		Usage:     "Decode and print P-file headers",
		ArgsUsage: "<path|s3://bucket/key>...",
		Flags: []cli.Flag{
			revisionFlag(&revision),
			outputFlag(&output),
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "include padding fields",
				Destination: &all,
			},
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "show byte arrays as hex",
				Destination: &raw,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			applyDecodeConfig(cmd, g.cfg, &revision, &output)

			if cmd.NArg() == 0 {
				return cli.Exit("dump: at least one path is required", 1)
			}
			format, err := parseOutput(output)
			if err != nil {
				return err
			}

			opts := render.Options{Padding: all, Raw: raw}
			docs := make([]render.Document, 0, cmd.NArg())
			failed := 0
			for _, src := range cmd.Args().Slice() {
				h, err := g.decodeSource(ctx, src, revision)
				if err != nil {
					log.Error("decode failed", "source", src, "error", err)
					failed++
					continue
				}
				log.Debug("decoded header", "source", src, "revision", h.Revision(), "layout", h.Schema().Key())
				docs = append(docs, render.Build(src, h, opts))
			}

			if len(docs) > 0 {
				if err := render.Write(stdout(cmd), format, docs); err != nil {
					return err
				}
			}
			if failed > 0 {
				return cli.Exit(fmt.Sprintf("dump: %d of %d inputs failed", failed, cmd.NArg()), 1)
			}
			return nil
		},
	}
}
