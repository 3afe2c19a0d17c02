package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/pfile/internal/catalog"
	"github.com/samcharles93/pfile/internal/logger"
	"github.com/samcharles93/pfile/pkg/pfile"
)

func catalogCmd(g *globals) *cli.Command {
	var (
		out      string
		pattern  string
		revision string
	)

	return &cli.Command{
		Name:      "catalog",
		Usage:     "Summarise many P-files into a Parquet table",
		ArgsUsage: "<path|dir|s3://bucket/key>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Usage:       "Parquet file to write",
				Required:    true,
				Destination: &out,
			},
			&cli.StringFlag{
				Name:        "pattern",
				Usage:       "file name pattern inside directories",
				Value:       catalog.DefaultPattern,
				Destination: &pattern,
			},
			revisionFlag(&revision),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			applyDecodeConfig(cmd, g.cfg, &revision, nil)
			if cmd.NArg() == 0 {
				return cli.Exit("catalog: at least one input is required", 1)
			}

			rows, err := catalog.Collect(ctx, cmd.Args().Slice(), catalog.Options{
				Pattern:  pattern,
				Override: revision,
				Decode: func(ctx context.Context, path string) (*pfile.Header, error) {
					return g.decodeSource(ctx, path, revision)
				},
			})
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range rows {
				if r.Error != "" {
					failed++
				}
			}
			if err := catalog.Write(out, rows); err != nil {
				return err
			}
			log.Info("catalog written", "path", out, "rows", len(rows), "failed", failed)
			return nil
		},
	}
}
