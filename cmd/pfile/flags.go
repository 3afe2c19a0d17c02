package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/pfile/internal/logger"
	"github.com/samcharles93/pfile/internal/render"
	"github.com/samcharles93/pfile/internal/s3source"
)

// globals holds the state shared by every subcommand: persistent flags, the
// loaded config file and the lazily built S3 client.
type globals struct {
	configPath string
	logLevel   string
	logFormat  string
	logFile    string
	debug      bool
	s3Region   string

	cfg    Config
	closer io.Closer

	s3Once sync.Once
	s3API  s3source.API
	s3Err  error
}

func (g *globals) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config file",
			Value:       defaultConfigPath(),
			Destination: &g.configPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &g.logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &g.logFormat,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "write logs to a rotated file instead of stderr",
			Destination: &g.logFile,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &g.debug,
		},
		&cli.StringFlag{
			Name:        "s3-region",
			Usage:       "AWS region for s3:// inputs",
			Destination: &g.s3Region,
		},
	}
}

func (g *globals) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := LoadConfig(g.configPath)
	if err != nil {
		return ctx, cli.Exit(err.Error(), 1)
	}
	g.cfg = cfg
	applyGlobalConfig(cmd, cfg, g)

	level, err := logger.ParseLevel(g.logLevel)
	if err != nil {
		return ctx, cli.Exit(err.Error(), 1)
	}
	if g.debug {
		level = slog.LevelDebug
	}
	log, closer, err := logger.New(logger.Options{
		Level:      level,
		Format:     logger.Format(g.logFormat),
		File:       g.logFile,
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		Compress:   true,
	}, stderr(cmd))
	if err != nil {
		return ctx, cli.Exit(err.Error(), 1)
	}
	g.closer = closer
	return logger.WithContext(ctx, log), nil
}

func (g *globals) after(ctx context.Context, cmd *cli.Command) error {
	if g.closer == nil {
		return nil
	}
	return g.closer.Close()
}

// s3 returns the S3 client, building it on first use.
func (g *globals) s3(ctx context.Context) (s3source.API, error) {
	g.s3Once.Do(func() {
		if g.s3API != nil {
			return
		}
		g.s3API, g.s3Err = s3source.NewClient(ctx, g.s3Region)
	})
	return g.s3API, g.s3Err
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func revisionFlag(dest *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "revision",
		Aliases:     []string{"r"},
		Usage:       "decode with this revision instead of the file's own tag",
		Destination: dest,
	}
}

func outputFlag(dest *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Usage:       "output format (text, json, yaml)",
		Value:       string(render.FormatText),
		Destination: dest,
	}
}

func parseOutput(s string) (render.Format, error) {
	f, err := render.ParseFormat(s)
	if err != nil {
		return "", cli.Exit(fmt.Sprint(err), 1)
	}
	return f, nil
}
