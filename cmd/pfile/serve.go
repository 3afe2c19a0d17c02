package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/pfile/internal/api"
	"github.com/samcharles93/pfile/internal/logger"
)

func serveCmd(g *globals) *cli.Command {
	var (
		addr        string
		readTimeout time.Duration
		maxUploadMB int64
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the header decoding REST API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read header timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
			&cli.Int64Flag{
				Name:        "max-upload-mb",
				Usage:       "largest accepted upload in MiB",
				Value:       api.DefaultMaxUploadBytes >> 20,
				Destination: &maxUploadMB,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			applyServeConfig(cmd, g.cfg, &addr, &maxUploadMB)
			if maxUploadMB <= 0 {
				return cli.Exit("serve: --max-upload-mb must be positive", 1)
			}

			server := api.NewServer(api.Options{
				MaxUploadBytes: maxUploadMB << 20,
				Logger:         log,
			})
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)

			log.Info("starting server", "address", addr, "max_upload_mb", maxUploadMB)
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
