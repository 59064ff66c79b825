package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/ktx2/internal/config"
)

func batchCmd() *cli.Command {
	var (
		configPath string
		workers    int
	)

	return &cli.Command{
		Name:  "batch",
		Usage: "Run RGB9E5 conversions listed in a YAML job file in parallel",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to job file", Destination: &configPath, Required: true},
			&cli.IntFlag{Name: "workers", Aliases: []string{"j"}, Usage: "parallel conversions (0 = from job file)", Destination: &workers},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if workers > 0 {
				cfg.Workers = workers
			}

			log.WithFields(log.Fields{"jobs": len(cfg.Jobs), "workers": cfg.Workers}).Info("starting batch")

			// One writer per image; jobs share nothing.
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(cfg.Workers)
			for _, job := range cfg.Jobs {
				g.Go(func() error {
					return convertHDR(gctx, job)
				})
			}

			return g.Wait()
		},
	}
}
