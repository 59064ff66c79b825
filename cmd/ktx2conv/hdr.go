package main

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/woozymasta/ktx2"
	"github.com/woozymasta/ktx2/internal/config"
	"github.com/woozymasta/ktx2/internal/envmap"
)

func hdrCmd() *cli.Command {
	job := config.Job{}

	return &cli.Command{
		Name:  "hdr",
		Usage: "Encode a raw RGBA16F image (cubemap by default) as RGB9E5 KTX2",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "raw RGBA16F input, faces stored one after another, each with its mip chain",
				Destination: &job.Input,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output .ktx2 path",
				Destination: &job.Output,
				Required:    true,
			},
			&cli.IntFlag{Name: "width", Usage: "base level width", Destination: &job.Width, Required: true},
			&cli.IntFlag{Name: "height", Usage: "base level height", Destination: &job.Height, Required: true},
			&cli.IntFlag{Name: "faces", Usage: "6 for a cubemap, 1 for a 2D image", Value: 6, Destination: &job.Faces},
			&cli.IntFlag{Name: "levels", Usage: "mip levels stored in the input", Value: 1, Destination: &job.Levels},
			&cli.StringFlag{
				Name:        "compression",
				Aliases:     []string{"c"},
				Usage:       "supercompression (none, zstd, zlib)",
				Value:       config.DefaultCompression,
				Destination: &job.Compression,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := job.Validate(); err != nil {
				return err
			}
			return convertHDR(ctx, job)
		},
	}
}

// convertHDR runs one RGB9E5 conversion job.
func convertHDR(ctx context.Context, job config.Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := log.WithFields(log.Fields{"input": job.Input, "output": job.Output})
	start := time.Now()

	scheme, err := job.Scheme()
	if err != nil {
		return err
	}
	compressor, err := ktx2.NewCompressor(scheme)
	if err != nil {
		return err
	}

	img, err := envmap.Load(job.Input, job.Width, job.Height, job.Faces, job.Levels)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %dx%d, faces %d, levels %d", img.Width, img.Height, img.Faces, img.Levels)

	w, err := envmap.Convert(img, compressor)
	if err != nil {
		return fmt.Errorf("%s: %w", job.Input, err)
	}

	if err := ktx2.WriteFile(job.Output, w); err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"levels":      len(w.Levels),
		"compression": scheme.String(),
		"elapsed":     time.Since(start).Round(time.Millisecond),
	}).Info("converted")

	return nil
}
