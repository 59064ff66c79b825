// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

// Command ktx2conv converts textures into KTX2 files: half-float
// environment maps to RGB9E5 and LDR images to BCn.
package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

var verbose bool

func main() {
	app := &cli.Command{
		Name:  "ktx2conv",
		Usage: "Convert textures into KTX2 containers",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging", Destination: &verbose},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			log.SetOutput(os.Stderr)
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			hdrCmd(),
			ldrCmd(),
			batchCmd(),
			inspectCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
