package main

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/woozymasta/ktx2"
)

func ldrCmd() *cli.Command {
	var (
		input       string
		output      string
		formatName  string
		compression string
		maxMipMaps  int
	)

	return &cli.Command{
		Name:  "ldr",
		Usage: "Encode a PNG or JPEG image as a BCn (or 8-bit RGBA) KTX2 with mipmaps",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "PNG or JPEG input", Destination: &input, Required: true},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output .ktx2 path", Destination: &output, Required: true},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "block format (dxt1, dxt3, dxt5, bc4, bc5, rgba8, bgra8)",
				Value:       "dxt5",
				Destination: &formatName,
			},
			&cli.IntFlag{Name: "max-mips", Usage: "limit mip levels (0 = full chain)", Destination: &maxMipMaps},
			&cli.StringFlag{
				Name:        "compression",
				Aliases:     []string{"c"},
				Usage:       "supercompression (none, zstd, zlib)",
				Value:       "zstd",
				Destination: &compression,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := ktx2.ParseBCnFormat(formatName)
			if err != nil {
				return err
			}
			scheme, err := ktx2.ParseScheme(compression)
			if err != nil {
				return err
			}
			compressor, err := ktx2.NewCompressor(scheme)
			if err != nil {
				return err
			}

			start := time.Now()
			img, err := decodeImage(input)
			if err != nil {
				return err
			}

			w, err := ktx2.WriterFromImage(img, format, maxMipMaps, compressor)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			if err := ktx2.WriteFile(output, w); err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"input":   input,
				"output":  output,
				"format":  w.Header.Format.String(),
				"levels":  len(w.Levels),
				"elapsed": time.Since(start).Round(time.Millisecond),
			}).Info("converted")

			return nil
		},
	}
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, kind, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	log.Debugf("decoded %s as %s, %v", path, kind, img.Bounds().Size())

	return img, nil
}
