package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/woozymasta/ktx2"
)

func inspectCmd() *cli.Command {
	var path string

	return &cli.Command{
		Name:  "inspect",
		Usage: "Print the header and level index of a KTX2 file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "path to .ktx2 file", Destination: &path, Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			info, size, err := ktx2.ReadInfo(path)
			if err != nil {
				return err
			}

			out := cmd.Root().Writer
			if out == nil {
				out = os.Stdout
			}

			h := info.Header
			_, _ = fmt.Fprintf(out, "file:              %s (%d bytes)\n", path, size)
			_, _ = fmt.Fprintf(out, "format:            %s\n", h.Format)
			_, _ = fmt.Fprintf(out, "type size:         %d\n", h.TypeSize)
			_, _ = fmt.Fprintf(out, "size:              %dx%dx%d\n", h.PixelWidth, h.PixelHeight, h.PixelDepth)
			_, _ = fmt.Fprintf(out, "layers/faces:      %d/%d\n", h.LayerCount, h.FaceCount)
			_, _ = fmt.Fprintf(out, "supercompression:  %s\n", h.SupercompressionScheme)
			_, _ = fmt.Fprintf(out, "dfd:               offset %d, length %d\n", h.Index.DFDByteOffset, h.Index.DFDByteLength)
			_, _ = fmt.Fprintf(out, "levels:            %d\n", h.LevelCount)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "LEVEL\tOFFSET\tLENGTH\tUNCOMPRESSED")
			for i, l := range info.Levels {
				_, _ = fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", i, l.ByteOffset, l.ByteLength, l.UncompressedByteLength)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if err := info.CheckLayout(size); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			_, _ = fmt.Fprintln(out, "layout:            ok")

			return nil
		},
	}
}
