// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

// Package envmap converts half-float RGBA environment maps (2D or cubemap,
// with a mip chain) into RGB9E5 KTX2 files.
package envmap

import (
	"bytes"
	"fmt"
	"os"

	"github.com/woozymasta/ktx2"
	"github.com/woozymasta/ktx2/rgb9e5"
)

// PixelSize is the byte size of one RGBA16F source pixel.
const PixelSize = rgb9e5.HalfRGBAPixelSize

// Image is a raw RGBA16F image with faces and mip levels stored face by
// face, each face holding its full mip chain from the largest level down.
type Image struct {
	Width  int
	Height int
	// Faces is 6 for a cubemap, 1 otherwise.
	Faces  int
	Levels int
	// Format is the source pixel format; FormatUndefined means RGBA16F.
	Format ktx2.VkFormat
	Data   []byte
}

// Load reads a raw RGBA16F image from path.
func Load(path string, width, height, faces, levels int) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrReadSource, path, err)
	}

	img := &Image{Width: width, Height: height, Faces: faces, Levels: levels, Data: data}
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return img, nil
}

// Validate checks the image layout against its data.
func (img *Image) Validate() error {
	switch {
	case img.Format == ktx2.FormatUndefined, img.Format == ktx2.FormatR16G16B16A16SFloat:
	case isBlockCompressed(img.Format):
		return fmt.Errorf("%w: %s", ErrCompressedSource, img.Format)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedSource, img.Format)
	}

	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, img.Width, img.Height)
	}
	if img.Faces != 1 && img.Faces != 6 {
		return fmt.Errorf("%w: %d", ErrInvalidFaceCount, img.Faces)
	}

	maxLevels, err := ktx2.MipLevelCount(img.Width, img.Height)
	if err != nil {
		return err
	}
	if img.Levels < 1 || img.Levels > maxLevels {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidLevelCount, img.Levels, maxLevels)
	}

	if want := img.faceSize() * img.Faces; len(img.Data) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrDataSizeMismatch, want, len(img.Data))
	}

	return nil
}

// LevelSize returns the pixel dimensions of a mip level.
func (img *Image) LevelSize(level int) (width, height int) {
	return ktx2.MipDimension(img.Width, level), ktx2.MipDimension(img.Height, level)
}

func (img *Image) levelBytes(level int) int {
	w, h := img.LevelSize(level)
	return w * h * PixelSize
}

// faceSize is the byte size of one face's whole mip chain.
func (img *Image) faceSize() int {
	size := 0
	for level := 0; level < img.Levels; level++ {
		size += img.levelBytes(level)
	}
	return size
}

// ExtractLevel returns the RGBA16F pixels of one face at one mip level.
// The returned slice aliases img.Data.
func (img *Image) ExtractLevel(level, face int) ([]byte, error) {
	if level < 0 || level >= img.Levels || face < 0 || face >= img.Faces {
		return nil, fmt.Errorf("%w: level %d face %d (levels %d, faces %d)", ErrLevelOutOfRange, level, face, img.Levels, img.Faces)
	}

	offset := face * img.faceSize()
	for l := 0; l < level; l++ {
		offset += img.levelBytes(l)
	}

	end := offset + img.levelBytes(level)
	if end > len(img.Data) {
		return nil, fmt.Errorf("%w: level %d face %d ends at %d, data %d", ErrDataSizeMismatch, level, face, end, len(img.Data))
	}

	return img.Data[offset:end:end], nil
}

// PackLevels packs every mip level to RGB9E5, faces of a level concatenated
// in face order. Levels are returned largest first.
func PackLevels(img *Image) ([][]byte, error) {
	payloads := make([][]byte, img.Levels)
	for level := range payloads {
		var buf bytes.Buffer
		buf.Grow(img.levelBytes(level) / PixelSize * rgb9e5.WordSize * img.Faces)

		for face := 0; face < img.Faces; face++ {
			src, err := img.ExtractLevel(level, face)
			if err != nil {
				return nil, err
			}

			packed, err := rgb9e5.PackHalfRGBA(src)
			if err != nil {
				return nil, fmt.Errorf("%w: level %d face %d: %w", ErrPackLevel, level, face, err)
			}
			buf.Write(packed)
		}

		payloads[level] = buf.Bytes()
	}

	return payloads, nil
}

// Convert packs img to RGB9E5, supercompresses each level with c and
// returns a writer for the result. A nil compressor stores levels as is.
func Convert(img *Image, c ktx2.Compressor) (*ktx2.Writer, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if c == nil {
		c = ktx2.NoCompressor{}
	}

	payloads, err := PackLevels(img)
	if err != nil {
		return nil, err
	}

	levels, err := ktx2.CompressLevels(payloads, c)
	if err != nil {
		return nil, err
	}

	dfd, err := ktx2.BasicDFD(ktx2.FormatE5B9G9R9UFloat)
	if err != nil {
		return nil, err
	}

	return &ktx2.Writer{
		Header: ktx2.Header{
			Format:                 ktx2.FormatE5B9G9R9UFloat,
			TypeSize:               rgb9e5.WordSize,
			PixelWidth:             uint32(img.Width),  // #nosec G115 -- validated positive
			PixelHeight:            uint32(img.Height), // #nosec G115 -- validated positive
			PixelDepth:             1,
			LayerCount:             1,
			FaceCount:              uint32(img.Faces), // #nosec G115 -- 1 or 6
			SupercompressionScheme: c.Scheme(),
		},
		DFD:    dfd,
		Levels: levels,
	}, nil
}

// isBlockCompressed reports whether format is a BC, ETC2/EAC or ASTC block format.
func isBlockCompressed(format ktx2.VkFormat) bool {
	return format >= ktx2.FormatBC1RGBUNorm && format <= ktx2.FormatASTC12x12SRGB
}
