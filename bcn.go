// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package ktx2

import (
	"fmt"
	"image"

	"github.com/woozymasta/bcn"
)

// LevelsFromImage builds a mip chain from img and encodes every level with
// the given bcn format. Levels are returned largest first.
// maxMipMaps=0 means full chain.
func LevelsFromImage(img image.Image, format bcn.Format, maxMipMaps int) ([][]byte, error) {
	if format == bcn.FormatUnknown {
		return nil, ErrInvalidFormat
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mipMapCount, err := MipLevelCount(width, height)
	if err != nil {
		return nil, err
	}
	if maxMipMaps > 0 && maxMipMaps < mipMapCount {
		mipMapCount = maxMipMaps
	}

	mips := bcn.GenerateMipmaps(img, false)
	if len(mips) > mipMapCount {
		mips = mips[:mipMapCount]
	}
	if len(mips) == 0 {
		return nil, ErrEmptyMipmaps
	}

	payloads := make([][]byte, len(mips))
	for i, mip := range mips {
		data, _, _, err := bcn.EncodeImageWithOptions(mip, format, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: mipmap %d: %w", ErrEncodeMipmap, i, err)
		}

		expected := expectedDataLength(format, MipDimension(width, i), MipDimension(height, i))
		if len(data) != expected {
			return nil, fmt.Errorf("%w: mipmap %d: expected %d, got %d", ErrMipmapSizeMismatch, i, expected, len(data))
		}
		payloads[i] = data
	}

	return payloads, nil
}

// WriterFromImage prepares a 2D texture writer for img encoded as format and
// supercompressed with c (nil stores levels as is).
func WriterFromImage(img image.Image, format bcn.Format, maxMipMaps int, c Compressor) (*Writer, error) {
	vkFormat, typeSize, err := FormatFromBCn(format)
	if err != nil {
		return nil, err
	}

	dfd, err := BasicDFD(vkFormat)
	if err != nil {
		return nil, err
	}

	payloads, err := LevelsFromImage(img, format, maxMipMaps)
	if err != nil {
		return nil, err
	}

	if c == nil {
		c = NoCompressor{}
	}
	levels, err := CompressLevels(payloads, c)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, err := u32FromInt(bounds.Dx())
	if err != nil {
		return nil, err
	}
	height, err := u32FromInt(bounds.Dy())
	if err != nil {
		return nil, err
	}

	return &Writer{
		Header: Header{
			Format:                 vkFormat,
			TypeSize:               typeSize,
			PixelWidth:             width,
			PixelHeight:            height,
			PixelDepth:             1,
			LayerCount:             1,
			FaceCount:              1,
			SupercompressionScheme: c.Scheme(),
		},
		DFD:    dfd,
		Levels: levels,
	}, nil
}
