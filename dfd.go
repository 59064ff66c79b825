// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package ktx2

import (
	"encoding/binary"
	"fmt"
)

// Khronos Data Format basic descriptor block constants.
const (
	dfdVersion13 = 2

	dfdBlockHeaderSize = 24
	dfdSampleSize      = 16

	colorModelRGBSDA = 1
	colorModelBC1A   = 128
	colorModelBC2    = 129
	colorModelBC3    = 130
	colorModelBC4    = 131
	colorModelBC5    = 132

	primariesBT709 = 1

	transferLinear = 1
	transferSRGB   = 2

	channelRed   = 0
	channelGreen = 1
	channelBlue  = 2
	channelAlpha = 15

	qualifierLinear   = 0x10
	qualifierExponent = 0x20
	qualifierSigned   = 0x40
	qualifierFloat    = 0x80
)

type dfdSample struct {
	bitOffset uint16
	bitLength uint8
	channel   uint8
	lower     uint32
	upper     uint32
}

type dfdBlock struct {
	colorModel uint8
	transfer   uint8
	// texel block size minus one per axis
	blockDim   [4]uint8
	bytesPlane uint8
	samples    []dfdSample
}

// BasicDFD returns a data format descriptor (total size word followed by a
// single basic descriptor block) for format.
func BasicDFD(format VkFormat) ([]byte, error) {
	block, ok := basicBlock(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return block.marshal(), nil
}

func basicBlock(format VkFormat) (dfdBlock, bool) {
	const unorm32 = 0xFFFFFFFF

	switch format {
	case FormatE5B9G9R9UFloat:
		const mantissaUpper = 8448
		return dfdBlock{
			colorModel: colorModelRGBSDA,
			transfer:   transferLinear,
			bytesPlane: 4,
			samples: []dfdSample{
				{bitOffset: 0, bitLength: 9, channel: channelRed, upper: mantissaUpper},
				{bitOffset: 27, bitLength: 5, channel: channelRed | qualifierExponent, lower: 15, upper: 31},
				{bitOffset: 9, bitLength: 9, channel: channelGreen, upper: mantissaUpper},
				{bitOffset: 27, bitLength: 5, channel: channelGreen | qualifierExponent, lower: 15, upper: 31},
				{bitOffset: 18, bitLength: 9, channel: channelBlue, upper: mantissaUpper},
				{bitOffset: 27, bitLength: 5, channel: channelBlue | qualifierExponent, lower: 15, upper: 31},
			},
		}, true

	case FormatR16G16B16A16SFloat:
		const minusOne, one = 0xBF800000, 0x3F800000
		q := uint8(qualifierFloat | qualifierSigned)
		return dfdBlock{
			colorModel: colorModelRGBSDA,
			transfer:   transferLinear,
			bytesPlane: 8,
			samples: []dfdSample{
				{bitOffset: 0, bitLength: 16, channel: channelRed | q, lower: minusOne, upper: one},
				{bitOffset: 16, bitLength: 16, channel: channelGreen | q, lower: minusOne, upper: one},
				{bitOffset: 32, bitLength: 16, channel: channelBlue | q, lower: minusOne, upper: one},
				{bitOffset: 48, bitLength: 16, channel: channelAlpha | q, lower: minusOne, upper: one},
			},
		}, true

	case FormatR8G8B8A8UNorm, FormatR8G8B8A8SRGB:
		return rgba8Block(format == FormatR8G8B8A8SRGB, [3]uint8{channelRed, channelGreen, channelBlue}), true
	case FormatB8G8R8A8UNorm, FormatB8G8R8A8SRGB:
		return rgba8Block(format == FormatB8G8R8A8SRGB, [3]uint8{channelBlue, channelGreen, channelRed}), true

	case FormatBC1RGBUNorm, FormatBC1RGBSRGB:
		return bcBlock(colorModelBC1A, format == FormatBC1RGBSRGB, 8, dfdSample{bitLength: 64, upper: unorm32}), true
	case FormatBC1RGBAUNorm, FormatBC1RGBASRGB:
		// BC1A channel 1 marks alpha-present blocks.
		return bcBlock(colorModelBC1A, format == FormatBC1RGBASRGB, 8, dfdSample{bitLength: 64, channel: 1, upper: unorm32}), true
	case FormatBC2UNorm, FormatBC2SRGB:
		return bcBlock(colorModelBC2, format == FormatBC2SRGB, 16,
			dfdSample{bitLength: 64, channel: channelAlpha, upper: unorm32},
			dfdSample{bitOffset: 64, bitLength: 64, upper: unorm32},
		), true
	case FormatBC3UNorm, FormatBC3SRGB:
		return bcBlock(colorModelBC3, format == FormatBC3SRGB, 16,
			dfdSample{bitLength: 64, channel: channelAlpha, upper: unorm32},
			dfdSample{bitOffset: 64, bitLength: 64, upper: unorm32},
		), true
	case FormatBC4UNorm:
		return bcBlock(colorModelBC4, false, 8, dfdSample{bitLength: 64, upper: unorm32}), true
	case FormatBC5UNorm:
		return bcBlock(colorModelBC5, false, 16,
			dfdSample{bitLength: 64, channel: channelRed, upper: unorm32},
			dfdSample{bitOffset: 64, bitLength: 64, channel: channelGreen, upper: unorm32},
		), true
	}

	return dfdBlock{}, false
}

func rgba8Block(srgb bool, order [3]uint8) dfdBlock {
	b := dfdBlock{
		colorModel: colorModelRGBSDA,
		transfer:   transferLinear,
		bytesPlane: 4,
	}
	for i, ch := range order {
		b.samples = append(b.samples, dfdSample{bitOffset: uint16(i * 8), bitLength: 8, channel: ch, upper: 255})
	}
	b.samples = append(b.samples, dfdSample{bitOffset: 24, bitLength: 8, channel: channelAlpha, upper: 255})

	if srgb {
		b.transfer = transferSRGB
		b.samples[3].channel |= qualifierLinear
	}

	return b
}

func bcBlock(model uint8, srgb bool, bytesPlane uint8, samples ...dfdSample) dfdBlock {
	b := dfdBlock{
		colorModel: model,
		transfer:   transferLinear,
		blockDim:   [4]uint8{3, 3, 0, 0},
		bytesPlane: bytesPlane,
		samples:    samples,
	}

	if srgb {
		b.transfer = transferSRGB
		for i := range b.samples {
			if b.samples[i].channel == channelAlpha {
				b.samples[i].channel |= qualifierLinear
			}
		}
	}

	return b
}

func (b dfdBlock) marshal() []byte {
	blockSize := dfdBlockHeaderSize + len(b.samples)*dfdSampleSize
	out := make([]byte, 0, 4+blockSize)

	// #nosec G115 -- at most six samples.
	out = binary.LittleEndian.AppendUint32(out, uint32(4+blockSize))
	// vendorId 0 (Khronos), descriptorType 0 (basic)
	out = binary.LittleEndian.AppendUint32(out, 0)
	// #nosec G115 -- at most six samples.
	out = binary.LittleEndian.AppendUint32(out, dfdVersion13|uint32(blockSize)<<16)
	out = append(out, b.colorModel, primariesBT709, b.transfer, 0)
	out = append(out, b.blockDim[:]...)
	out = append(out, b.bytesPlane, 0, 0, 0, 0, 0, 0, 0)

	for _, s := range b.samples {
		out = binary.LittleEndian.AppendUint16(out, s.bitOffset)
		out = append(out, s.bitLength-1, s.channel)
		out = append(out, 0, 0, 0, 0) // sample position
		out = binary.LittleEndian.AppendUint32(out, s.lower)
		out = binary.LittleEndian.AppendUint32(out, s.upper)
	}

	return out
}
