// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package rgb9e5

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/x448/float16"
)

var (
	// ErrUnalignedBuffer indicates a byte buffer length is not a multiple of the element size.
	ErrUnalignedBuffer = errors.New("buffer length is not a multiple of element size")
	// ErrInvalidStride indicates a pixel stride smaller than three channels.
	ErrInvalidStride = errors.New("invalid pixel stride")
)

const (
	// HalfRGBAPixelSize is the byte size of one RGBA16F pixel.
	HalfRGBAPixelSize = 8
	// WordSize is the byte size of one packed E5B9G9R9 word.
	WordSize = 4
)

// HalfsFromBytes copies little-endian 16-bit values out of b.
func HalfsFromBytes(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes, element size 2", ErrUnalignedBuffer, len(b))
	}

	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[i*2:])
	}

	return out, nil
}

// WordsFromBytes copies little-endian 32-bit words out of b.
func WordsFromBytes(b []byte) ([]uint32, error) {
	if len(b)%WordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes, element size %d", ErrUnalignedBuffer, len(b), WordSize)
	}

	out := make([]uint32, len(b)/WordSize)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(b[i*WordSize:])
	}

	return out, nil
}

// BytesFromWords serializes words as little-endian bytes.
func BytesFromWords(words []uint32) []byte {
	out := make([]byte, 0, len(words)*WordSize)
	for _, w := range words {
		out = binary.LittleEndian.AppendUint32(out, w)
	}

	return out
}

// PackHalfRGBA packs a buffer of little-endian RGBA16F pixels into
// little-endian E5B9G9R9 words. Alpha is dropped.
func PackHalfRGBA(src []byte) ([]byte, error) {
	if len(src)%HalfRGBAPixelSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes, pixel size %d", ErrUnalignedBuffer, len(src), HalfRGBAPixelSize)
	}

	pixels := len(src) / HalfRGBAPixelSize
	out := make([]byte, 0, pixels*WordSize)
	for i := 0; i < pixels; i++ {
		p := src[i*HalfRGBAPixelSize:]
		r := float16.Frombits(binary.LittleEndian.Uint16(p[0:])).Float32()
		g := float16.Frombits(binary.LittleEndian.Uint16(p[2:])).Float32()
		b := float16.Frombits(binary.LittleEndian.Uint16(p[4:])).Float32()
		out = binary.LittleEndian.AppendUint32(out, Encode(r, g, b))
	}

	return out, nil
}

// PackFloatRGB packs interleaved float32 pixels with the given channel stride
// (3 for RGB, 4 for RGBA). Channels past the third are ignored.
func PackFloatRGB(src []float32, stride int) ([]uint32, error) {
	if stride < 3 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStride, stride)
	}
	if len(src)%stride != 0 {
		return nil, fmt.Errorf("%w: %d values, stride %d", ErrUnalignedBuffer, len(src), stride)
	}

	out := make([]uint32, len(src)/stride)
	for i := range out {
		p := src[i*stride:]
		out[i] = Encode(p[0], p[1], p[2])
	}

	return out, nil
}
