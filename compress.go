// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package ktx2

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Compressor supercompresses level payloads. Implementations must be safe
// for concurrent use.
type Compressor interface {
	Compress(src []byte) ([]byte, error)
	// Scheme is recorded in the file header.
	Scheme() SupercompressionScheme
}

// NoCompressor stores level data as is.
type NoCompressor struct{}

// Compress returns src unchanged.
func (NoCompressor) Compress(src []byte) ([]byte, error) { return src, nil }

// Scheme returns SchemeNone.
func (NoCompressor) Scheme() SupercompressionScheme { return SchemeNone }

// ZstdCompressor compresses each level into one Zstandard frame.
type ZstdCompressor struct {
	level zstd.EncoderLevel
	pool  sync.Pool
}

// NewZstdCompressor returns a Zstandard compressor at the given level.
// Levels outside zstd.SpeedFastest..zstd.SpeedBestCompression are rejected.
func NewZstdCompressor(level zstd.EncoderLevel) (*ZstdCompressor, error) {
	enc, err := newZstdEncoder(level)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd level %d: %w", ErrInvalidCompressorLevel, level, err)
	}

	c := &ZstdCompressor{level: level}
	c.pool.New = func() any {
		enc, err := newZstdEncoder(c.level)
		if err != nil {
			return nil
		}
		return enc
	}
	c.pool.Put(enc)

	return c, nil
}

func newZstdEncoder(level zstd.EncoderLevel) (*zstd.Encoder, error) {
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(level), zstd.WithEncoderConcurrency(1))
}

// Compress encodes src as a single Zstandard frame.
func (c *ZstdCompressor) Compress(src []byte) ([]byte, error) {
	enc, ok := c.pool.Get().(*zstd.Encoder)
	if !ok || enc == nil {
		return nil, fmt.Errorf("%w: zstd level %d", ErrInvalidCompressorLevel, c.level)
	}
	out := enc.EncodeAll(src, make([]byte, 0, len(src)/2))
	c.pool.Put(enc)

	return out, nil
}

// Scheme returns SchemeZstandard.
func (c *ZstdCompressor) Scheme() SupercompressionScheme { return SchemeZstandard }

// ZlibCompressor compresses each level into one zlib stream.
type ZlibCompressor struct {
	Level int
}

// Compress encodes src as a zlib stream.
func (c ZlibCompressor) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := zlib.NewWriterLevel(&buf, c.Level)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(src); err != nil {
		_ = zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Scheme returns SchemeZLIB.
func (ZlibCompressor) Scheme() SupercompressionScheme { return SchemeZLIB }

// NewCompressor returns the default compressor for scheme.
func NewCompressor(scheme SupercompressionScheme) (Compressor, error) {
	switch scheme {
	case SchemeNone:
		return NoCompressor{}, nil
	case SchemeZstandard:
		c, err := NewZstdCompressor(zstd.SpeedDefault)
		if err != nil {
			return nil, err
		}
		return c, nil
	case SchemeZLIB:
		return ZlibCompressor{Level: zlib.DefaultCompression}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
}

// CompressLevels supercompresses raw level payloads, largest level first.
// A nil compressor stores data as is.
func CompressLevels(payloads [][]byte, c Compressor) ([]Level, error) {
	if c == nil {
		c = NoCompressor{}
	}

	levels := make([]Level, len(payloads))
	for i, p := range payloads {
		data, err := c.Compress(p)
		if err != nil {
			return nil, fmt.Errorf("%w: level %d: %w", ErrCompressLevel, i, err)
		}

		levels[i] = Level{UncompressedLength: len(p), Data: data}
	}

	return levels, nil
}
