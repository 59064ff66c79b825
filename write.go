// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package ktx2

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Level is one mip level's payload, possibly supercompressed by the caller.
type Level struct {
	// UncompressedLength is the payload size before supercompression.
	UncompressedLength int
	Data               []byte
}

// Writer emits a KTX2 file from a header, a data format descriptor and a
// list of levels ordered from the largest (level 0) to the smallest.
//
// The level index lists levels in that order, but payloads are stored
// smallest first so a prefix of the file already holds a complete low
// resolution chain. Index offsets are authoritative for locating levels.
type Writer struct {
	Header Header
	// DFD is the data format descriptor, written verbatim.
	DFD    []byte
	Levels []Level
}

// Layout computes the file header and the level index without writing
// anything. Entries are returned in level order.
func (w *Writer) Layout() (FileHeader, []LevelIndex, error) {
	levelCount, err := u32FromInt(len(w.Levels))
	if err != nil {
		return FileHeader{}, nil, fmt.Errorf("%w: level count %d", err, len(w.Levels))
	}

	dfdOffset, err := u32FromInt(HeaderLength + len(w.Levels)*LevelIndexLength)
	if err != nil {
		return FileHeader{}, nil, fmt.Errorf("%w: dfd offset", err)
	}
	dfdLength, err := u32FromInt(len(w.DFD))
	if err != nil {
		return FileHeader{}, nil, fmt.Errorf("%w: dfd length %d", err, len(w.DFD))
	}

	header := w.Header.fileHeader(levelCount, Index{
		DFDByteOffset: dfdOffset,
		DFDByteLength: dfdLength,
	})

	// Payloads follow the DFD, smallest level first.
	offset := uint64(dfdOffset) + uint64(dfdLength)
	index := make([]LevelIndex, len(w.Levels))
	for i := len(w.Levels) - 1; i >= 0; i-- {
		level := &w.Levels[i]
		uncompressed, err := u64FromInt(level.UncompressedLength)
		if err != nil {
			return FileHeader{}, nil, fmt.Errorf("%w: level %d uncompressed length %d", err, i, level.UncompressedLength)
		}

		index[i] = LevelIndex{
			ByteOffset:             offset,
			ByteLength:             uint64(len(level.Data)),
			UncompressedByteLength: uncompressed,
		}
		offset += uint64(len(level.Data))
	}

	return header, index, nil
}

// WriteTo writes the whole file to dst. The first write error aborts the
// write; nothing already written is undone.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	header, index, err := w.Layout()
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: dst}

	if err := binary.Write(cw, binary.LittleEndian, &header); err != nil {
		return cw.n, fmt.Errorf("%w: %w", ErrWriteHeader, err)
	}

	for i := range index {
		if err := binary.Write(cw, binary.LittleEndian, &index[i]); err != nil {
			return cw.n, fmt.Errorf("%w: level %d: %w", ErrWriteLevelIndex, i, err)
		}
	}

	if _, err := cw.Write(w.DFD); err != nil {
		return cw.n, fmt.Errorf("%w: %w", ErrWriteDFD, err)
	}

	for i := len(w.Levels) - 1; i >= 0; i-- {
		if _, err := cw.Write(w.Levels[i].Data); err != nil {
			return cw.n, fmt.Errorf("%w: level %d: %w", ErrWriteLevelData, i, err)
		}
	}

	return cw.n, nil
}

// WriteFile writes the file produced by w to path. A partially written file
// is left in place on error.
func WriteFile(path string, w *Writer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrCreateFile, path, err)
	}

	if _, err := w.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrCloseFile, path, err)
	}

	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
