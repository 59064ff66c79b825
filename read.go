// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package ktx2

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"
)

const (
	// maxLevelCount bounds the level table read from untrusted headers.
	maxLevelCount = 64
	// maxDFDLength bounds the descriptor read from untrusted headers.
	maxDFDLength = 1 << 20
)

// FileInfo is the structural part of a KTX2 file: everything but payloads.
type FileInfo struct {
	Header FileHeader
	Levels []LevelIndex
	DFD    []byte
}

// ReadInfo reads header, level index and DFD of a KTX2 file.
func ReadInfo(path string) (*FileInfo, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %q: %w", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %q: %w", ErrOpenFile, path, err)
	}

	info, err := ReadIndex(f)
	if err != nil {
		return nil, 0, err
	}

	return info, st.Size(), nil
}

// ReadIndex reads header, level index and DFD from r. Level payloads are
// not read.
func ReadIndex(r io.Reader) (*FileInfo, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeaderRead, err)
	}
	if header.Identifier != Identifier {
		return nil, ErrInvalidIdentifier
	}
	if header.LevelCount > maxLevelCount {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevelCount, header.LevelCount)
	}

	levels := make([]LevelIndex, header.LevelCount)
	for i := range levels {
		if err := binary.Read(r, binary.LittleEndian, &levels[i]); err != nil {
			return nil, fmt.Errorf("%w: level %d: %w", ErrLevelIndexRead, i, err)
		}
	}

	pos := uint64(HeaderLength + len(levels)*LevelIndexLength)
	dfdOffset := uint64(header.Index.DFDByteOffset)
	if header.Index.DFDByteLength > 0 && dfdOffset < pos {
		return nil, fmt.Errorf("%w: %d before %d", ErrInvalidDFDOffset, dfdOffset, pos)
	}
	if header.Index.DFDByteLength > maxDFDLength {
		return nil, fmt.Errorf("%w: length %d", ErrDFDRead, header.Index.DFDByteLength)
	}

	var dfd []byte
	if header.Index.DFDByteLength > 0 {
		// #nosec G115 -- dfdOffset >= pos checked above.
		if _, err := io.CopyN(io.Discard, r, int64(dfdOffset-pos)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDFDRead, err)
		}

		dfd = make([]byte, header.Index.DFDByteLength)
		if _, err := io.ReadFull(r, dfd); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDFDRead, err)
		}
	}

	return &FileInfo{Header: header, Levels: levels, DFD: dfd}, nil
}

// PayloadOffset returns the first byte after the DFD.
func (fi *FileInfo) PayloadOffset() uint64 {
	return uint64(fi.Header.Index.DFDByteOffset) + uint64(fi.Header.Index.DFDByteLength)
}

// CheckLayout verifies that level byte ranges are disjoint and exactly
// cover the region from the end of the DFD to fileSize.
func (fi *FileInfo) CheckLayout(fileSize int64) error {
	ranges := make([]LevelIndex, len(fi.Levels))
	copy(ranges, fi.Levels)
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].ByteOffset < ranges[j].ByteOffset })

	next := fi.PayloadOffset()
	for _, l := range ranges {
		if l.ByteOffset != next {
			return fmt.Errorf("%w: level at %d, expected %d", ErrLayoutMismatch, l.ByteOffset, next)
		}
		next = l.End()
	}

	if fileSize < 0 || next != uint64(fileSize) {
		return fmt.Errorf("%w: levels end at %d, file size %d", ErrLayoutMismatch, next, fileSize)
	}

	return nil
}
