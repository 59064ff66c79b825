// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package ktx2

const (
	// HeaderLength is the byte size of the fixed header including the index sub-block.
	HeaderLength = 80
	// LevelIndexLength is the byte size of one level index entry.
	LevelIndexLength = 24
)

// Identifier is the 12-byte file identifier every KTX2 file starts with.
var Identifier = [12]byte{0xAB, 'K', 'T', 'X', ' ', '2', '0', 0xBB, '\r', '\n', 0x1A, '\n'}

// Header describes the texture being written. It is supplied by the caller
// and not validated.
type Header struct {
	Format                 VkFormat
	TypeSize               uint32
	PixelWidth             uint32
	PixelHeight            uint32
	PixelDepth             uint32
	LayerCount             uint32
	FaceCount              uint32
	SupercompressionScheme SupercompressionScheme
}

// Index is the index sub-block of the file header. Key/value data and
// supercompression global data are never written, so their fields stay zero.
type Index struct {
	DFDByteOffset uint32
	DFDByteLength uint32
	KVDByteOffset uint32
	KVDByteLength uint32
	SGDByteOffset uint64
	SGDByteLength uint64
}

// FileHeader is the on-disk header, field for field.
type FileHeader struct {
	Identifier             [12]byte
	Format                 VkFormat
	TypeSize               uint32
	PixelWidth             uint32
	PixelHeight            uint32
	PixelDepth             uint32
	LayerCount             uint32
	FaceCount              uint32
	LevelCount             uint32
	SupercompressionScheme SupercompressionScheme
	Index                  Index
}

// LevelIndex locates one mip level's payload in the file.
type LevelIndex struct {
	ByteOffset             uint64
	ByteLength             uint64
	UncompressedByteLength uint64
}

// End returns the offset one past the level's last byte.
func (l LevelIndex) End() uint64 {
	return l.ByteOffset + l.ByteLength
}

// fileHeader builds the on-disk header for the given level count and DFD
// placement. TypeSize is forced to 1 for supercompressed files, whose level
// bytes have no component granularity.
func (h *Header) fileHeader(levelCount uint32, index Index) FileHeader {
	typeSize := h.TypeSize
	if h.SupercompressionScheme != SchemeNone {
		typeSize = 1
	}

	return FileHeader{
		Identifier:             Identifier,
		Format:                 h.Format,
		TypeSize:               typeSize,
		PixelWidth:             h.PixelWidth,
		PixelHeight:            h.PixelHeight,
		PixelDepth:             h.PixelDepth,
		LayerCount:             h.LayerCount,
		FaceCount:              h.FaceCount,
		LevelCount:             levelCount,
		SupercompressionScheme: h.SupercompressionScheme,
		Index:                  index,
	}
}
