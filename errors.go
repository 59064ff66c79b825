// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package ktx2

import "errors"

var (
	// ErrSizeOverflow indicates a size or offset exceeds its on-disk field width.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrInvalidFormat indicates an unsupported BCn source format.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrUnsupportedFormat indicates no data format descriptor is known for a format.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrEmptyMipmaps indicates missing mipmap data.
	ErrEmptyMipmaps = errors.New("empty mipmaps")
	// ErrMipmapSizeMismatch indicates mipmap payload size mismatch.
	ErrMipmapSizeMismatch = errors.New("mipmap size mismatch")
	// ErrEncodeMipmap indicates mipmap block encoding failed.
	ErrEncodeMipmap = errors.New("encode mipmap failed")
	// ErrCompressLevel indicates level supercompression failed.
	ErrCompressLevel = errors.New("compress level failed")
	// ErrInvalidCompressorLevel indicates a compression level the compressor does not accept.
	ErrInvalidCompressorLevel = errors.New("invalid compressor level")
	// ErrUnknownScheme indicates an unknown supercompression scheme name.
	ErrUnknownScheme = errors.New("unknown supercompression scheme")
	// ErrUnsupportedScheme indicates a scheme with no compressor implementation.
	ErrUnsupportedScheme = errors.New("unsupported supercompression scheme")
	// ErrCreateFile indicates file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrCloseFile indicates flushing or closing the output file failed.
	ErrCloseFile = errors.New("close file failed")
	// ErrOpenFile indicates file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrWriteHeader indicates header write failed.
	ErrWriteHeader = errors.New("writing header failed")
	// ErrWriteLevelIndex indicates level index write failed.
	ErrWriteLevelIndex = errors.New("writing level index failed")
	// ErrWriteDFD indicates data format descriptor write failed.
	ErrWriteDFD = errors.New("writing data format descriptor failed")
	// ErrWriteLevelData indicates level payload write failed.
	ErrWriteLevelData = errors.New("writing level data failed")
	// ErrInvalidIdentifier indicates the file does not start with the KTX2 identifier.
	ErrInvalidIdentifier = errors.New("invalid KTX2 identifier")
	// ErrHeaderRead indicates header read failed.
	ErrHeaderRead = errors.New("reading header failed")
	// ErrInvalidLevelCount indicates an implausible level count in a header.
	ErrInvalidLevelCount = errors.New("invalid level count")
	// ErrLevelIndexRead indicates level index read failed.
	ErrLevelIndexRead = errors.New("reading level index failed")
	// ErrInvalidDFDOffset indicates the DFD does not follow the level index.
	ErrInvalidDFDOffset = errors.New("invalid data format descriptor offset")
	// ErrDFDRead indicates data format descriptor read failed.
	ErrDFDRead = errors.New("reading data format descriptor failed")
	// ErrLayoutMismatch indicates level byte ranges do not tile the payload region.
	ErrLayoutMismatch = errors.New("level layout mismatch")
)
