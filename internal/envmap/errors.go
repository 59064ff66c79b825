// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package envmap

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive image size.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrInvalidFaceCount indicates a face count other than 1 or 6.
	ErrInvalidFaceCount = errors.New("invalid face count")
	// ErrInvalidLevelCount indicates a level count outside the mip chain.
	ErrInvalidLevelCount = errors.New("invalid level count")
	// ErrDataSizeMismatch indicates pixel data does not match the described layout.
	ErrDataSizeMismatch = errors.New("pixel data size mismatch")
	// ErrLevelOutOfRange indicates a mip level or face outside the image.
	ErrLevelOutOfRange = errors.New("level or face out of range")
	// ErrCompressedSource indicates a block-compressed source image.
	ErrCompressedSource = errors.New("block-compressed source images are not supported")
	// ErrUnsupportedSource indicates a source pixel format other than RGBA16F.
	ErrUnsupportedSource = errors.New("unsupported source pixel format")
	// ErrReadSource indicates reading the source file failed.
	ErrReadSource = errors.New("read source failed")
	// ErrPackLevel indicates packing a level to RGB9E5 failed.
	ErrPackLevel = errors.New("pack level failed")
)
