// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package ktx2

const maxUint32 = uint64(^uint32(0))

// u32FromInt converts an int to a uint32.
func u32FromInt(n int) (uint32, error) {
	if n < 0 || uint64(n) > maxUint32 {
		return 0, ErrSizeOverflow
	}

	// #nosec G115 -- bounds checked above.
	return uint32(n), nil
}

// u64FromInt converts a non-negative int to a uint64.
func u64FromInt(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrSizeOverflow
	}

	return uint64(n), nil
}
