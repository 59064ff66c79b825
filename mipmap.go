// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package ktx2

// MipLevelCount returns the length of a full mip chain for the given base size.
func MipLevelCount(width, height int) (int, error) {
	count := 1
	w, err := u32FromInt(width)
	if err != nil {
		return 0, err
	}

	h, err := u32FromInt(height)
	if err != nil {
		return 0, err
	}

	for w > 1 || h > 1 {
		count++
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}

	return count, nil
}

// MipDimension returns the size of a mip level along one axis.
func MipDimension(base, level int) int {
	result := base >> level
	if result < 1 {
		return 1
	}

	return result
}
