// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

package ktx2

import (
	"fmt"
	"strings"

	"github.com/woozymasta/bcn"
)

// VkFormat is a Vulkan VkFormat value as stored in the KTX2 header.
type VkFormat uint32

// Vulkan formats this package knows about. FormatUndefined marks a file
// with no format, as the container format defines.
const (
	FormatUndefined          VkFormat = 0
	FormatR8G8B8A8UNorm      VkFormat = 37
	FormatR8G8B8A8SRGB       VkFormat = 43
	FormatB8G8R8A8UNorm      VkFormat = 44
	FormatB8G8R8A8SRGB       VkFormat = 50
	FormatR16G16B16A16SFloat VkFormat = 97
	FormatE5B9G9R9UFloat     VkFormat = 123
	FormatBC1RGBUNorm        VkFormat = 131
	FormatBC1RGBSRGB         VkFormat = 132
	FormatBC1RGBAUNorm       VkFormat = 133
	FormatBC1RGBASRGB        VkFormat = 134
	FormatBC2UNorm           VkFormat = 135
	FormatBC2SRGB            VkFormat = 136
	FormatBC3UNorm           VkFormat = 137
	FormatBC3SRGB            VkFormat = 138
	FormatBC4UNorm           VkFormat = 139
	FormatBC5UNorm           VkFormat = 141
	FormatASTC12x12SRGB      VkFormat = 184
)

var formatNames = map[VkFormat]string{
	FormatUndefined:          "UNDEFINED",
	FormatR8G8B8A8UNorm:      "R8G8B8A8_UNORM",
	FormatR8G8B8A8SRGB:       "R8G8B8A8_SRGB",
	FormatB8G8R8A8UNorm:      "B8G8R8A8_UNORM",
	FormatB8G8R8A8SRGB:       "B8G8R8A8_SRGB",
	FormatR16G16B16A16SFloat: "R16G16B16A16_SFLOAT",
	FormatE5B9G9R9UFloat:     "E5B9G9R9_UFLOAT_PACK32",
	FormatBC1RGBUNorm:        "BC1_RGB_UNORM_BLOCK",
	FormatBC1RGBSRGB:         "BC1_RGB_SRGB_BLOCK",
	FormatBC1RGBAUNorm:       "BC1_RGBA_UNORM_BLOCK",
	FormatBC1RGBASRGB:        "BC1_RGBA_SRGB_BLOCK",
	FormatBC2UNorm:           "BC2_UNORM_BLOCK",
	FormatBC2SRGB:            "BC2_SRGB_BLOCK",
	FormatBC3UNorm:           "BC3_UNORM_BLOCK",
	FormatBC3SRGB:            "BC3_SRGB_BLOCK",
	FormatBC4UNorm:           "BC4_UNORM_BLOCK",
	FormatBC5UNorm:           "BC5_UNORM_BLOCK",
	FormatASTC12x12SRGB:      "ASTC_12x12_SRGB_BLOCK",
}

func (f VkFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}

	return fmt.Sprintf("VkFormat(%d)", uint32(f))
}

// SupercompressionScheme identifies the compressor applied to level data.
type SupercompressionScheme uint32

// Registered supercompression schemes.
const (
	SchemeNone      SupercompressionScheme = 0
	SchemeBasisLZ   SupercompressionScheme = 1
	SchemeZstandard SupercompressionScheme = 2
	SchemeZLIB      SupercompressionScheme = 3
)

func (s SupercompressionScheme) String() string {
	switch s {
	case SchemeNone:
		return "none"
	case SchemeBasisLZ:
		return "basislz"
	case SchemeZstandard:
		return "zstd"
	case SchemeZLIB:
		return "zlib"
	default:
		return fmt.Sprintf("scheme(%d)", uint32(s))
	}
}

// ParseScheme maps a scheme name (as printed by String) to its value.
func ParseScheme(name string) (SupercompressionScheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return SchemeNone, nil
	case "basislz":
		return SchemeBasisLZ, nil
	case "zstd", "zstandard":
		return SchemeZstandard, nil
	case "zlib":
		return SchemeZLIB, nil
	default:
		return SchemeNone, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}

// ParseBCnFormat maps a CLI format name to a bcn format.
func ParseBCnFormat(name string) (bcn.Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dxt1", "bc1":
		return bcn.FormatDXT1, nil
	case "dxt3", "bc2":
		return bcn.FormatDXT3, nil
	case "dxt5", "bc3":
		return bcn.FormatDXT5, nil
	case "bc4":
		return bcn.FormatBC4, nil
	case "bc5":
		return bcn.FormatBC5, nil
	case "rgba8":
		return bcn.FormatRGBA8, nil
	case "bgra8":
		return bcn.FormatBGRA8, nil
	default:
		return bcn.FormatUnknown, fmt.Errorf("%w: %q", ErrInvalidFormat, name)
	}
}

// FormatFromBCn returns the Vulkan format and component type size for a
// bcn encoder format.
func FormatFromBCn(format bcn.Format) (VkFormat, uint32, error) {
	switch format {
	case bcn.FormatDXT1:
		return FormatBC1RGBAUNorm, 1, nil
	case bcn.FormatDXT3:
		return FormatBC2UNorm, 1, nil
	case bcn.FormatDXT5:
		return FormatBC3UNorm, 1, nil
	case bcn.FormatBC4:
		return FormatBC4UNorm, 1, nil
	case bcn.FormatBC5:
		return FormatBC5UNorm, 1, nil
	case bcn.FormatRGBA8:
		return FormatR8G8B8A8UNorm, 1, nil
	case bcn.FormatBGRA8:
		return FormatB8G8R8A8UNorm, 1, nil
	default:
		return FormatUndefined, 0, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
}

// expectedDataLength returns the byte size of one mip level of a bcn format.
func expectedDataLength(format bcn.Format, width, height int) int {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	switch format {
	case bcn.FormatDXT1, bcn.FormatBC4:
		return blocksW * blocksH * 8
	case bcn.FormatDXT3, bcn.FormatDXT5, bcn.FormatBC5:
		return blocksW * blocksH * 16
	case bcn.FormatRGBA8, bcn.FormatBGRA8:
		return width * height * 4
	default:
		return -1
	}
}
