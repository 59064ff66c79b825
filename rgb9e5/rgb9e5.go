// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ktx2

/*
Package rgb9e5 packs linear HDR RGB triples into the 32-bit shared exponent
format E5B9G9R9 (EXT_texture_shared_exponent) and unpacks them back.

Layout, bit 0 least significant:

	[0:9)   red mantissa
	[9:18)  green mantissa
	[18:27) blue mantissa
	[27:32) shared exponent, bias 15

Rounding follows the reference encoder from the extension, including the
exponent bump when the largest channel rounds up to 2^9.
*/
package rgb9e5

import "math"

const (
	// ExponentBits is the width of the shared exponent field.
	ExponentBits = 5
	// MantissaBits is the width of each channel mantissa field.
	MantissaBits = 9
	// ExpBias is the exponent bias.
	ExpBias = 15
	// MaxValidBiasedExp is the largest value of the exponent field.
	MaxValidBiasedExp = 31

	// MaxExp is the largest unbiased exponent.
	MaxExp = MaxValidBiasedExp - ExpBias
	// MantissaValues is the number of distinct mantissa values.
	MantissaValues = 1 << MantissaBits
	// MaxMantissa is the largest mantissa value.
	MaxMantissa = MantissaValues - 1

	// Max is the largest representable channel value (65408).
	Max float32 = float32(MaxMantissa) / MantissaValues * (1 << MaxExp)
	// Epsilon is the smallest representable positive channel value (2^-24).
	Epsilon float32 = (1.0 / MantissaValues) / (1 << ExpBias)
)

const (
	greenShift    = MantissaBits
	blueShift     = 2 * MantissaBits
	exponentShift = 3 * MantissaBits

	mantissaMask = 1<<MantissaBits - 1
	exponentMask = 1<<ExponentBits - 1
)

// Encode packs a linear RGB triple into an E5B9G9R9 word.
// Channels are clamped to [0, Max]; NaN encodes as zero.
func Encode(r, g, b float32) uint32 {
	rc := clamp(r)
	gc := clamp(g)
	bc := clamp(b)

	maxc := max(rc, gc, bc)
	exp := max(-ExpBias-1, floorLog2(maxc)) + 1 + ExpBias

	denom := float32(math.Ldexp(1, exp-ExpBias-MantissaBits))
	if quantize(maxc, denom) == MantissaValues {
		denom *= 2
		exp++
	}

	rm := quantize(rc, denom)
	gm := quantize(gc, denom)
	bm := quantize(bc, denom)

	// #nosec G115 -- exp is in [0, 31] and mantissas in [0, 511] after clamping.
	return uint32(exp)<<exponentShift | uint32(bm)<<blueShift | uint32(gm)<<greenShift | uint32(rm)
}

// EncodeRGB is Encode for a [3]float32 triple.
func EncodeRGB(rgb [3]float32) uint32 {
	return Encode(rgb[0], rgb[1], rgb[2])
}

// Decode unpacks an E5B9G9R9 word into a linear RGB triple.
func Decode(v uint32) (r, g, b float32) {
	exp := int(bitfield(v, exponentShift, ExponentBits)) - ExpBias - MantissaBits
	scale := float32(math.Ldexp(1, exp))

	r = float32(bitfield(v, 0, MantissaBits)) * scale
	g = float32(bitfield(v, greenShift, MantissaBits)) * scale
	b = float32(bitfield(v, blueShift, MantissaBits)) * scale

	return r, g, b
}

// DecodeRGB is Decode returning a [3]float32 triple.
func DecodeRGB(v uint32) [3]float32 {
	r, g, b := Decode(v)
	return [3]float32{r, g, b}
}

// Exponent returns the biased shared exponent field of v.
func Exponent(v uint32) int {
	return int(v >> exponentShift & exponentMask)
}

// Mantissas returns the red, green and blue mantissa fields of v.
func Mantissas(v uint32) (r, g, b uint32) {
	return v & mantissaMask, v >> greenShift & mantissaMask, v >> blueShift & mantissaMask
}

func clamp(v float32) float32 {
	switch {
	case !(v > 0): // negative, zero and NaN
		return 0
	case v > Max:
		return Max
	default:
		return v
	}
}

// floorLog2 returns floor(log2(v)) for v > 0 and a value below the minimum
// exponent for v == 0.
func floorLog2(v float32) int {
	if v == 0 {
		return -ExpBias - 1
	}

	_, e := math.Frexp(float64(v))
	return e - 1
}

// quantize applies round-half-up at the given step. The half is added in
// float32, so a value just below a half step can round up.
func quantize(v, denom float32) int {
	q := float32(float32(v/denom) + 0.5)
	return int(math.Floor(float64(q)))
}

func bitfield(v uint32, offset, bits uint) uint32 {
	return v >> offset & (1<<bits - 1)
}
