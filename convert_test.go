// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"testing"

	"cogentcore.org/colormodel/tolassert"
	"github.com/stretchr/testify/assert"
)

// Reference values computed independently at float64 precision.
// Tolerances absorb the float32 arithmetic of the conversion paths;
// hues that pass through acos get a wider one.

func TestRGBToCMYK(t *testing.T) {
	c := RGB{30, 60, 90, 1}.ToCMYK()
	tolassert.EqualSlice(t, []float32{66.66667, 33.33333, 0, 64.70588}, c.AsSlice(), 0.01)

	// pure black forces the k-channel form
	assert.Equal(t, CMYK{0, 0, 0, 100, 1}, RGB{0, 0, 0, 1}.ToCMYK())
	assert.True(t, RGB{255, 255, 255, 1}.ToCMYK().IsWhite())
}

func TestCMYKToRGB(t *testing.T) {
	assert.True(t, CMYK{0, 0, 0, 100, 1}.ToRGB().IsBlack())
	assert.True(t, CMYK{0, 0, 0, 0, 1}.ToRGB().IsWhite())

	c := CMYK{66.66667, 33.33333, 0, 64.70588, 1}.ToRGB()
	tolassert.EqualSlice(t, []float32{30, 60, 90}, c.AsSlice(), 0.01)
}

func TestRGBToHSB(t *testing.T) {
	tolassert.EqualSlice(t, []float32{210, 66.66667, 35.29412}, RGB{30, 60, 90, 1}.ToHSB().AsSlice(), 0.01)
	tolassert.EqualSlice(t, []float32{140.74468, 94, 78.43137}, RGB{12, 200, 77, 1}.ToHSB().AsSlice(), 0.01)
	tolassert.EqualSlice(t, []float32{330, 93.33333, 94.11765}, RGB{240, 16, 128, 1}.ToHSB().AsSlice(), 0.01)
	// grays collapse hue and saturation
	tolassert.EqualSlice(t, []float32{0, 0, 50.19608}, RGB{128, 128, 128, 1}.ToHSB().AsSlice(), 0.01)
}

func TestRGBToHSL(t *testing.T) {
	tolassert.EqualSlice(t, []float32{210, 50, 23.52941}, RGB{30, 60, 90, 1}.ToHSL().AsSlice(), 0.01)
	tolassert.EqualSlice(t, []float32{0, 0, 50.19608}, RGB{128, 128, 128, 1}.ToHSL().AsSlice(), 0.01)
	assert.True(t, RGB{255, 255, 255, 1}.ToHSL().IsWhite())
	assert.True(t, RGB{0, 0, 0, 1}.ToHSL().IsBlack())
}

func TestRGBToHSI(t *testing.T) {
	tolassert.EqualSlice(t, []float32{210, 50, 23.52941}, RGB{30, 60, 90, 1}.ToHSI().AsSlice(), 0.05)
	tolassert.EqualSlice(t, []float32{19.10661, 57.14286, 45.75163}, RGB{200, 100, 50, 1}.ToHSI().AsSlice(), 0.05)
	tolassert.EqualSlice(t, []float32{0, 0, 50.19608}, RGB{128, 128, 128, 1}.ToHSI().AsSlice(), 0.01)

	// white is the zero-saturation full-intensity point
	c := RGB{255, 255, 255, 1}.ToHSI()
	assert.Equal(t, HSI{0, 0, 100, 1}, c)
	assert.True(t, c.IsWhite())
	assert.True(t, RGB{0, 0, 0, 1}.ToHSI().IsBlack())
}

func TestRGBToHSP(t *testing.T) {
	tolassert.EqualSlice(t, []float32{210, 66.66667, 22.54714}, RGB{30, 60, 90, 1}.ToHSP().AsSlice(), 0.01)
	tolassert.EqualSlice(t, []float32{0, 0, 50.19608}, RGB{128, 128, 128, 1}.ToHSP().AsSlice(), 0.01)

	// the red sector formula lands on hue 1 - 0/6 = 1, which wraps to 0
	c := RGB{255, 0, 0, 1}.ToHSP()
	tolassert.EqualSlice(t, []float32{0, 100, 54.68089}, c.AsSlice(), 0.01)

	assert.True(t, RGB{255, 255, 255, 1}.ToHSP().IsWhite())
	assert.True(t, RGB{0, 0, 0, 1}.ToHSP().IsBlack())
}

func TestRGBToXYZ(t *testing.T) {
	tolassert.EqualSlice(t, []float32{4.42346, 4.24554, 8.66906}, RGB{30, 60, 90, 1}.ToXYZ().AsSlice(), 0.01)
	tolassert.EqualSlice(t, []float32{24.51198, 41.91961, 11.75912}, RGB{12, 200, 77, 1}.ToXYZ().AsSlice(), 0.01)
	tolassert.EqualSlice(t, []float32{45.65703, 21.26729, 1.63045}, RGB{255, 0, 0, 1}.ToXYZ().AsSlice(), 0.01)

	// white maps to the reference white, not (100, 100, 100)
	tolassert.EqualSlice(t, []float32{105.21266, 100, 91.82250}, RGB{255, 255, 255, 1}.ToXYZ().AsSlice(), 0.01)
	assert.True(t, RGB{0, 0, 0, 1}.ToXYZ().IsBlack())
}

func TestXYZToRGB(t *testing.T) {
	c := XYZ{105.21266, 100, 91.82250, 1}.ToRGB()
	tolassert.EqualSlice(t, []float32{255, 255, 255}, c.AsSlice(), 0.01)

	c = XYZ{4.42346, 4.24554, 8.66906, 1}.ToRGB()
	tolassert.EqualSlice(t, []float32{30, 60, 90}, c.AsSlice(), 0.05)

	// out-of-gamut coordinates project onto the cube
	c = XYZ{200, 5, 5, 1}.ToRGB()
	assert.GreaterOrEqual(t, c.R, float32(0))
	assert.LessOrEqual(t, c.R, float32(255))
	assert.GreaterOrEqual(t, c.G, float32(0))
	assert.LessOrEqual(t, c.B, float32(255))
}

func TestRGBToLAB(t *testing.T) {
	tolassert.EqualSlice(t, []float32{24.46713, -0.56657, -21.29816}, RGB{30, 60, 90, 1}.ToLAB().AsSlice(), 0.01)
	tolassert.EqualSlice(t, []float32{53.62954, 36.30579, 45.37952}, RGB{200, 100, 50, 1}.ToLAB().AsSlice(), 0.01)
	tolassert.EqualSlice(t, []float32{70.81546, -66.54286, 48.87145}, RGB{12, 200, 77, 1}.ToLAB().AsSlice(), 0.01)
	tolassert.EqualSlice(t, []float32{52.35352, 80.13054, 0.03150}, RGB{240, 16, 128, 1}.ToLAB().AsSlice(), 0.01)
	tolassert.EqualSlice(t, []float32{53.24079, 80.09247, 67.20319}, RGB{255, 0, 0, 1}.ToLAB().AsSlice(), 0.01)

	// grays sit on the L axis
	tolassert.EqualSlice(t, []float32{53.58501, 0, 0}, RGB{128, 128, 128, 1}.ToLAB().AsSlice(), 0.01)

	white := RGB{255, 255, 255, 1}.ToLAB()
	tolassert.EqualSlice(t, []float32{100, 0, 0}, white.AsSlice(), 0.001)
	assert.True(t, RGB{0, 0, 0, 1}.ToLAB().IsBlack())
}

func TestLABToRGB(t *testing.T) {
	c := LAB{24.46713, -0.56657, -21.29816, 1}.ToRGB()
	tolassert.EqualSlice(t, []float32{30, 60, 90}, c.AsSlice(), 0.05)

	c = LAB{100, 0, 0, 1}.ToRGB()
	tolassert.EqualSlice(t, []float32{255, 255, 255}, c.AsSlice(), 0.01)

	// wildly out-of-gamut chroma still lands inside the cube
	c = LAB{50, 120, -120, 1}.ToRGB()
	for _, v := range c.AsSlice() {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(255))
	}
}

func TestConversionPreservesAlpha(t *testing.T) {
	c := RGB{30, 60, 90, 0.4}
	assert.Equal(t, float32(0.4), c.ToCMYK().Alpha)
	assert.Equal(t, float32(0.4), c.ToHSB().Alpha)
	assert.Equal(t, float32(0.4), c.ToHSI().Alpha)
	assert.Equal(t, float32(0.4), c.ToHSL().Alpha)
	assert.Equal(t, float32(0.4), c.ToHSP().Alpha)
	assert.Equal(t, float32(0.4), c.ToXYZ().Alpha)
	assert.Equal(t, float32(0.4), c.ToLAB().Alpha)
	assert.Equal(t, float32(0.4), c.ToLAB().ToXYZ().ToRGB().Alpha)
}
