// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"testing"

	"cogentcore.org/colormodel/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestLightenDarken(t *testing.T) {
	c := MustHSL(210, 50, 40)

	got := Lighten(c, 20).ToHSL()
	tolassert.Equal(t, 60, got.L, 0.05)
	tolassert.Equal(t, 210, got.H, 0.05)

	got = Darken(c, 20).ToHSL()
	tolassert.Equal(t, 20, got.L, 0.05)

	// clamps at the bounds instead of failing
	assert.True(t, Lighten(c, 200).ToHSL().IsWhite())
	assert.True(t, Darken(c, 200).ToHSL().IsBlack())
}

func TestHighlightSamelight(t *testing.T) {
	light := MustHSL(210, 50, 80)
	dark := MustHSL(210, 50, 20)

	tolassert.Equal(t, 70, Highlight(light, 10).ToHSL().L, 0.05)
	tolassert.Equal(t, 30, Highlight(dark, 10).ToHSL().L, 0.05)
	tolassert.Equal(t, 90, Samelight(light, 10).ToHSL().L, 0.05)
	tolassert.Equal(t, 10, Samelight(dark, 10).ToHSL().L, 0.05)
}

func TestSaturate(t *testing.T) {
	c := MustHSL(210, 40, 50)
	tolassert.Equal(t, 60, Saturate(c, 20).ToHSL().S, 0.05)
	tolassert.Equal(t, 20, Desaturate(c, 20).ToHSL().S, 0.05)
	tolassert.Equal(t, 100, Saturate(c, 90).ToHSL().S, 0.05)
	assert.True(t, Desaturate(c, 90).ToHSL().IsMonochromatic())
}

func TestRotateHue(t *testing.T) {
	c := MustHSL(30, 100, 50)
	tolassert.Equal(t, 90, RotateHue(c, 60).ToHSL().H, 0.05)
	// rotation wraps in both directions
	tolassert.Equal(t, 300, RotateHue(c, -90).ToHSL().H, 0.05)
	tolassert.Equal(t, 40, RotateHue(c, 370).ToHSL().H, 0.05)
}

func TestComplement(t *testing.T) {
	red := RGB{255, 0, 0, 1}
	got := Complement(red)
	tolassert.EqualSlice(t, []float32{0, 255, 255}, got.AsSlice(), 0.01)
	// the complement of the complement is the original
	tolassert.EqualSlice(t, red.AsSlice(), Complement(got).AsSlice(), 0.01)
}

func TestInvert(t *testing.T) {
	assert.Equal(t, RGB{225, 195, 165, 0.5}, Invert(RGB{30, 60, 90, 0.5}))
	assert.True(t, Invert(RGB{0, 0, 0, 1}).IsWhite())
}

func TestGrayscale(t *testing.T) {
	got := Grayscale(RGB{200, 100, 50, 1})
	assert.True(t, got.IsMonochromatic())
	// lightness is kept
	tolassert.Equal(t, RGB{200, 100, 50, 1}.ToHSL().L, got.ToHSL().L, 0.05)
}

func TestIsLight(t *testing.T) {
	assert.True(t, IsLight(RGB{255, 255, 255, 1}))
	assert.True(t, IsDark(RGB{0, 0, 0, 1}))
	assert.True(t, IsLight(MustHSL(0, 0, 60)))
	assert.True(t, IsDark(MustHSL(0, 0, 59)))

	assert.Equal(t, RGB{0, 0, 0, 1}, ContrastColor(RGB{255, 255, 153, 1}))
	assert.Equal(t, RGB{255, 255, 255, 1}, ContrastColor(RGB{0, 0, 128, 1}))
}

func TestMinHueDistance(t *testing.T) {
	tolassert.Equal(t, 20, MinHueDistance(10, 30))
	tolassert.Equal(t, -20, MinHueDistance(30, 10))
	tolassert.Equal(t, -20, MinHueDistance(10, 350))
	tolassert.Equal(t, 20, MinHueDistance(350, 10))
	// exactly opposite hues tie; the negative direction wins
	tolassert.Equal(t, -180, MinHueDistance(0, 180))
}
