// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCMYK(t *testing.T) {
	c, err := NewCMYK(10, 20, 30, 40)
	assert.NoError(t, err)
	assert.Equal(t, CMYK{10, 20, 30, 40, 1}, c)

	_, err = NewCMYK(101, 0, 0, 0)
	assert.Error(t, err)
	_, err = NewCMYK(0, -1, 0, 0)
	assert.Error(t, err)
	assert.Panics(t, func() { MustCMYK(0, 0, 0, 101) })

	assert.Equal(t, CMYK{99, 20, 30, 40, 1}, c.WithCyan(99))
	assert.Equal(t, CMYK{10, 99, 30, 40, 1}, c.WithMagenta(99))
	assert.Equal(t, CMYK{10, 20, 99, 40, 1}, c.WithYellow(99))
	assert.Equal(t, CMYK{10, 20, 30, 99, 1}, c.WithBlack(99))
	assert.Panics(t, func() { c.WithBlack(-1) })

	assert.True(t, c.Equal(c.WithAlpha(0.5)))
	assert.True(t, CMYK{50, 50, 50, 100, 1}.IsBlack())
	assert.True(t, CMYK{0, 0, 0, 0, 0.5}.IsWhite())
	assert.Equal(t, "cmyk(10, 20, 30, 40)", c.String())
}

func TestNewHSB(t *testing.T) {
	c, err := NewHSB(210, 50, 60)
	assert.NoError(t, err)
	assert.Equal(t, HSB{210, 50, 60, 1}, c)

	// 360 is a legal hue on input
	_, err = NewHSB(360, 0, 0)
	assert.NoError(t, err)
	_, err = NewHSB(361, 0, 0)
	assert.Error(t, err)
	_, err = NewHSB(0, 101, 0)
	assert.Error(t, err)
	assert.Panics(t, func() { MustHSB(-1, 0, 0) })

	assert.Equal(t, HSB{90, 50, 60, 1}, c.WithHue(90))
	assert.Equal(t, HSB{210, 99, 60, 1}, c.WithSaturation(99))
	assert.Equal(t, HSB{210, 50, 99, 1}, c.WithBrightness(99))
	assert.Panics(t, func() { c.WithBrightness(101) })

	assert.True(t, HSB{123, 0, 100, 1}.IsWhite())
	assert.True(t, HSB{123, 50, 0, 1}.IsBlack())
	assert.True(t, HSB{123, 0, 40, 1}.IsMonochromatic())
	assert.Equal(t, "hsb(210, 50, 60)", c.String())
}

func TestNewHSI(t *testing.T) {
	c, err := NewHSI(210, 50, 60)
	assert.NoError(t, err)
	assert.Equal(t, HSI{210, 50, 60, 1}, c)

	_, err = NewHSI(400, 0, 0)
	assert.Error(t, err)
	assert.Panics(t, func() { MustHSI(0, 0, 101) })

	assert.Equal(t, HSI{210, 50, 99, 1}, c.WithIntensity(99))
	assert.True(t, HSI{50, 0, 100, 1}.IsWhite())
	assert.True(t, HSI{50, 50, 0, 1}.IsBlack())
	assert.Equal(t, "hsi(210, 50, 60)", c.String())
}

func TestNewHSL(t *testing.T) {
	c, err := NewHSL(210, 50, 60)
	assert.NoError(t, err)
	assert.Equal(t, HSL{210, 50, 60, 1}, c)

	_, err = NewHSL(0, 0, 100.5)
	assert.Error(t, err)
	assert.Panics(t, func() { MustHSL(0, -1, 0) })

	assert.Equal(t, HSL{210, 50, 99, 1}, c.WithLightness(99))
	// lightness alone decides white and black
	assert.True(t, HSL{50, 70, 100, 1}.IsWhite())
	assert.True(t, HSL{50, 70, 0, 1}.IsBlack())
	assert.Equal(t, "hsl(210, 50, 60)", c.String())
}

func TestNewHSP(t *testing.T) {
	c, err := NewHSP(210, 50, 60)
	assert.NoError(t, err)
	assert.Equal(t, HSP{210, 50, 60, 1}, c)

	_, err = NewHSP(0, 0, -0.5)
	assert.Error(t, err)
	assert.Panics(t, func() { MustHSP(0, 101, 0) })

	assert.Equal(t, HSP{210, 50, 99, 1}, c.WithPerceivedBrightness(99))
	assert.True(t, HSP{50, 0, 100, 1}.IsWhite())
	assert.True(t, HSP{50, 50, 0, 1}.IsBlack())
	assert.Equal(t, "hsp(210, 50, 60)", c.String())
}

func TestNewLAB(t *testing.T) {
	c, err := NewLAB(50, -20, 30)
	assert.NoError(t, err)
	assert.Equal(t, LAB{50, -20, 30, 1}, c)

	// a and b are unbounded; only L has a range
	_, err = NewLAB(50, -300, 300)
	assert.NoError(t, err)
	_, err = NewLAB(101, 0, 0)
	assert.Error(t, err)
	_, err = NewLAB(-1, 0, 0)
	assert.Error(t, err)
	assert.Panics(t, func() { MustLAB(200, 0, 0) })

	assert.Equal(t, LAB{99, -20, 30, 1}, c.WithL(99))
	assert.Equal(t, LAB{50, 99, 30, 1}, c.WithA(99))
	assert.Equal(t, LAB{50, -20, 99, 1}, c.WithB(99))

	assert.True(t, LAB{100, 0, 0, 1}.IsWhite())
	assert.False(t, LAB{100, 0.5, 0, 1}.IsWhite())
	assert.True(t, LAB{0, 0, 0, 1}.IsBlack())
	assert.Equal(t, "lab(50, -20, 30)", c.String())
}

func TestNewXYZ(t *testing.T) {
	c, err := NewXYZ(20, 30, 40)
	assert.NoError(t, err)
	assert.Equal(t, XYZ{20, 30, 40, 1}, c)

	// unbounded above
	_, err = NewXYZ(500, 1000, 0)
	assert.NoError(t, err)
	_, err = NewXYZ(-0.1, 0, 0)
	assert.Error(t, err)
	assert.Panics(t, func() { MustXYZ(0, -1, 0) })

	assert.Equal(t, XYZ{99, 30, 40, 1}, c.WithX(99))
	assert.Equal(t, XYZ{20, 99, 40, 1}, c.WithY(99))
	assert.Equal(t, XYZ{20, 30, 99, 1}, c.WithZ(99))

	assert.True(t, XYZ{100, 100, 100, 1}.IsWhite())
	assert.True(t, XYZ{0, 0, 0, 1}.IsBlack())
	assert.Equal(t, "xyz(20, 30, 40)", c.String())
}
