// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"

	"cogentcore.org/colormodel/cie"
)

// LAB is a color in the CIE L*a*b* model. L is the perceptual lightness
// in the 0-100 range; a and b are the green-red and blue-yellow axes,
// unbounded but practically within ±128 for colors near the RGB gamut.
// LAB converts through the XYZ pivot using the calibrated reference
// white, not through RGB directly.
type LAB struct {
	L, A, B float32

	// Alpha is the opacity in the 0-1 range. It is preserved by
	// conversions and excluded from [LAB.Equal].
	Alpha float32
}

// NewLAB returns a fully opaque LAB color. L must be in the 0-100
// range; a and b must be finite but are otherwise unrestricted.
func NewLAB(l, a, b float32) (LAB, error) {
	return newLAB("colormodel.NewLAB", l, a, b, 1)
}

// MustLAB is like [NewLAB] but panics on an out-of-range channel.
func MustLAB(l, a, b float32) LAB {
	c, err := NewLAB(l, a, b)
	must(err)
	return c
}

func newLAB(fn string, l, a, b, alpha float32) (LAB, error) {
	if err := checkChannel(fn, "lightness", l, 0, 100); err != nil {
		return LAB{}, err
	}
	if err := checkFinite(fn, "a", a); err != nil {
		return LAB{}, err
	}
	if err := checkFinite(fn, "b", b); err != nil {
		return LAB{}, err
	}
	if err := checkAlpha(fn, alpha); err != nil {
		return LAB{}, err
	}
	return LAB{l, a, b, alpha}, nil
}

// LABFromSlice returns a LAB color from a slice of native-scale values:
// [l, a, b] or [l, a, b, alpha].
func LABFromSlice(v []float32) (LAB, error) {
	const fn = "colormodel.LABFromSlice"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return LAB{}, err
	}
	return newLAB(fn, ch[0], ch[1], ch[2], alpha)
}

// LABExtrapolate returns a LAB color from a slice of factored values:
// [l, a, b] or [l, a, b, alpha]. L is scaled by 100; a and b are scaled
// by 128 from the -1 to 1 range.
func LABExtrapolate(v []float32) (LAB, error) {
	const fn = "colormodel.LABExtrapolate"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return LAB{}, err
	}
	return newLAB(fn, ch[0]*100, ch[1]*128, ch[2]*128, alpha)
}

// ToLAB converts to the LAB model, pivoting through XYZ.
func (c RGB) ToLAB() LAB { return c.ToXYZ().ToLAB() }

// ToXYZ converts directly to the XYZ model, relative to the reference
// white; RGB is not involved. Out-of-gamut LAB values produce XYZ
// channels beyond 100.
func (c LAB) ToXYZ() XYZ {
	x, y, z := cie.LABToXYZ(c.L, c.A, c.B)
	return XYZ{nonNeg(x), nonNeg(y), nonNeg(z), c.Alpha}
}

// ToRGB converts to the RGB pivot model via XYZ. Out-of-gamut values
// are projected onto the nearest face of the RGB cube.
func (c LAB) ToRGB() RGB { return c.ToXYZ().ToRGB() }

// ToLAB returns the color itself, satisfying [Model].
func (c LAB) ToLAB() LAB { return c }

func (c LAB) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }
func (c LAB) ToHSB() HSB   { return c.ToRGB().ToHSB() }
func (c LAB) ToHSI() HSI   { return c.ToRGB().ToHSI() }
func (c LAB) ToHSL() HSL   { return c.ToRGB().ToHSL() }
func (c LAB) ToHSP() HSP   { return c.ToRGB().ToHSP() }

// Channels returns [l, a, b] on the native scale, without alpha.
func (c LAB) Channels() []float32 { return []float32{c.L, c.A, c.B} }

// AsSlice returns [l, a, b] on the native scale.
func (c LAB) AsSlice() []float32 { return c.Channels() }

// AsSliceAlpha returns [l, a, b, alpha].
func (c LAB) AsSliceAlpha() []float32 { return []float32{c.L, c.A, c.B, c.Alpha} }

// AsFactored returns [l/100, a/128, b/128]. a and b can exceed the
// -1 to 1 range for values outside ±128.
func (c LAB) AsFactored() []float32 {
	return []float32{c.L / 100, c.A / 128, c.B / 128}
}

// AsFactoredAlpha returns [l/100, a/128, b/128, alpha].
func (c LAB) AsFactoredAlpha() []float32 {
	return []float32{c.L / 100, c.A / 128, c.B / 128, c.Alpha}
}

// WithL returns a copy of the color with the lightness channel set to l.
// It panics if l is outside [0, 100].
func (c LAB) WithL(l float32) LAB {
	must(checkChannel("colormodel.LAB.WithL", "lightness", l, 0, 100))
	c.L = l
	return c
}

// WithA returns a copy of the color with the a channel set to a.
// It panics if a is not finite.
func (c LAB) WithA(a float32) LAB {
	must(checkFinite("colormodel.LAB.WithA", "a", a))
	c.A = a
	return c
}

// WithB returns a copy of the color with the b channel set to b.
// It panics if b is not finite.
func (c LAB) WithB(b float32) LAB {
	must(checkFinite("colormodel.LAB.WithB", "b", b))
	c.B = b
	return c
}

// WithAlpha returns a copy of the color with alpha set to a.
// It panics if a is outside [0, 1].
func (c LAB) WithAlpha(a float32) LAB {
	must(checkAlpha("colormodel.LAB.WithAlpha", a))
	c.Alpha = a
	return c
}

// Equal reports whether c and o have the same channel values.
// Alpha is deliberately not compared.
func (c LAB) Equal(o LAB) bool {
	return c.L == o.L && c.A == o.A && c.B == o.B
}

// IsWhite reports whether the color is exactly (100, 0, 0).
func (c LAB) IsWhite() bool { return c.L == 100 && c.A == 0 && c.B == 0 }

// IsBlack reports whether the color is exactly (0, 0, 0).
func (c LAB) IsBlack() bool { return c.L == 0 && c.A == 0 && c.B == 0 }

func (c LAB) String() string {
	return fmt.Sprintf("lab(%g, %g, %g%s)", c.L, c.A, c.B, alphaString(c.Alpha))
}
