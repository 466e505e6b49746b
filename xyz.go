// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"

	"cogentcore.org/colormodel/cie"
)

// XYZ is a color in the CIE XYZ model, the secondary pivot space that
// mediates between RGB and LAB. Channels are non-negative and scaled so
// that 100 represents white, but they are unbounded above: conversions
// from out-of-gamut LAB values legitimately produce channels over 100.
//
// The reference white of the library is (cie.WhiteX, cie.WhiteY,
// cie.WhiteZ), calibrated for the RGB primaries used here; RGB white
// converts to exactly that coordinate, not to (100, 100, 100).
type XYZ struct {
	X, Y, Z float32

	// Alpha is the opacity in the 0-1 range. It is preserved by
	// conversions and excluded from [XYZ.Equal].
	Alpha float32
}

// NewXYZ returns a fully opaque XYZ color. Channels must be
// non-negative; there is no upper bound.
func NewXYZ(x, y, z float32) (XYZ, error) {
	return newXYZ("colormodel.NewXYZ", x, y, z, 1)
}

// MustXYZ is like [NewXYZ] but panics on a negative channel.
func MustXYZ(x, y, z float32) XYZ {
	c, err := NewXYZ(x, y, z)
	must(err)
	return c
}

func newXYZ(fn string, x, y, z, alpha float32) (XYZ, error) {
	if err := checkNonNeg(fn, "x", x); err != nil {
		return XYZ{}, err
	}
	if err := checkNonNeg(fn, "y", y); err != nil {
		return XYZ{}, err
	}
	if err := checkNonNeg(fn, "z", z); err != nil {
		return XYZ{}, err
	}
	if err := checkAlpha(fn, alpha); err != nil {
		return XYZ{}, err
	}
	return XYZ{x, y, z, alpha}, nil
}

// XYZFromSlice returns an XYZ color from a slice of native-scale
// values: [x, y, z] or [x, y, z, alpha].
func XYZFromSlice(v []float32) (XYZ, error) {
	const fn = "colormodel.XYZFromSlice"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return XYZ{}, err
	}
	return newXYZ(fn, ch[0], ch[1], ch[2], alpha)
}

// XYZExtrapolate returns an XYZ color from a slice of factored values:
// [x, y, z] or [x, y, z, alpha], with channels scaled by 100. Values
// over 1 are legal, matching the unbounded native domain.
func XYZExtrapolate(v []float32) (XYZ, error) {
	const fn = "colormodel.XYZExtrapolate"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return XYZ{}, err
	}
	return newXYZ(fn, ch[0]*100, ch[1]*100, ch[2]*100, alpha)
}

// ToXYZ converts to the XYZ model through the calibrated matrix.
func (c RGB) ToXYZ() XYZ {
	x, y, z := cie.SRGBToXYZ(c.R/255, c.G/255, c.B/255)
	return XYZ{x, y, z, c.Alpha}
}

// ToRGB converts to the RGB pivot model. Out-of-gamut coordinates are
// projected onto the nearest face of the RGB cube.
func (c XYZ) ToRGB() RGB {
	r, g, b := cie.SRGBFromXYZ(c.X, c.Y, c.Z)
	return RGB{snap(r*255, 0, 255), snap(g*255, 0, 255), snap(b*255, 0, 255), c.Alpha}
}

// ToLAB converts directly to the LAB model, relative to the reference
// white; RGB is not involved.
func (c XYZ) ToLAB() LAB {
	l, a, b := cie.XYZToLAB(c.X, c.Y, c.Z)
	return LAB{snap(l, 0, 100), a, b, c.Alpha}
}

// ToXYZ returns the color itself, satisfying [Model].
func (c XYZ) ToXYZ() XYZ { return c }

func (c XYZ) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }
func (c XYZ) ToHSB() HSB   { return c.ToRGB().ToHSB() }
func (c XYZ) ToHSI() HSI   { return c.ToRGB().ToHSI() }
func (c XYZ) ToHSL() HSL   { return c.ToRGB().ToHSL() }
func (c XYZ) ToHSP() HSP   { return c.ToRGB().ToHSP() }

// Channels returns [x, y, z] on the native 0-100 scale, without alpha.
func (c XYZ) Channels() []float32 { return []float32{c.X, c.Y, c.Z} }

// AsSlice returns [x, y, z] on the native 0-100 scale.
func (c XYZ) AsSlice() []float32 { return c.Channels() }

// AsSliceAlpha returns [x, y, z, alpha].
func (c XYZ) AsSliceAlpha() []float32 { return []float32{c.X, c.Y, c.Z, c.Alpha} }

// AsFactored returns [x, y, z] divided by 100. Because the native
// domain is unbounded above, factored values can exceed 1.
func (c XYZ) AsFactored() []float32 {
	return []float32{c.X / 100, c.Y / 100, c.Z / 100}
}

// AsFactoredAlpha returns [x, y, z, alpha] with channels divided by 100.
func (c XYZ) AsFactoredAlpha() []float32 {
	return []float32{c.X / 100, c.Y / 100, c.Z / 100, c.Alpha}
}

// WithX returns a copy of the color with the x channel set to x.
// It panics if x is negative.
func (c XYZ) WithX(x float32) XYZ {
	must(checkNonNeg("colormodel.XYZ.WithX", "x", x))
	c.X = x
	return c
}

// WithY returns a copy of the color with the y channel set to y.
// It panics if y is negative.
func (c XYZ) WithY(y float32) XYZ {
	must(checkNonNeg("colormodel.XYZ.WithY", "y", y))
	c.Y = y
	return c
}

// WithZ returns a copy of the color with the z channel set to z.
// It panics if z is negative.
func (c XYZ) WithZ(z float32) XYZ {
	must(checkNonNeg("colormodel.XYZ.WithZ", "z", z))
	c.Z = z
	return c
}

// WithAlpha returns a copy of the color with alpha set to a.
// It panics if a is outside [0, 1].
func (c XYZ) WithAlpha(a float32) XYZ {
	must(checkAlpha("colormodel.XYZ.WithAlpha", a))
	c.Alpha = a
	return c
}

// Equal reports whether c and o have the same channel values.
// Alpha is deliberately not compared.
func (c XYZ) Equal(o XYZ) bool {
	return c.X == o.X && c.Y == o.Y && c.Z == o.Z
}

// IsWhite reports whether all channels are exactly 100. Note that RGB
// white converts to the reference white, not (100, 100, 100), and any
// conversion rounding defeats the exact comparison, so this is rarely
// true for converted values.
func (c XYZ) IsWhite() bool { return c.X == 100 && c.Y == 100 && c.Z == 100 }

// IsBlack reports whether all channels are exactly 0.
func (c XYZ) IsBlack() bool { return c.X == 0 && c.Y == 0 && c.Z == 0 }

func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%g, %g, %g%s)", c.X, c.Y, c.Z, alphaString(c.Alpha))
}
