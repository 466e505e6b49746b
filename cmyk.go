// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import "fmt"

// CMYK is a color in the subtractive cyan-magenta-yellow-black model
// used for print. All four channels are in the 0-100 range.
type CMYK struct {
	C, M, Y, K float32

	// Alpha is the opacity in the 0-1 range. It is preserved by
	// conversions and excluded from [CMYK.Equal].
	Alpha float32
}

// NewCMYK returns a fully opaque CMYK color with the given channel
// values in the 0-100 range.
func NewCMYK(c, m, y, k float32) (CMYK, error) {
	return newCMYK("colormodel.NewCMYK", c, m, y, k, 1)
}

// MustCMYK is like [NewCMYK] but panics on an out-of-range channel.
func MustCMYK(c, m, y, k float32) CMYK {
	v, err := NewCMYK(c, m, y, k)
	must(err)
	return v
}

func newCMYK(fn string, c, m, y, k, alpha float32) (CMYK, error) {
	if err := checkChannel(fn, "cyan", c, 0, 100); err != nil {
		return CMYK{}, err
	}
	if err := checkChannel(fn, "magenta", m, 0, 100); err != nil {
		return CMYK{}, err
	}
	if err := checkChannel(fn, "yellow", y, 0, 100); err != nil {
		return CMYK{}, err
	}
	if err := checkChannel(fn, "black", k, 0, 100); err != nil {
		return CMYK{}, err
	}
	if err := checkAlpha(fn, alpha); err != nil {
		return CMYK{}, err
	}
	return CMYK{c, m, y, k, alpha}, nil
}

// CMYKFromSlice returns a CMYK color from a slice of native-scale
// values: [c, m, y, k] or [c, m, y, k, alpha].
func CMYKFromSlice(v []float32) (CMYK, error) {
	const fn = "colormodel.CMYKFromSlice"
	ch, alpha, err := splitSlice(fn, 4, v)
	if err != nil {
		return CMYK{}, err
	}
	return newCMYK(fn, ch[0], ch[1], ch[2], ch[3], alpha)
}

// CMYKExtrapolate returns a CMYK color from a slice of factored (0-1
// scaled) values: [c, m, y, k] or [c, m, y, k, alpha].
func CMYKExtrapolate(v []float32) (CMYK, error) {
	const fn = "colormodel.CMYKExtrapolate"
	ch, alpha, err := splitSlice(fn, 4, v)
	if err != nil {
		return CMYK{}, err
	}
	return newCMYK(fn, ch[0]*100, ch[1]*100, ch[2]*100, ch[3]*100, alpha)
}

// ToCMYK converts to the CMYK model. The black channel is the
// complement of the brightest RGB channel; for pure black the other
// three channels are 0.
func (c RGB) ToCMYK() CMYK {
	r := c.R / 255
	g := c.G / 255
	b := c.B / 255
	k := 1 - max(r, g, b)
	if k >= 1 {
		return CMYK{0, 0, 0, 100, c.Alpha}
	}
	cy := (1 - r - k) / (1 - k)
	mg := (1 - g - k) / (1 - k)
	ye := (1 - b - k) / (1 - k)
	return CMYK{
		snap(cy*100, 0, 100), snap(mg*100, 0, 100),
		snap(ye*100, 0, 100), snap(k*100, 0, 100), c.Alpha,
	}
}

// ToRGB converts to the RGB pivot model using the standard subtractive
// formula: each channel is 255 × (1 − c/100) × (1 − k/100).
func (c CMYK) ToRGB() RGB {
	r := 255 * (1 - c.C/100) * (1 - c.K/100)
	g := 255 * (1 - c.M/100) * (1 - c.K/100)
	b := 255 * (1 - c.Y/100) * (1 - c.K/100)
	return RGB{r, g, b, c.Alpha}
}

// ToCMYK returns the color itself, satisfying [Model].
func (c CMYK) ToCMYK() CMYK { return c }

func (c CMYK) ToXYZ() XYZ { return c.ToRGB().ToXYZ() }
func (c CMYK) ToLAB() LAB { return c.ToRGB().ToLAB() }
func (c CMYK) ToHSB() HSB { return c.ToRGB().ToHSB() }
func (c CMYK) ToHSI() HSI { return c.ToRGB().ToHSI() }
func (c CMYK) ToHSL() HSL { return c.ToRGB().ToHSL() }
func (c CMYK) ToHSP() HSP { return c.ToRGB().ToHSP() }

// Channels returns [c, m, y, k] on the native 0-100 scale, without
// alpha.
func (c CMYK) Channels() []float32 { return []float32{c.C, c.M, c.Y, c.K} }

// AsSlice returns [c, m, y, k] on the native 0-100 scale.
func (c CMYK) AsSlice() []float32 { return c.Channels() }

// AsSliceAlpha returns [c, m, y, k, alpha].
func (c CMYK) AsSliceAlpha() []float32 { return []float32{c.C, c.M, c.Y, c.K, c.Alpha} }

// AsFactored returns [c, m, y, k] scaled to the 0-1 range.
func (c CMYK) AsFactored() []float32 {
	return []float32{c.C / 100, c.M / 100, c.Y / 100, c.K / 100}
}

// AsFactoredAlpha returns [c, m, y, k, alpha], all in the 0-1 range.
func (c CMYK) AsFactoredAlpha() []float32 {
	return []float32{c.C / 100, c.M / 100, c.Y / 100, c.K / 100, c.Alpha}
}

// WithCyan returns a copy of the color with the cyan channel set to v.
// It panics if v is outside [0, 100].
func (c CMYK) WithCyan(v float32) CMYK {
	must(checkChannel("colormodel.CMYK.WithCyan", "cyan", v, 0, 100))
	c.C = v
	return c
}

// WithMagenta returns a copy of the color with the magenta channel set
// to v. It panics if v is outside [0, 100].
func (c CMYK) WithMagenta(v float32) CMYK {
	must(checkChannel("colormodel.CMYK.WithMagenta", "magenta", v, 0, 100))
	c.M = v
	return c
}

// WithYellow returns a copy of the color with the yellow channel set to
// v. It panics if v is outside [0, 100].
func (c CMYK) WithYellow(v float32) CMYK {
	must(checkChannel("colormodel.CMYK.WithYellow", "yellow", v, 0, 100))
	c.Y = v
	return c
}

// WithBlack returns a copy of the color with the black channel set to
// v. It panics if v is outside [0, 100].
func (c CMYK) WithBlack(v float32) CMYK {
	must(checkChannel("colormodel.CMYK.WithBlack", "black", v, 0, 100))
	c.K = v
	return c
}

// WithAlpha returns a copy of the color with alpha set to a.
// It panics if a is outside [0, 1].
func (c CMYK) WithAlpha(a float32) CMYK {
	must(checkAlpha("colormodel.CMYK.WithAlpha", a))
	c.Alpha = a
	return c
}

// Equal reports whether c and o have the same channel values.
// Alpha is deliberately not compared.
func (c CMYK) Equal(o CMYK) bool {
	return c.C == o.C && c.M == o.M && c.Y == o.Y && c.K == o.K
}

// IsBlack reports whether the black channel is exactly 100.
func (c CMYK) IsBlack() bool { return c.K == 100 }

// IsWhite reports whether all four channels are exactly 0.
func (c CMYK) IsWhite() bool { return c.C == 0 && c.M == 0 && c.Y == 0 && c.K == 0 }

func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%g, %g, %g, %g%s)", c.C, c.M, c.Y, c.K, alphaString(c.Alpha))
}
