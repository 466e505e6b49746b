// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"

	"github.com/chewxy/math32"
)

// HSI is a color in the hue-saturation-intensity model. Hue is in
// degrees in the 0-360 range; saturation and intensity are in the 0-100
// range. Intensity is the mean of the three RGB channels, and
// saturation is the complement of the darkest channel relative to that
// mean, which makes the model symmetric in the three channels.
type HSI struct {
	H, S, I float32

	// Alpha is the opacity in the 0-1 range. It is preserved by
	// conversions and excluded from [HSI.Equal].
	Alpha float32
}

// NewHSI returns a fully opaque HSI color. Hue must be in the 0-360
// range; saturation and intensity in the 0-100 range.
func NewHSI(h, s, i float32) (HSI, error) {
	return newHSI("colormodel.NewHSI", h, s, i, 1)
}

// MustHSI is like [NewHSI] but panics on an out-of-range channel.
func MustHSI(h, s, i float32) HSI {
	c, err := NewHSI(h, s, i)
	must(err)
	return c
}

func newHSI(fn string, h, s, i, alpha float32) (HSI, error) {
	if err := checkChannel(fn, "hue", h, 0, 360); err != nil {
		return HSI{}, err
	}
	if err := checkChannel(fn, "saturation", s, 0, 100); err != nil {
		return HSI{}, err
	}
	if err := checkChannel(fn, "intensity", i, 0, 100); err != nil {
		return HSI{}, err
	}
	if err := checkAlpha(fn, alpha); err != nil {
		return HSI{}, err
	}
	return HSI{h, s, i, alpha}, nil
}

// HSIFromSlice returns an HSI color from a slice of native-scale
// values: [h, s, i] or [h, s, i, alpha].
func HSIFromSlice(v []float32) (HSI, error) {
	const fn = "colormodel.HSIFromSlice"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return HSI{}, err
	}
	return newHSI(fn, ch[0], ch[1], ch[2], alpha)
}

// HSIExtrapolate returns an HSI color from a slice of factored (0-1
// scaled) values: [h, s, i] or [h, s, i, alpha]. Hue is scaled by 360,
// saturation and intensity by 100.
func HSIExtrapolate(v []float32) (HSI, error) {
	const fn = "colormodel.HSIExtrapolate"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return HSI{}, err
	}
	return newHSI(fn, ch[0]*360, ch[1]*100, ch[2]*100, alpha)
}

// ToHSI converts to the HSI model. Black has saturation 0 to avoid the
// division by zero intensity; grays have hue 0.
func (c RGB) ToHSI() HSI {
	r := c.R / 255
	g := c.G / 255
	b := c.B / 255
	i := (r + g + b) / 3
	if i == 0 {
		return HSI{0, 0, 0, c.Alpha}
	}
	s := 1 - min(r, g, b)/i
	var h float32
	if s > 0 {
		num := 0.5 * ((r - g) + (r - b))
		den := math32.Sqrt((r-g)*(r-g) + (r-b)*(g-b))
		if den > 0 {
			h = math32.Acos(snap(num/den, -1, 1)) * 180 / math32.Pi
			if b > g {
				h = 360 - h
			}
		}
	}
	return HSI{h, snap(s*100, 0, 100), snap(i*100, 0, 100), c.Alpha}
}

// ToRGB converts to the RGB pivot model using the three 120° sector
// formulas. Combinations of high saturation and intensity can leave the
// RGB cube; those are projected onto its nearest face.
func (c HSI) ToRGB() RGB {
	s := c.S / 100
	i := c.I / 100
	h := wrapHue(c.H)
	var r, g, b float32
	switch {
	case h < 120:
		b = i * (1 - s)
		r = i * (1 + s*cosRatio(h))
		g = 3*i - (r + b)
	case h < 240:
		r = i * (1 - s)
		g = i * (1 + s*cosRatio(h-120))
		b = 3*i - (r + g)
	default:
		g = i * (1 - s)
		b = i * (1 + s*cosRatio(h-240))
		r = 3*i - (g + b)
	}
	return RGB{snap(r*255, 0, 255), snap(g*255, 0, 255), snap(b*255, 0, 255), c.Alpha}
}

// cosRatio is the chroma weight of the HSI sector formula for a hue
// offset in degrees within a 120° sector.
func cosRatio(h float32) float32 {
	return math32.Cos(h*math32.Pi/180) / math32.Cos((60-h)*math32.Pi/180)
}

// ToHSI returns the color itself, satisfying [Model].
func (c HSI) ToHSI() HSI { return c }

func (c HSI) ToXYZ() XYZ   { return c.ToRGB().ToXYZ() }
func (c HSI) ToLAB() LAB   { return c.ToRGB().ToLAB() }
func (c HSI) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }
func (c HSI) ToHSB() HSB   { return c.ToRGB().ToHSB() }
func (c HSI) ToHSL() HSL   { return c.ToRGB().ToHSL() }
func (c HSI) ToHSP() HSP   { return c.ToRGB().ToHSP() }

// Channels returns [h, s, i] on the native scale, without alpha.
func (c HSI) Channels() []float32 { return []float32{c.H, c.S, c.I} }

// AsSlice returns [h, s, i] on the native scale.
func (c HSI) AsSlice() []float32 { return c.Channels() }

// AsSliceAlpha returns [h, s, i, alpha].
func (c HSI) AsSliceAlpha() []float32 { return []float32{c.H, c.S, c.I, c.Alpha} }

// AsFactored returns [h/360, s/100, i/100].
func (c HSI) AsFactored() []float32 {
	return []float32{c.H / 360, c.S / 100, c.I / 100}
}

// AsFactoredAlpha returns [h/360, s/100, i/100, alpha].
func (c HSI) AsFactoredAlpha() []float32 {
	return []float32{c.H / 360, c.S / 100, c.I / 100, c.Alpha}
}

// WithHue returns a copy of the color with the hue set to h.
// It panics if h is outside [0, 360].
func (c HSI) WithHue(h float32) HSI {
	must(checkChannel("colormodel.HSI.WithHue", "hue", h, 0, 360))
	c.H = h
	return c
}

// WithSaturation returns a copy of the color with the saturation set to
// s. It panics if s is outside [0, 100].
func (c HSI) WithSaturation(s float32) HSI {
	must(checkChannel("colormodel.HSI.WithSaturation", "saturation", s, 0, 100))
	c.S = s
	return c
}

// WithIntensity returns a copy of the color with the intensity set to
// i. It panics if i is outside [0, 100].
func (c HSI) WithIntensity(i float32) HSI {
	must(checkChannel("colormodel.HSI.WithIntensity", "intensity", i, 0, 100))
	c.I = i
	return c
}

// WithAlpha returns a copy of the color with alpha set to a.
// It panics if a is outside [0, 1].
func (c HSI) WithAlpha(a float32) HSI {
	must(checkAlpha("colormodel.HSI.WithAlpha", a))
	c.Alpha = a
	return c
}

// Equal reports whether c and o have the same channel values.
// Alpha is deliberately not compared.
func (c HSI) Equal(o HSI) bool {
	return c.H == o.H && c.S == o.S && c.I == o.I
}

// IsBlack reports whether intensity is exactly 0.
func (c HSI) IsBlack() bool { return c.I == 0 }

// IsWhite reports whether saturation is exactly 0 and intensity is
// exactly 100.
func (c HSI) IsWhite() bool { return c.S == 0 && c.I == 100 }

// IsMonochromatic reports whether saturation is 0, so the color is a
// pure gray with no hue.
func (c HSI) IsMonochromatic() bool { return c.S == 0 }

func (c HSI) String() string {
	return fmt.Sprintf("hsi(%g, %g, %g%s)", c.H, c.S, c.I, alphaString(c.Alpha))
}
