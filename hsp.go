// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Perceived-brightness weights of the HSP model, from Darel Rex
// Finley's formulation: P² = 0.299 R² + 0.587 G² + 0.114 B² on
// factored RGB channels.
const (
	hspPr = 0.299
	hspPg = 0.587
	hspPb = 0.114
)

// HSP is a color in the hue-saturation-perceived-brightness model. Hue
// is in degrees in the 0-360 range; saturation and perceived brightness
// are in the 0-100 range. Unlike HSB, the brightness channel weights
// the RGB channels by their perceptual contribution, so pure blue is
// much darker than pure green at the same HSB brightness.
type HSP struct {
	H, S, P float32

	// Alpha is the opacity in the 0-1 range. It is preserved by
	// conversions and excluded from [HSP.Equal].
	Alpha float32
}

// NewHSP returns a fully opaque HSP color. Hue must be in the 0-360
// range; saturation and perceived brightness in the 0-100 range.
func NewHSP(h, s, p float32) (HSP, error) {
	return newHSP("colormodel.NewHSP", h, s, p, 1)
}

// MustHSP is like [NewHSP] but panics on an out-of-range channel.
func MustHSP(h, s, p float32) HSP {
	c, err := NewHSP(h, s, p)
	must(err)
	return c
}

func newHSP(fn string, h, s, p, alpha float32) (HSP, error) {
	if err := checkChannel(fn, "hue", h, 0, 360); err != nil {
		return HSP{}, err
	}
	if err := checkChannel(fn, "saturation", s, 0, 100); err != nil {
		return HSP{}, err
	}
	if err := checkChannel(fn, "perceived brightness", p, 0, 100); err != nil {
		return HSP{}, err
	}
	if err := checkAlpha(fn, alpha); err != nil {
		return HSP{}, err
	}
	return HSP{h, s, p, alpha}, nil
}

// HSPFromSlice returns an HSP color from a slice of native-scale
// values: [h, s, p] or [h, s, p, alpha].
func HSPFromSlice(v []float32) (HSP, error) {
	const fn = "colormodel.HSPFromSlice"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return HSP{}, err
	}
	return newHSP(fn, ch[0], ch[1], ch[2], alpha)
}

// HSPExtrapolate returns an HSP color from a slice of factored (0-1
// scaled) values: [h, s, p] or [h, s, p, alpha]. Hue is scaled by 360,
// saturation and perceived brightness by 100.
func HSPExtrapolate(v []float32) (HSP, error) {
	const fn = "colormodel.HSPExtrapolate"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return HSP{}, err
	}
	return newHSP(fn, ch[0]*360, ch[1]*100, ch[2]*100, alpha)
}

// ToHSP converts to the HSP model following Finley's RGBtoHSP. Grays
// have hue and saturation 0.
func (c RGB) ToHSP() HSP {
	r := c.R / 255
	g := c.G / 255
	b := c.B / 255
	p := math32.Sqrt(hspPr*r*r + hspPg*g*g + hspPb*b*b)
	if r == g && g == b {
		return HSP{0, 0, snap(p*100, 0, 100), c.Alpha}
	}
	var h, s float32
	switch {
	case r >= g && r >= b: // red is largest
		if b >= g {
			h = 1 - (b-g)/(r-g)/6
			s = 1 - g/r
		} else {
			h = (g - b) / (r - b) / 6
			s = 1 - b/r
		}
	case g >= r && g >= b: // green is largest
		if r >= b {
			h = 2.0/6 - (r-b)/(g-b)/6
			s = 1 - b/g
		} else {
			h = 2.0/6 + (b-r)/(g-r)/6
			s = 1 - r/g
		}
	default: // blue is largest
		if g >= r {
			h = 4.0/6 - (g-r)/(b-r)/6
			s = 1 - r/b
		} else {
			h = 4.0/6 + (r-g)/(b-g)/6
			s = 1 - g/b
		}
	}
	return HSP{wrapHue(h * 360), snap(s*100, 0, 100), snap(p*100, 0, 100), c.Alpha}
}

// ToRGB converts to the RGB pivot model following Finley's HSPtoRGB.
// The formula preserves perceived brightness exactly for in-gamut
// results; combinations of high saturation and brightness that leave
// the RGB cube are projected onto its nearest face.
func (c HSP) ToRGB() RGB {
	h := wrapHue(c.H) / 360
	s := c.S / 100
	p := c.P / 100
	var r, g, b float32
	minOverMax := 1 - s
	if minOverMax > 0 {
		part := func(hh float32) float32 { return 1 + hh*(1/minOverMax-1) }
		switch {
		case h < 1.0/6: // red > green > blue
			hh := 6 * h
			pt := part(hh)
			b = p / math32.Sqrt(hspPr/(minOverMax*minOverMax)+hspPg*pt*pt+hspPb)
			r = b / minOverMax
			g = b + hh*(r-b)
		case h < 2.0/6: // green > red > blue
			hh := 6 * (2.0/6 - h)
			pt := part(hh)
			b = p / math32.Sqrt(hspPg/(minOverMax*minOverMax)+hspPr*pt*pt+hspPb)
			g = b / minOverMax
			r = b + hh*(g-b)
		case h < 3.0/6: // green > blue > red
			hh := 6 * (h - 2.0/6)
			pt := part(hh)
			r = p / math32.Sqrt(hspPg/(minOverMax*minOverMax)+hspPb*pt*pt+hspPr)
			g = r / minOverMax
			b = r + hh*(g-r)
		case h < 4.0/6: // blue > green > red
			hh := 6 * (4.0/6 - h)
			pt := part(hh)
			r = p / math32.Sqrt(hspPb/(minOverMax*minOverMax)+hspPg*pt*pt+hspPr)
			b = r / minOverMax
			g = r + hh*(b-r)
		case h < 5.0/6: // blue > red > green
			hh := 6 * (h - 4.0/6)
			pt := part(hh)
			g = p / math32.Sqrt(hspPb/(minOverMax*minOverMax)+hspPr*pt*pt+hspPg)
			b = g / minOverMax
			r = g + hh*(b-g)
		default: // red > blue > green
			hh := 6 * (1 - h)
			pt := part(hh)
			g = p / math32.Sqrt(hspPr/(minOverMax*minOverMax)+hspPb*pt*pt+hspPg)
			r = g / minOverMax
			b = g + hh*(r-g)
		}
	} else {
		switch {
		case h < 1.0/6:
			hh := 6 * h
			r = math32.Sqrt(p * p / (hspPr + hspPg*hh*hh))
			g = r * hh
		case h < 2.0/6:
			hh := 6 * (2.0/6 - h)
			g = math32.Sqrt(p * p / (hspPg + hspPr*hh*hh))
			r = g * hh
		case h < 3.0/6:
			hh := 6 * (h - 2.0/6)
			g = math32.Sqrt(p * p / (hspPg + hspPb*hh*hh))
			b = g * hh
		case h < 4.0/6:
			hh := 6 * (4.0/6 - h)
			b = math32.Sqrt(p * p / (hspPb + hspPg*hh*hh))
			g = b * hh
		case h < 5.0/6:
			hh := 6 * (h - 4.0/6)
			b = math32.Sqrt(p * p / (hspPb + hspPr*hh*hh))
			r = b * hh
		default:
			hh := 6 * (1 - h)
			r = math32.Sqrt(p * p / (hspPr + hspPb*hh*hh))
			b = r * hh
		}
	}
	return RGB{snap(r*255, 0, 255), snap(g*255, 0, 255), snap(b*255, 0, 255), c.Alpha}
}

// ToHSP returns the color itself, satisfying [Model].
func (c HSP) ToHSP() HSP { return c }

func (c HSP) ToXYZ() XYZ   { return c.ToRGB().ToXYZ() }
func (c HSP) ToLAB() LAB   { return c.ToRGB().ToLAB() }
func (c HSP) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }
func (c HSP) ToHSB() HSB   { return c.ToRGB().ToHSB() }
func (c HSP) ToHSI() HSI   { return c.ToRGB().ToHSI() }
func (c HSP) ToHSL() HSL   { return c.ToRGB().ToHSL() }

// Channels returns [h, s, p] on the native scale, without alpha.
func (c HSP) Channels() []float32 { return []float32{c.H, c.S, c.P} }

// AsSlice returns [h, s, p] on the native scale.
func (c HSP) AsSlice() []float32 { return c.Channels() }

// AsSliceAlpha returns [h, s, p, alpha].
func (c HSP) AsSliceAlpha() []float32 { return []float32{c.H, c.S, c.P, c.Alpha} }

// AsFactored returns [h/360, s/100, p/100].
func (c HSP) AsFactored() []float32 {
	return []float32{c.H / 360, c.S / 100, c.P / 100}
}

// AsFactoredAlpha returns [h/360, s/100, p/100, alpha].
func (c HSP) AsFactoredAlpha() []float32 {
	return []float32{c.H / 360, c.S / 100, c.P / 100, c.Alpha}
}

// WithHue returns a copy of the color with the hue set to h.
// It panics if h is outside [0, 360].
func (c HSP) WithHue(h float32) HSP {
	must(checkChannel("colormodel.HSP.WithHue", "hue", h, 0, 360))
	c.H = h
	return c
}

// WithSaturation returns a copy of the color with the saturation set to
// s. It panics if s is outside [0, 100].
func (c HSP) WithSaturation(s float32) HSP {
	must(checkChannel("colormodel.HSP.WithSaturation", "saturation", s, 0, 100))
	c.S = s
	return c
}

// WithPerceivedBrightness returns a copy of the color with the
// perceived brightness set to p. It panics if p is outside [0, 100].
func (c HSP) WithPerceivedBrightness(p float32) HSP {
	must(checkChannel("colormodel.HSP.WithPerceivedBrightness", "perceived brightness", p, 0, 100))
	c.P = p
	return c
}

// WithAlpha returns a copy of the color with alpha set to a.
// It panics if a is outside [0, 1].
func (c HSP) WithAlpha(a float32) HSP {
	must(checkAlpha("colormodel.HSP.WithAlpha", a))
	c.Alpha = a
	return c
}

// Equal reports whether c and o have the same channel values.
// Alpha is deliberately not compared.
func (c HSP) Equal(o HSP) bool {
	return c.H == o.H && c.S == o.S && c.P == o.P
}

// IsBlack reports whether perceived brightness is exactly 0.
func (c HSP) IsBlack() bool { return c.P == 0 }

// IsWhite reports whether saturation is exactly 0 and perceived
// brightness is exactly 100.
func (c HSP) IsWhite() bool { return c.S == 0 && c.P == 100 }

// IsMonochromatic reports whether saturation is 0, so the color is a
// pure gray with no hue.
func (c HSP) IsMonochromatic() bool { return c.S == 0 }

func (c HSP) String() string {
	return fmt.Sprintf("hsp(%g, %g, %g%s)", c.H, c.S, c.P, alphaString(c.Alpha))
}
