// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import "fmt"

// HSL is a color in the hue-saturation-lightness model. Hue is in
// degrees in the 0-360 range; saturation and lightness are in the 0-100
// range. Lightness is the mean of the brightest and darkest RGB
// channels, so 50 is a fully saturated color and 100 is white.
type HSL struct {
	H, S, L float32

	// Alpha is the opacity in the 0-1 range. It is preserved by
	// conversions and excluded from [HSL.Equal].
	Alpha float32
}

// NewHSL returns a fully opaque HSL color. Hue must be in the 0-360
// range; saturation and lightness in the 0-100 range.
func NewHSL(h, s, l float32) (HSL, error) {
	return newHSL("colormodel.NewHSL", h, s, l, 1)
}

// MustHSL is like [NewHSL] but panics on an out-of-range channel.
func MustHSL(h, s, l float32) HSL {
	c, err := NewHSL(h, s, l)
	must(err)
	return c
}

func newHSL(fn string, h, s, l, alpha float32) (HSL, error) {
	if err := checkChannel(fn, "hue", h, 0, 360); err != nil {
		return HSL{}, err
	}
	if err := checkChannel(fn, "saturation", s, 0, 100); err != nil {
		return HSL{}, err
	}
	if err := checkChannel(fn, "lightness", l, 0, 100); err != nil {
		return HSL{}, err
	}
	if err := checkAlpha(fn, alpha); err != nil {
		return HSL{}, err
	}
	return HSL{h, s, l, alpha}, nil
}

// HSLFromSlice returns an HSL color from a slice of native-scale
// values: [h, s, l] or [h, s, l, alpha].
func HSLFromSlice(v []float32) (HSL, error) {
	const fn = "colormodel.HSLFromSlice"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return HSL{}, err
	}
	return newHSL(fn, ch[0], ch[1], ch[2], alpha)
}

// HSLExtrapolate returns an HSL color from a slice of factored (0-1
// scaled) values: [h, s, l] or [h, s, l, alpha]. Hue is scaled by 360,
// saturation and lightness by 100.
func HSLExtrapolate(v []float32) (HSL, error) {
	const fn = "colormodel.HSLExtrapolate"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return HSL{}, err
	}
	return newHSL(fn, ch[0]*360, ch[1]*100, ch[2]*100, alpha)
}

// ToHSL converts to the HSL model. Grays have hue and saturation 0.
func (c RGB) ToHSL() HSL {
	r := c.R / 255
	g := c.G / 255
	b := c.B / 255
	mx := max(r, g, b)
	mn := min(r, g, b)
	d := mx - mn
	l := (mx + mn) / 2
	var h, s float32
	if d != 0 {
		if l > 0.5 {
			s = d / (2 - mx - mn)
		} else {
			s = d / (mx + mn)
		}
		switch mx {
		case r:
			h = wrapHue(60 * (g - b) / d)
		case g:
			h = 60*(b-r)/d + 120
		default:
			h = 60*(r-g)/d + 240
		}
	}
	return HSL{h, snap(s*100, 0, 100), snap(l*100, 0, 100), c.Alpha}
}

// ToRGB converts to the RGB pivot model.
func (c HSL) ToRGB() RGB {
	s := c.S / 100
	l := c.L / 100
	if s == 0 {
		v := l * 255
		return RGB{v, v, v, c.Alpha}
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	h := wrapHue(c.H) / 360
	r := hueToComp(p, q, h+1.0/3)
	g := hueToComp(p, q, h)
	b := hueToComp(p, q, h-1.0/3)
	return RGB{snap(r*255, 0, 255), snap(g*255, 0, 255), snap(b*255, 0, 255), c.Alpha}
}

// hueToComp is the helper of the HSL to RGB conversion, producing one
// channel in the 0-1 range from the two chroma bounds and a hue offset.
func hueToComp(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// ToHSL returns the color itself, satisfying [Model].
func (c HSL) ToHSL() HSL { return c }

func (c HSL) ToXYZ() XYZ   { return c.ToRGB().ToXYZ() }
func (c HSL) ToLAB() LAB   { return c.ToRGB().ToLAB() }
func (c HSL) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }
func (c HSL) ToHSB() HSB   { return c.ToRGB().ToHSB() }
func (c HSL) ToHSI() HSI   { return c.ToRGB().ToHSI() }
func (c HSL) ToHSP() HSP   { return c.ToRGB().ToHSP() }

// Channels returns [h, s, l] on the native scale, without alpha.
func (c HSL) Channels() []float32 { return []float32{c.H, c.S, c.L} }

// AsSlice returns [h, s, l] on the native scale.
func (c HSL) AsSlice() []float32 { return c.Channels() }

// AsSliceAlpha returns [h, s, l, alpha].
func (c HSL) AsSliceAlpha() []float32 { return []float32{c.H, c.S, c.L, c.Alpha} }

// AsFactored returns [h/360, s/100, l/100].
func (c HSL) AsFactored() []float32 {
	return []float32{c.H / 360, c.S / 100, c.L / 100}
}

// AsFactoredAlpha returns [h/360, s/100, l/100, alpha].
func (c HSL) AsFactoredAlpha() []float32 {
	return []float32{c.H / 360, c.S / 100, c.L / 100, c.Alpha}
}

// WithHue returns a copy of the color with the hue set to h.
// It panics if h is outside [0, 360].
func (c HSL) WithHue(h float32) HSL {
	must(checkChannel("colormodel.HSL.WithHue", "hue", h, 0, 360))
	c.H = h
	return c
}

// WithSaturation returns a copy of the color with the saturation set to
// s. It panics if s is outside [0, 100].
func (c HSL) WithSaturation(s float32) HSL {
	must(checkChannel("colormodel.HSL.WithSaturation", "saturation", s, 0, 100))
	c.S = s
	return c
}

// WithLightness returns a copy of the color with the lightness set to
// l. It panics if l is outside [0, 100].
func (c HSL) WithLightness(l float32) HSL {
	must(checkChannel("colormodel.HSL.WithLightness", "lightness", l, 0, 100))
	c.L = l
	return c
}

// WithAlpha returns a copy of the color with alpha set to a.
// It panics if a is outside [0, 1].
func (c HSL) WithAlpha(a float32) HSL {
	must(checkAlpha("colormodel.HSL.WithAlpha", a))
	c.Alpha = a
	return c
}

// Equal reports whether c and o have the same channel values.
// Alpha is deliberately not compared.
func (c HSL) Equal(o HSL) bool {
	return c.H == o.H && c.S == o.S && c.L == o.L
}

// IsBlack reports whether lightness is exactly 0.
func (c HSL) IsBlack() bool { return c.L == 0 }

// IsWhite reports whether lightness is exactly 100.
func (c HSL) IsWhite() bool { return c.L == 100 }

// IsMonochromatic reports whether saturation is 0, so the color is a
// pure gray with no hue.
func (c HSL) IsMonochromatic() bool { return c.S == 0 }

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g%s)", c.H, c.S, c.L, alphaString(c.Alpha))
}
