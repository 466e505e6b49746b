// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import "fmt"

// HSB is a color in the hue-saturation-brightness model (also known as
// HSV). Hue is in degrees in the 0-360 range; saturation and brightness
// are in the 0-100 range. Brightness is the brightest RGB channel.
type HSB struct {
	H, S, B float32

	// Alpha is the opacity in the 0-1 range. It is preserved by
	// conversions and excluded from [HSB.Equal].
	Alpha float32
}

// NewHSB returns a fully opaque HSB color. Hue must be in the 0-360
// range; saturation and brightness in the 0-100 range.
func NewHSB(h, s, b float32) (HSB, error) {
	return newHSB("colormodel.NewHSB", h, s, b, 1)
}

// MustHSB is like [NewHSB] but panics on an out-of-range channel.
func MustHSB(h, s, b float32) HSB {
	c, err := NewHSB(h, s, b)
	must(err)
	return c
}

func newHSB(fn string, h, s, b, alpha float32) (HSB, error) {
	if err := checkChannel(fn, "hue", h, 0, 360); err != nil {
		return HSB{}, err
	}
	if err := checkChannel(fn, "saturation", s, 0, 100); err != nil {
		return HSB{}, err
	}
	if err := checkChannel(fn, "brightness", b, 0, 100); err != nil {
		return HSB{}, err
	}
	if err := checkAlpha(fn, alpha); err != nil {
		return HSB{}, err
	}
	return HSB{h, s, b, alpha}, nil
}

// HSBFromSlice returns an HSB color from a slice of native-scale
// values: [h, s, b] or [h, s, b, alpha].
func HSBFromSlice(v []float32) (HSB, error) {
	const fn = "colormodel.HSBFromSlice"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return HSB{}, err
	}
	return newHSB(fn, ch[0], ch[1], ch[2], alpha)
}

// HSBExtrapolate returns an HSB color from a slice of factored (0-1
// scaled) values: [h, s, b] or [h, s, b, alpha]. Hue is scaled by 360,
// saturation and brightness by 100.
func HSBExtrapolate(v []float32) (HSB, error) {
	const fn = "colormodel.HSBExtrapolate"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return HSB{}, err
	}
	return newHSB(fn, ch[0]*360, ch[1]*100, ch[2]*100, alpha)
}

// ToHSB converts to the HSB model. Grays have hue and saturation 0;
// black also has saturation 0.
func (c RGB) ToHSB() HSB {
	r := c.R / 255
	g := c.G / 255
	b := c.B / 255
	mx := max(r, g, b)
	mn := min(r, g, b)
	d := mx - mn
	var h, s float32
	switch {
	case d == 0:
		h = 0
	case mx == r:
		h = wrapHue(60 * (g - b) / d)
	case mx == g:
		h = 60*(b-r)/d + 120
	default:
		h = 60*(r-g)/d + 240
	}
	if mx > 0 {
		s = d / mx
	}
	return HSB{h, snap(s*100, 0, 100), snap(mx*100, 0, 100), c.Alpha}
}

// ToRGB converts to the RGB pivot model using the standard sector
// formula.
func (c HSB) ToRGB() RGB {
	s := c.S / 100
	v := c.B / 100
	h := wrapHue(c.H) / 60
	i := int(h) % 6
	f := h - float32(int(h))
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float32
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB{snap(r*255, 0, 255), snap(g*255, 0, 255), snap(b*255, 0, 255), c.Alpha}
}

// ToHSB returns the color itself, satisfying [Model].
func (c HSB) ToHSB() HSB { return c }

func (c HSB) ToXYZ() XYZ   { return c.ToRGB().ToXYZ() }
func (c HSB) ToLAB() LAB   { return c.ToRGB().ToLAB() }
func (c HSB) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }
func (c HSB) ToHSI() HSI   { return c.ToRGB().ToHSI() }
func (c HSB) ToHSL() HSL   { return c.ToRGB().ToHSL() }
func (c HSB) ToHSP() HSP   { return c.ToRGB().ToHSP() }

// Channels returns [h, s, b] on the native scale, without alpha.
func (c HSB) Channels() []float32 { return []float32{c.H, c.S, c.B} }

// AsSlice returns [h, s, b] on the native scale.
func (c HSB) AsSlice() []float32 { return c.Channels() }

// AsSliceAlpha returns [h, s, b, alpha].
func (c HSB) AsSliceAlpha() []float32 { return []float32{c.H, c.S, c.B, c.Alpha} }

// AsFactored returns [h/360, s/100, b/100].
func (c HSB) AsFactored() []float32 {
	return []float32{c.H / 360, c.S / 100, c.B / 100}
}

// AsFactoredAlpha returns [h/360, s/100, b/100, alpha].
func (c HSB) AsFactoredAlpha() []float32 {
	return []float32{c.H / 360, c.S / 100, c.B / 100, c.Alpha}
}

// WithHue returns a copy of the color with the hue set to h.
// It panics if h is outside [0, 360].
func (c HSB) WithHue(h float32) HSB {
	must(checkChannel("colormodel.HSB.WithHue", "hue", h, 0, 360))
	c.H = h
	return c
}

// WithSaturation returns a copy of the color with the saturation set to
// s. It panics if s is outside [0, 100].
func (c HSB) WithSaturation(s float32) HSB {
	must(checkChannel("colormodel.HSB.WithSaturation", "saturation", s, 0, 100))
	c.S = s
	return c
}

// WithBrightness returns a copy of the color with the brightness set to
// b. It panics if b is outside [0, 100].
func (c HSB) WithBrightness(b float32) HSB {
	must(checkChannel("colormodel.HSB.WithBrightness", "brightness", b, 0, 100))
	c.B = b
	return c
}

// WithAlpha returns a copy of the color with alpha set to a.
// It panics if a is outside [0, 1].
func (c HSB) WithAlpha(a float32) HSB {
	must(checkAlpha("colormodel.HSB.WithAlpha", a))
	c.Alpha = a
	return c
}

// Equal reports whether c and o have the same channel values.
// Alpha is deliberately not compared.
func (c HSB) Equal(o HSB) bool {
	return c.H == o.H && c.S == o.S && c.B == o.B
}

// IsBlack reports whether brightness is exactly 0.
func (c HSB) IsBlack() bool { return c.B == 0 }

// IsWhite reports whether saturation is exactly 0 and brightness is
// exactly 100.
func (c HSB) IsWhite() bool { return c.S == 0 && c.B == 100 }

// IsMonochromatic reports whether saturation is 0, so the color is a
// pure gray with no hue.
func (c HSB) IsMonochromatic() bool { return c.S == 0 }

func (c HSB) String() string {
	return fmt.Sprintf("hsb(%g, %g, %g%s)", c.H, c.S, c.B, alphaString(c.Alpha))
}
