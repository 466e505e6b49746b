// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import "github.com/chewxy/math32"

// Transforms adjust a color by a bounded amount and return the result
// in the RGB pivot model. Unlike the constructors, transforms clamp:
// pushing lightness past its range saturates at the bound instead of
// failing, so chained adjustments are always safe.

// Lighten returns a color that is lighter by the given absolute HSL
// lightness amount (0-100, ranges enforced).
func Lighten(c Model, amount float32) RGB {
	h := c.ToHSL()
	h.L = snap(h.L+amount, 0, 100)
	return h.ToRGB()
}

// Darken returns a color that is darker by the given absolute HSL
// lightness amount (0-100, ranges enforced).
func Darken(c Model, amount float32) RGB {
	h := c.ToHSL()
	h.L = snap(h.L-amount, 0, 100)
	return h.ToRGB()
}

// Highlight returns a color that is lighter or darker by the given
// absolute HSL lightness amount (0-100, ranges enforced), making the
// color darker if it is light (lightness >= 50) and lighter otherwise.
// It is the opposite of [Samelight].
func Highlight(c Model, amount float32) RGB {
	h := c.ToHSL()
	if h.L >= 50 {
		h.L -= amount
	} else {
		h.L += amount
	}
	h.L = snap(h.L, 0, 100)
	return h.ToRGB()
}

// Samelight returns a color that is lighter or darker by the given
// absolute HSL lightness amount (0-100, ranges enforced), making the
// color lighter if it is light (lightness >= 50) and darker otherwise.
// It is the opposite of [Highlight].
func Samelight(c Model, amount float32) RGB {
	h := c.ToHSL()
	if h.L >= 50 {
		h.L += amount
	} else {
		h.L -= amount
	}
	h.L = snap(h.L, 0, 100)
	return h.ToRGB()
}

// Saturate returns a color that is more saturated by the given absolute
// HSL saturation amount (0-100, ranges enforced).
func Saturate(c Model, amount float32) RGB {
	h := c.ToHSL()
	h.S = snap(h.S+amount, 0, 100)
	return h.ToRGB()
}

// Desaturate returns a color that is less saturated by the given
// absolute HSL saturation amount (0-100, ranges enforced).
func Desaturate(c Model, amount float32) RGB {
	h := c.ToHSL()
	h.S = snap(h.S-amount, 0, 100)
	return h.ToRGB()
}

// RotateHue returns a color whose HSL hue is rotated by the given
// amount in degrees, wrapping around the hue circle in either
// direction.
func RotateHue(c Model, amount float32) RGB {
	h := c.ToHSL()
	h.H = wrapHue(h.H + amount)
	return h.ToRGB()
}

// Complement returns the color on the opposite side of the hue circle,
// with saturation and lightness unchanged.
func Complement(c Model) RGB {
	return RotateHue(c, 180)
}

// Invert returns the inverse of the given color (255 minus each RGB
// channel); it does not change the alpha channel.
func Invert(c Model) RGB {
	r := c.ToRGB()
	return RGB{255 - r.R, 255 - r.G, 255 - r.B, r.Alpha}
}

// Grayscale returns the fully desaturated version of the color, keeping
// its HSL lightness.
func Grayscale(c Model) RGB {
	h := c.ToHSL()
	h.H = 0
	h.S = 0
	return h.ToRGB()
}

// IsLight reports whether the given color is light (has an HSL
// lightness greater than or equal to 60).
func IsLight(c Model) bool {
	return c.ToHSL().L >= 60
}

// IsDark reports whether the given color is dark (has an HSL lightness
// less than 60).
func IsDark(c Model) bool {
	return !IsLight(c)
}

// ContrastColor returns the color that should be used to contrast this
// color (white or black), based on the result of [IsLight].
func ContrastColor(c Model) RGB {
	if IsLight(c) {
		return RGB{0, 0, 0, 1}
	}
	return RGB{255, 255, 255, 1}
}

// MinHueDistance finds the minimum distance between two hues in
// degrees. A positive number means add to a to get to b; a negative
// number means subtract from a to get to b.
func MinHueDistance(a, b float32) float32 {
	d1 := b - a
	d2 := (b + 360) - a
	d3 := b - (a + 360)
	d1a := math32.Abs(d1)
	d2a := math32.Abs(d2)
	d3a := math32.Abs(d3)
	if d1a < d2a && d1a < d3a {
		return d1
	}
	if d2a < d1a && d2a < d3a {
		return d2
	}
	return d3
}
