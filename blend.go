// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

// Blend returns a color that is the given percent blend between the
// first and second color: 10 = 10% of the second and 90% of the first.
// Blending is done channel-wise on non-premultiplied RGB values,
// including alpha.
func Blend(pct float32, x, y Model) RGB {
	a := x.ToRGB()
	b := y.ToRGB()
	pct = snap(pct, 0, 100)
	oth := pct / 100
	me := 1 - oth
	return RGB{
		me*a.R + oth*b.R,
		me*a.G + oth*b.G,
		me*a.B + oth*b.B,
		me*a.Alpha + oth*b.Alpha,
	}
}

// BlendHSL is like [Blend] but interpolates in HSL space, taking the
// shortest path around the hue circle via [MinHueDistance]. It gives
// more vivid intermediates than RGB blending for colors on opposite
// sides of the hue circle.
func BlendHSL(pct float32, x, y Model) RGB {
	a := x.ToHSL()
	b := y.ToHSL()
	pct = snap(pct, 0, 100)
	oth := pct / 100
	me := 1 - oth
	h := wrapHue(a.H + oth*MinHueDistance(a.H, b.H))
	// hue is meaningless for gray endpoints; hold the other hue
	if a.S == 0 {
		h = b.H
	} else if b.S == 0 {
		h = a.H
	}
	return HSL{
		h,
		me*a.S + oth*b.S,
		me*a.L + oth*b.L,
		me*a.Alpha + oth*b.Alpha,
	}.ToRGB()
}
