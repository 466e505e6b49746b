// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stdcolor adapts the colormodel value types to the standard
// library [image/color] types. The core colormodel package has no
// dependency on image/color; every model reaches the standard types by
// pivoting through [colormodel.RGB] here.
package stdcolor

import (
	"image/color"

	"cogentcore.org/colormodel"
)

// FromColor converts any [color.Color] to a [colormodel.RGB],
// un-premultiplying the alpha that color.Color carries.
func FromColor(c color.Color) colormodel.RGB {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return colormodel.RGB{Alpha: 0}
	}
	fa := float32(a) / 65535
	return colormodel.RGB{
		R:     float32(r) / 65535 / fa * 255,
		G:     float32(g) / 65535 / fa * 255,
		B:     float32(b) / 65535 / fa * 255,
		Alpha: fa,
	}
}

// ToRGBA returns the color as a standard alpha-premultiplied
// [color.RGBA].
func ToRGBA(m colormodel.Model) color.RGBA {
	c := m.ToRGB()
	return color.RGBA{
		R: uint8(c.R/255*c.Alpha*255 + 0.5),
		G: uint8(c.G/255*c.Alpha*255 + 0.5),
		B: uint8(c.B/255*c.Alpha*255 + 0.5),
		A: uint8(c.Alpha*255 + 0.5),
	}
}

// ToNRGBA returns the color as a standard non-premultiplied
// [color.NRGBA].
func ToNRGBA(m colormodel.Model) color.NRGBA {
	c := m.ToRGB()
	return color.NRGBA{
		R: uint8(c.R + 0.5),
		G: uint8(c.G + 0.5),
		B: uint8(c.B + 0.5),
		A: uint8(c.Alpha*255 + 0.5),
	}
}

// Color wraps a [colormodel.Model] so it can be used wherever a
// standard [color.Color] is expected. The RGBA method premultiplies by
// alpha at that point, matching the color.Color contract.
type Color struct {
	colormodel.Model
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	v := c.ToRGB()
	r = uint32(v.R/255*v.Alpha*65535 + 0.5)
	g = uint32(v.G/255*v.Alpha*65535 + 0.5)
	b = uint32(v.B/255*v.Alpha*65535 + 0.5)
	a = uint32(v.Alpha*65535 + 0.5)
	return
}

// Model is the standard [color.Model] converting any color.Color to a
// [Color] holding a [colormodel.RGB].
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	return Color{FromColor(c)}
}
