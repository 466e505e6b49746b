// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// RGB is a color in the RGB model, the pivot space that every other
// model converts through. Channels are in the 0-255 range and need not
// be integral. Alpha is in the 0-1 range.
type RGB struct {
	R, G, B float32

	// Alpha is the opacity in the 0-1 range. It is preserved by
	// conversions and excluded from [RGB.Equal].
	Alpha float32
}

// NewRGB returns a fully opaque RGB color with the given channel values
// in the 0-255 range. Out-of-range values are rejected, not clamped.
func NewRGB(r, g, b float32) (RGB, error) {
	return newRGB("colormodel.NewRGB", r, g, b, 1)
}

// MustRGB is like [NewRGB] but panics on an out-of-range channel.
func MustRGB(r, g, b float32) RGB {
	c, err := NewRGB(r, g, b)
	must(err)
	return c
}

func newRGB(fn string, r, g, b, alpha float32) (RGB, error) {
	if err := checkChannel(fn, "red", r, 0, 255); err != nil {
		return RGB{}, err
	}
	if err := checkChannel(fn, "green", g, 0, 255); err != nil {
		return RGB{}, err
	}
	if err := checkChannel(fn, "blue", b, 0, 255); err != nil {
		return RGB{}, err
	}
	if err := checkAlpha(fn, alpha); err != nil {
		return RGB{}, err
	}
	return RGB{r, g, b, alpha}, nil
}

// RGBFromSlice returns an RGB color from a slice of native-scale values:
// [r, g, b] or [r, g, b, alpha].
func RGBFromSlice(v []float32) (RGB, error) {
	const fn = "colormodel.RGBFromSlice"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return RGB{}, err
	}
	return newRGB(fn, ch[0], ch[1], ch[2], alpha)
}

// RGBExtrapolate returns an RGB color from a slice of factored (0-1
// scaled) values: [r, g, b] or [r, g, b, alpha]. Channel values are
// rescaled to the native 0-255 range; alpha is taken as is.
func RGBExtrapolate(v []float32) (RGB, error) {
	const fn = "colormodel.RGBExtrapolate"
	ch, alpha, err := splitSlice(fn, 3, v)
	if err != nil {
		return RGB{}, err
	}
	return newRGB(fn, ch[0]*255, ch[1]*255, ch[2]*255, alpha)
}

// FromHex parses a hexadecimal color string and returns the resulting
// fully opaque RGB color. The string must contain 3 or 6 hex digits,
// case-insensitive, with an optional leading '#'; the 3-digit shorthand
// duplicates each digit, so "f0a" is "ff00aa". Any other length or a
// non-hex character is an error.
func FromHex(hex string) (RGB, error) {
	const fn = "colormodel.FromHex"
	h := strings.TrimPrefix(hex, "#")
	var digits [6]uint8
	switch len(h) {
	case 3:
		for i := 0; i < 3; i++ {
			d, ok := hexDigit(h[i])
			if !ok {
				return RGB{}, fmt.Errorf("%s: invalid hex digit %q in %q", fn, h[i], hex)
			}
			digits[2*i] = d
			digits[2*i+1] = d
		}
	case 6:
		for i := 0; i < 6; i++ {
			d, ok := hexDigit(h[i])
			if !ok {
				return RGB{}, fmt.Errorf("%s: invalid hex digit %q in %q", fn, h[i], hex)
			}
			digits[i] = d
		}
	default:
		return RGB{}, fmt.Errorf("%s: need 3 or 6 hex digits, got %q", fn, hex)
	}
	r := float32(digits[0]<<4 | digits[1])
	g := float32(digits[2]<<4 | digits[3])
	b := float32(digits[4]<<4 | digits[5])
	return RGB{r, g, b, 1}, nil
}

// MustFromHex is like [FromHex] but panics on a malformed string.
func MustFromHex(hex string) RGB {
	c, err := FromHex(hex)
	must(err)
	return c
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// AsHex returns the canonical 6-digit lowercase hexadecimal form of the
// color, without a '#' prefix, rounding each channel to the nearest
// integer. Alpha is not included.
func (c RGB) AsHex() string {
	return fmt.Sprintf("%02x%02x%02x",
		uint8(math32.Round(c.R)), uint8(math32.Round(c.G)), uint8(math32.Round(c.B)))
}

// MarshalText implements [encoding.TextMarshaler] using [RGB.AsHex].
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.AsHex()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [FromHex].
func (c *RGB) UnmarshalText(text []byte) error {
	nc, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*c = nc
	return nil
}

// ToRGB returns the color itself, satisfying [Model].
func (c RGB) ToRGB() RGB { return c }

// Channels returns [r, g, b] on the native 0-255 scale, without alpha.
func (c RGB) Channels() []float32 { return []float32{c.R, c.G, c.B} }

// AsSlice returns [r, g, b] on the native 0-255 scale.
func (c RGB) AsSlice() []float32 { return c.Channels() }

// AsSliceAlpha returns [r, g, b, alpha], with channels on the native
// 0-255 scale and alpha on its 0-1 scale.
func (c RGB) AsSliceAlpha() []float32 { return []float32{c.R, c.G, c.B, c.Alpha} }

// AsFactored returns [r, g, b] scaled to the 0-1 range.
func (c RGB) AsFactored() []float32 {
	return []float32{c.R / 255, c.G / 255, c.B / 255}
}

// AsFactoredAlpha returns [r, g, b, alpha], all in the 0-1 range.
func (c RGB) AsFactoredAlpha() []float32 {
	return []float32{c.R / 255, c.G / 255, c.B / 255, c.Alpha}
}

// WithRed returns a copy of the color with the red channel set to r.
// It panics if r is outside [0, 255].
func (c RGB) WithRed(r float32) RGB {
	must(checkChannel("colormodel.RGB.WithRed", "red", r, 0, 255))
	c.R = r
	return c
}

// WithGreen returns a copy of the color with the green channel set to g.
// It panics if g is outside [0, 255].
func (c RGB) WithGreen(g float32) RGB {
	must(checkChannel("colormodel.RGB.WithGreen", "green", g, 0, 255))
	c.G = g
	return c
}

// WithBlue returns a copy of the color with the blue channel set to b.
// It panics if b is outside [0, 255].
func (c RGB) WithBlue(b float32) RGB {
	must(checkChannel("colormodel.RGB.WithBlue", "blue", b, 0, 255))
	c.B = b
	return c
}

// WithAlpha returns a copy of the color with alpha set to a.
// It panics if a is outside [0, 1].
func (c RGB) WithAlpha(a float32) RGB {
	must(checkAlpha("colormodel.RGB.WithAlpha", a))
	c.Alpha = a
	return c
}

// Equal reports whether c and o have the same channel values.
// Alpha is deliberately not compared: two colors that differ only in
// opacity are equal.
func (c RGB) Equal(o RGB) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// IsBlack reports whether all channels are exactly 0.
func (c RGB) IsBlack() bool { return c.R == 0 && c.G == 0 && c.B == 0 }

// IsWhite reports whether all channels are exactly 255.
func (c RGB) IsWhite() bool { return c.R == 255 && c.G == 255 && c.B == 255 }

// IsMonochromatic reports whether all channels are equal, so that the
// color is a pure gray with no hue.
func (c RGB) IsMonochromatic() bool { return c.R == c.G && c.G == c.B }

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g%s)", c.R, c.G, c.B, alphaString(c.Alpha))
}
