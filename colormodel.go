// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Model is the conversion capability shared by every color model value.
// All eight concrete types implement it. Conversions allocate a new
// value and preserve alpha.
type Model interface {
	ToRGB() RGB
	ToXYZ() XYZ
	ToLAB() LAB
	ToCMYK() CMYK
	ToHSB() HSB
	ToHSI() HSI
	ToHSL() HSL
	ToHSP() HSP

	// Channels returns the native-scale channel values in model order,
	// without alpha.
	Channels() []float32

	// String returns the functional-form representation of the color,
	// such as "rgb(255, 0, 0)".
	fmt.Stringer
}

// Conversion factories: each returns the given color expressed in the
// named model, delegating to the source's own conversion.

func RGBFrom(m Model) RGB   { return m.ToRGB() }
func XYZFrom(m Model) XYZ   { return m.ToXYZ() }
func LABFrom(m Model) LAB   { return m.ToLAB() }
func CMYKFrom(m Model) CMYK { return m.ToCMYK() }
func HSBFrom(m Model) HSB   { return m.ToHSB() }
func HSIFrom(m Model) HSI   { return m.ToHSI() }
func HSLFrom(m Model) HSL   { return m.ToHSL() }
func HSPFrom(m Model) HSP   { return m.ToHSP() }

// checkChannel verifies that a channel value is a number within
// [lo, hi]. fn is the package-qualified function name for the error.
func checkChannel(fn, name string, v, lo, hi float32) error {
	if math32.IsNaN(v) || v < lo || v > hi {
		return fmt.Errorf("%s: %s channel %g out of range [%g, %g]", fn, name, v, lo, hi)
	}
	return nil
}

// checkNonNeg verifies that a channel with no upper bound is a
// non-negative number.
func checkNonNeg(fn, name string, v float32) error {
	if math32.IsNaN(v) || math32.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%s: %s channel %g must be a non-negative number", fn, name, v)
	}
	return nil
}

// checkFinite verifies that an unbounded channel value is a real number.
func checkFinite(fn, name string, v float32) error {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return fmt.Errorf("%s: %s channel %g is not a finite number", fn, name, v)
	}
	return nil
}

func checkAlpha(fn string, a float32) error {
	if math32.IsNaN(a) || a < 0 || a > 1 {
		return fmt.Errorf("%s: alpha %g out of range [0, 1]", fn, a)
	}
	return nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// splitSlice performs the shape check shared by the FromSlice and
// Extrapolate factories: v must have exactly arity elements, or arity+1
// with a trailing alpha. The length is checked before any value is
// inspected. alpha defaults to 1 when absent.
func splitSlice(fn string, arity int, v []float32) (chans []float32, alpha float32, err error) {
	switch len(v) {
	case arity:
		return v, 1, nil
	case arity + 1:
		return v[:arity], v[arity], nil
	}
	return nil, 0, fmt.Errorf("%s: need %d or %d values, got %d", fn, arity, arity+1, len(v))
}

// wrapHue folds a hue in degrees into [0, 360).
func wrapHue(h float32) float32 {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// snap absorbs floating-point dust on conversion results: values within
// rounding distance of the domain bounds are pulled onto them. This is
// not gamut mapping; in-domain inputs always stay in domain.
func snap(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// nonNeg zeroes tiny negative conversion results for channels whose
// domain has no upper bound.
func nonNeg(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

// alphaString formats the trailing alpha argument of a String method,
// omitting it entirely for fully opaque colors.
func alphaString(a float32) string {
	if a == 1 {
		return ""
	}
	return fmt.Sprintf(", %g", a)
}
