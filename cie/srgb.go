// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie implements the scalar colorimetric math behind the colormodel
// value types: the sRGB transfer function, the calibrated RGB to XYZ matrix,
// and the L*a*b* transfer functions.
package cie

import "github.com/chewxy/math32"

// SRGBToLinearComp converts a gamma-corrected sRGB component
// in the 0-1 range to its linear form.
func SRGBToLinearComp(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear component in the 0-1 range
// to its gamma-corrected sRGB form.
func SRGBFromLinearComp(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, 1.0/2.4) - 0.055
}

// SRGBToLinear converts gamma-corrected sRGB values in the 0-1 range
// to linear values.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts linear values in the 0-1 range
// to gamma-corrected sRGB values.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}
