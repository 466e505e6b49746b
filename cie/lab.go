// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

// CIE L*a*b* transfer function constants.
const (
	// Epsilon is the threshold between the linear and cube-root
	// segments of the transfer function.
	Epsilon = 0.008856

	// Kappa is the slope of the linear segment.
	Kappa = 903.3
)

// LABCompress applies the L*a*b* transfer function to a
// white-point-relative XYZ component: cube root above Epsilon,
// linear below.
func LABCompress(t float32) float32 {
	if t > Epsilon {
		return math32.Cbrt(t)
	}
	return (Kappa*t + 16) / 116
}

// LABUncompress inverts [LABCompress].
func LABUncompress(f float32) float32 {
	t := f * f * f
	if t > Epsilon {
		return t
	}
	return (116*f - 16) / Kappa
}

// XYZToLAB converts XYZ coordinates on the 0-100 scale to L*a*b*,
// relative to the reference white.
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	fx := LABCompress(x / WhiteX)
	fy := LABCompress(y / WhiteY)
	fz := LABCompress(z / WhiteZ)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts L*a*b* values to XYZ coordinates on the 0-100
// scale, relative to the reference white.
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteX
	y = LABUncompress(fy) * WhiteY
	z = LABUncompress(fz) * WhiteZ
	return
}

// YToL converts a luminance Y value on the 0-100 scale to L*.
func YToL(y float32) float32 {
	return 116*LABCompress(y/WhiteY) - 16
}

// LToY converts an L* value to luminance Y on the 0-100 scale.
func LToY(l float32) float32 {
	return LABUncompress((l+16)/116) * WhiteY
}
