// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// Reference white of the library, on the XYZ 0-100 scale.
// This is not a standard CIE illuminant: it is the white point
// calibrated for the RGB primaries used here, and RGB white maps
// to exactly these coordinates.
const (
	WhiteX = 105.21266389510953
	WhiteY = 100.0000000000007
	WhiteZ = 91.82249511582535
)

// Forward matrix from linear RGB to XYZ on the 0-100 scale.
// These are the sRGB primaries rescaled per row so that
// RGB white lands exactly on the reference white.
var srgbToXYZ = [3][3]float32{
	{45.65702924, 39.58203207, 19.97360258},
	{21.26728787, 71.51521285, 7.21749928},
	{1.63045373, 10.05162132, 80.14042007},
}

var xyzToSRGB = [3][3]float32{
	{0.0292736159, -0.0153713900, -0.0059115809},
	{-0.0087561572, 0.0187601112, 0.0004927715},
	{0.0005026714, -0.0020402587, 0.0125365628},
}

// SRGBLinToXYZ converts linear RGB values in the 0-1 range to XYZ
// coordinates on the 0-100 scale, where the reference white is
// (WhiteX, WhiteY, WhiteZ).
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = srgbToXYZ[0][0]*rl + srgbToXYZ[0][1]*gl + srgbToXYZ[0][2]*bl
	y = srgbToXYZ[1][0]*rl + srgbToXYZ[1][1]*gl + srgbToXYZ[1][2]*bl
	z = srgbToXYZ[2][0]*rl + srgbToXYZ[2][1]*gl + srgbToXYZ[2][2]*bl
	return
}

// XYZToSRGBLin converts XYZ coordinates on the 0-100 scale to linear
// RGB values. The results are not clamped: out-of-gamut XYZ
// coordinates produce linear values outside the 0-1 range.
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = xyzToSRGB[0][0]*x + xyzToSRGB[0][1]*y + xyzToSRGB[0][2]*z
	gl = xyzToSRGB[1][0]*x + xyzToSRGB[1][1]*y + xyzToSRGB[1][2]*z
	bl = xyzToSRGB[2][0]*x + xyzToSRGB[2][1]*y + xyzToSRGB[2][2]*z
	return
}

// SRGBToXYZ converts gamma-corrected sRGB values in the 0-1 range
// to XYZ coordinates on the 0-100 scale.
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	return SRGBLinToXYZ(SRGBToLinear(r, g, b))
}

// SRGBFromXYZ converts XYZ coordinates on the 0-100 scale to
// gamma-corrected sRGB values, clamping the linear intermediates to
// the 0-1 range so that out-of-gamut coordinates land on the nearest
// face of the RGB cube.
func SRGBFromXYZ(x, y, z float32) (r, g, b float32) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	return SRGBFromLinear(clamp01(rl), clamp01(gl), clamp01(bl))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
