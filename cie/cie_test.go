// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/colormodel/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestSRGBLinear(t *testing.T) {
	tolassert.EqualTol(t, 0.00015479876, SRGBToLinearComp(0.002), 1e-6)
	tolassert.EqualTol(t, 0.233022, SRGBToLinearComp(0.52), 1e-5)
	tolassert.EqualTol(t, 0.01292, SRGBFromLinearComp(0.001), 1e-6)
	tolassert.EqualTol(t, 0.84338917, SRGBFromLinearComp(0.68), 1e-5)

	assert.Equal(t, float32(0), SRGBToLinearComp(0))
	assert.Equal(t, float32(0), SRGBFromLinearComp(0))
	// the endpoints are preserved up to float32 rounding
	tolassert.EqualTol(t, 1, SRGBToLinearComp(1), 1e-6)
	tolassert.EqualTol(t, 1, SRGBFromLinearComp(1), 1e-6)

	// gamma and its inverse must cancel
	for _, v := range []float32{0.01, 0.2, 0.5, 0.73, 0.99} {
		tolassert.EqualTol(t, v, SRGBFromLinearComp(SRGBToLinearComp(v)), 1e-5)
	}
}

func TestSRGBLinToXYZ(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	tolassert.Equal(t, 60.559256, x, 0.01)
	tolassert.Equal(t, 58.595021, y, 0.01)
	tolassert.Equal(t, 62.944494, z, 0.01)

	lr, lg, lb := XYZToSRGBLin(x, y, z)
	tolassert.EqualTol(t, 0.5, lr, 1e-4)
	tolassert.EqualTol(t, 0.6, lg, 1e-4)
	tolassert.EqualTol(t, 0.7, lb, 1e-4)
}

func TestWhitePoint(t *testing.T) {
	// linear RGB white must land exactly on the reference white
	x, y, z := SRGBLinToXYZ(1, 1, 1)
	tolassert.Equal(t, WhiteX, x, 0.01)
	tolassert.Equal(t, WhiteY, y, 0.01)
	tolassert.Equal(t, WhiteZ, z, 0.01)

	r, g, b := SRGBFromXYZ(WhiteX, WhiteY, WhiteZ)
	tolassert.EqualTol(t, 1, r, 1e-4)
	tolassert.EqualTol(t, 1, g, 1e-4)
	tolassert.EqualTol(t, 1, b, 1e-4)
}

func TestXYZLAB(t *testing.T) {
	l, a, b := XYZToLAB(10, 30, 50)
	tolassert.Equal(t, 61.65422, l, 0.01)
	tolassert.Equal(t, -106.53485, a, 0.01)
	tolassert.Equal(t, -29.43251, b, 0.01)

	x, y, z := LABToXYZ(28, 14, 36.2)
	tolassert.Equal(t, 7.10959, x, 0.01)
	tolassert.Equal(t, 5.45738, y, 0.01)
	tolassert.Equal(t, 0.71197, z, 0.01)

	// white round trips to L = 100, a = b = 0
	l, a, b = XYZToLAB(WhiteX, WhiteY, WhiteZ)
	tolassert.Equal(t, 100, l, 0.001)
	tolassert.Equal(t, 0, a, 0.001)
	tolassert.Equal(t, 0, b, 0.001)
}

func TestLABCompress(t *testing.T) {
	tolassert.EqualTol(t, 0.8879040, LABCompress(0.7), 1e-5)
	// below epsilon the linear segment applies
	tolassert.EqualTol(t, 0.1379544, LABCompress(0.000003), 1e-5)
	tolassert.EqualTol(t, 0.216, LABUncompress(0.6), 1e-5)

	for _, v := range []float32{0.001, 0.0088, 0.009, 0.3, 0.95} {
		tolassert.EqualTol(t, v, LABUncompress(LABCompress(v)), 1e-5)
	}
}

func TestYToL(t *testing.T) {
	tolassert.Equal(t, 21.579497, YToL(3.4), 0.01)
	tolassert.Equal(t, 2.3023315, LToY(17), 0.001)
	tolassert.Equal(t, 100, YToL(WhiteY), 0.001)
	tolassert.Equal(t, 0, YToL(0), 0.001)
}
