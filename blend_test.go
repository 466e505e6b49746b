// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"testing"

	"cogentcore.org/colormodel/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestBlend(t *testing.T) {
	white := RGB{255, 255, 255, 1}
	black := RGB{0, 0, 0, 1}

	mid := Blend(50, white, black)
	tolassert.EqualSlice(t, []float32{127.5, 127.5, 127.5}, mid.AsSlice())

	// 0 is all of the first color, 100 all of the second
	assert.Equal(t, white, Blend(0, white, black))
	assert.Equal(t, black, Blend(100, white, black))

	// out-of-range percentages clamp
	assert.Equal(t, white, Blend(-20, white, black))
	assert.Equal(t, black, Blend(150, white, black))

	got := Blend(25, RGB{0, 0, 0, 0}, RGB{200, 100, 40, 1})
	tolassert.EqualSlice(t, []float32{50, 25, 10, 0.25}, got.AsSliceAlpha())
}

func TestBlendHSL(t *testing.T) {
	red := RGB{255, 0, 0, 1}
	blue := RGB{0, 0, 255, 1}

	// shortest path from hue 0 to hue 240 goes backward through magenta
	got := BlendHSL(50, red, blue).ToHSL()
	tolassert.Equal(t, 300, got.H, 0.5)
	tolassert.Equal(t, 100, got.S, 0.5)

	// the endpoints survive the trip through HSL up to rounding dust
	tolassert.EqualSlice(t, red.AsSlice(), BlendHSL(0, red, blue).AsSlice(), 0.01)
	tolassert.EqualSlice(t, blue.AsSlice(), BlendHSL(100, red, blue).AsSlice(), 0.01)

	// a gray endpoint has no hue of its own and takes the other's
	gray := RGB{128, 128, 128, 1}
	got = BlendHSL(50, gray, blue).ToHSL()
	tolassert.Equal(t, 240, got.H, 0.5)
}
