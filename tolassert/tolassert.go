// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, approximate equality).
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal checks that the given actual value is within 0.001 of the
// given expected value. A different tolerance can be passed as the
// final argument.
func Equal(t *testing.T, expected, actual float32, tols ...float32) bool {
	t.Helper()
	tol := float32(0.001)
	if len(tols) > 0 {
		tol = tols[0]
	}
	return assert.InDelta(t, expected, actual, float64(tol))
}

// EqualTol checks that the given actual value is within the given
// tolerance of the given expected value.
func EqualTol(t *testing.T, expected, actual, tol float32) bool {
	t.Helper()
	return assert.InDelta(t, expected, actual, float64(tol))
}

// EqualSlice checks that each element of the given actual slice is
// within 0.001 of the corresponding expected element. A different
// tolerance can be passed as the final argument.
func EqualSlice(t *testing.T, expected, actual []float32, tols ...float32) bool {
	t.Helper()
	if !assert.Equal(t, len(expected), len(actual)) {
		return false
	}
	res := true
	for i := range expected {
		if !Equal(t, expected[i], actual[i], tols...) {
			res = false
		}
	}
	return res
}
