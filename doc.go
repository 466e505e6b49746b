// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormodel provides immutable color value types for the RGB,
// CMYK, HSI, HSB, HSL, HSP, LAB, and XYZ color models, with conversions
// between every pair of models.
//
// Conversions are routed hub-and-spoke: every model defines its own
// conversion to and from [RGB], and all other conversions go through that
// pivot (LAB additionally converts directly to and from [XYZ]). Adding a
// model therefore only requires its two RGB formulas.
//
// All values are immutable: With* methods and conversions return new
// values and never mutate in place, so values are safe to share between
// goroutines without locking.
//
// Every model carries an alpha channel in the 0-1 range, defaulting to 1
// (fully opaque). Alpha is preserved by conversions but is deliberately
// excluded from Equal: two colors that differ only in opacity compare
// equal. Callers that care about opacity must compare Alpha separately.
//
// Channel values are validated at construction and in With* methods;
// out-of-range values are rejected, never clamped. The error-returning
// constructors (New*, *FromSlice, *Extrapolate, FromHex, FromString)
// report violations; the Must* forms and the With* methods panic, as
// out-of-range literals are programmer errors.
package colormodel
