// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FromString returns a color value from the given string, in the model
// the string names. It accepts the following forms:
//   - hex values, with or without a leading '#': "#f00", "ff0000"
//   - CSS standard color names: "rebeccapurple"
//   - functional forms naming any model: "rgb(255, 0, 0)",
//     "cmyk(0, 100, 100, 0)", "hsb(0, 100, 100)" (or "hsv"),
//     "hsi(...)", "hsl(...)", "hsp(...)", "lab(...)", "xyz(...)",
//     each with an optional trailing alpha argument in the 0-1 range
//
// Channel values in functional forms are native-scale and may be
// fractional. Parsing is case-insensitive.
func FromString(str string) (Model, error) {
	const fn = "colormodel.FromString"
	s := strings.ToLower(strings.TrimSpace(str))
	if s == "" {
		return nil, errors.New(fn + ": empty string")
	}
	if s[0] == '#' {
		c, err := FromHex(s)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	if i := strings.IndexByte(s, '('); i > 0 && strings.HasSuffix(s, ")") {
		vals, err := parseArgs(fn, s[i+1:len(s)-1])
		if err != nil {
			return nil, err
		}
		var m Model
		switch kind := strings.TrimSpace(s[:i]); kind {
		case "rgb", "rgba":
			m, err = RGBFromSlice(vals)
		case "cmyk":
			m, err = CMYKFromSlice(vals)
		case "hsb", "hsv":
			m, err = HSBFromSlice(vals)
		case "hsi":
			m, err = HSIFromSlice(vals)
		case "hsl", "hsla":
			m, err = HSLFromSlice(vals)
		case "hsp":
			m, err = HSPFromSlice(vals)
		case "lab":
			m, err = LABFromSlice(vals)
		case "xyz":
			m, err = XYZFromSlice(vals)
		default:
			return nil, fmt.Errorf("%s: unknown color model %q", fn, kind)
		}
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	if c, ok := Map[s]; ok {
		return c, nil
	}
	if c, err := FromHex(s); err == nil {
		return c, nil
	}
	return nil, fmt.Errorf("%s: unrecognized color %q", fn, str)
}

// MustFromString is like [FromString] but panics on an unrecognized or
// invalid string.
func MustFromString(str string) Model {
	m, err := FromString(str)
	must(err)
	return m
}

func parseArgs(fn, s string) ([]float32, error) {
	parts := strings.Split(s, ",")
	vals := make([]float32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("%s: bad channel value %q: %w", fn, strings.TrimSpace(p), err)
		}
		vals[i] = float32(v)
	}
	return vals, nil
}
