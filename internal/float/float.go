// seehuhn.de/go/pdfium - a safe wrapper around native PDF page objects
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package float converts between the single precision values used by the
// native library and the float64 values used by Go code.
package float

import (
	"regexp"
	"strconv"
	"strings"
)

// Widen converts x to the float64 with the shortest decimal representation
// which rounds to x in single precision.  For example, float32(0.1) becomes
// 0.1 instead of 0.10000000149011612.
func Widen(x float32) float64 {
	s := strconv.FormatFloat(float64(x), 'g', -1, 32)
	y, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// The output of FormatFloat always parses.
		return float64(x)
	}
	return y
}

// Narrow converts x to single precision.
func Narrow(x float64) float32 {
	return float32(x)
}

// Format formats x with at most the given number of digits after the
// decimal point.  Trailing zeros are removed.
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

// FormatList formats the values using [Format] and joins them with
// single spaces.
func FormatList(precision int, xx ...float64) string {
	parts := make([]string, len(xx))
	for i, x := range xx {
		parts[i] = Format(x, precision)
	}
	return strings.Join(parts, " ")
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
