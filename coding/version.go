// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Capacity returns the number of characters of the given mode that fit
// in a single segment of a QR code with the given version and level.
// For Mixed, Capacity returns the number of data bits available to
// any number of segments, including their headers.  Capacity returns
// 0 for invalid arguments.
func Capacity(v Version, l Level, mode Mode) int {
	if !v.IsValid() || !l.IsValid() {
		return 0
	}
	bits := v.DataBits(l)
	if mode == Mixed {
		return bits
	}
	if !mode.IsValid() || mode == StructuredAppend {
		return 0
	}
	usable := bits - mode.HeaderBits(v)
	switch mode {
	case Numeric:
		return usable * 3 / 10
	case Alphanumeric:
		return usable * 2 / 11
	case Kanji:
		return usable / 13
	default:
		return usable / 8
	}
}
