// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
	"strings"
)

// A Mode is a QR segment encoding mode.
type Mode int8

// Encoding modes.  Auto is the zero Mode: where a Mode is a hint, it
// selects the best mode for the data.  Mixed is not a segment mode; it
// requests raw data capacity from Capacity.
const (
	Auto             Mode = iota // detect from data
	Numeric                      // digits 0-9
	Alphanumeric                 // 0-9 A-Z SPACE $%*+-./:
	Byte                         // any data
	Kanji                        // Shift JIS double byte characters
	StructuredAppend             // structured append header
	Mixed                        // several segments of any mode
)

var modeTab = [...]struct {
	name      string
	indicator int    // 4 bit mode indicator
	count     [3]int // character count indicator bits per size class
}{
	Auto:             {"auto", -1, [3]int{}},
	Numeric:          {"numeric", 1, [3]int{10, 12, 14}},
	Alphanumeric:     {"alphanumeric", 2, [3]int{9, 11, 13}},
	Byte:             {"byte", 4, [3]int{8, 16, 16}},
	Kanji:            {"kanji", 8, [3]int{8, 10, 12}},
	StructuredAppend: {"structured-append", 3, [3]int{0, 0, 0}},
	Mixed:            {"mixed", -1, [3]int{}},
}

func (m Mode) String() string {
	if 0 <= m && int(m) < len(modeTab) {
		return modeTab[m].name
	}
	return strconv.Itoa(int(m))
}

// IsValid reports whether m is a segment encoding mode.
func (m Mode) IsValid() bool { return Numeric <= m && m <= StructuredAppend }

// Indicator returns the 4 bit mode indicator for m, or -1 if m is not
// a segment encoding mode.  The indicators of Numeric, Alphanumeric,
// Byte and Kanji increase with the range of encodable characters.
func (m Mode) Indicator() int {
	if m.IsValid() {
		return modeTab[m].indicator
	}
	return -1
}

// CountBits returns the length of the character count indicator for
// m in version v.
func (m Mode) CountBits(v Version) int {
	if !m.IsValid() {
		return 0
	}
	return modeTab[m].count[v.SizeClass()]
}

// HeaderBits returns the length of the segment header for m in
// version v: the mode indicator and the character count indicator.
func (m Mode) HeaderBits(v Version) int { return 4 + m.CountBits(v) }

// DataBits returns the encoded length in bits of n characters in mode
// m, excluding the header.  For StructuredAppend n is ignored.
func (m Mode) DataBits(n int) int {
	switch m {
	case Numeric:
		return 10*(n/3) + [3]int{0, 4, 7}[n%3]
	case Alphanumeric:
		return 11*(n/2) + 6*(n%2)
	case Byte:
		return 8 * n
	case Kanji:
		return 13 * n
	case StructuredAppend:
		return 16
	}
	return 0
}

// ParseMode parses the name of a segment encoding mode, regardless of
// case.  Both "structuredappend" and "structured-append" are accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "numeric":
		return Numeric, nil
	case "alphanumeric":
		return Alphanumeric, nil
	case "byte":
		return Byte, nil
	case "kanji":
		return Kanji, nil
	case "structuredappend", "structured-append":
		return StructuredAppend, nil
	}
	return Auto, fmt.Errorf("%w: unknown mode %q", ErrDomain, s)
}

// ModeFrom is like ParseMode, but returns def if s is not valid.
func ModeFrom(s string, def Mode) Mode {
	if m, err := ParseMode(s); err == nil {
		return m
	}
	return def
}
