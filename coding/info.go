// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

// BCH generator polynomials and format information mask.
const (
	g15     = 0b101_0011_0111      // x¹⁰+x⁸+x⁵+x⁴+x²+x+1
	g18     = 0b1_1111_0010_0101   // x¹²+x¹¹+x¹⁰+x⁹+x⁸+x⁵+x²+1
	g15Mask = 0b101_0100_0001_0010 // format information XOR mask
)

// bchRemainder returns the remainder of d divided by the generator g
// over GF(2).
func bchRemainder(d, g uint32) uint32 {
	ng := bits.Len32(g)
	for n := bits.Len32(d); n >= ng; n = bits.Len32(d) {
		d ^= g << (n - ng)
	}
	return d
}

// FormatBits returns the 15 bit format information for level l and
// mask pattern mask: a BCH(15,5) code masked with 0x5412.
func FormatBits(l Level, mask Mask) int {
	d := uint32(l.Bits()<<3|int(mask)&7) << 10
	return int((d | bchRemainder(d, g15)) ^ g15Mask)
}

// VersionBits returns the 18 bit version information for version v:
// a BCH(18,6) code.
func VersionBits(v Version) int {
	d := uint32(v) << 12
	return int(d | bchRemainder(d, g18))
}

// drawFormat writes format information for level l and mask pattern
// mask around the top left finder pattern and split between the top
// right and bottom left ones, and sets the dark module.
func drawFormat(m *BitMatrix, l Level, mask Mask) {
	siz := m.size
	fb := FormatBits(l, mask)
	for i := 0; i < 15; i++ {
		dark := fb>>i&1 != 0
		// vertical
		switch {
		case i < 6:
			m.Set(i, 8, dark, true)
		case i < 8:
			m.Set(i+1, 8, dark, true)
		default:
			m.Set(siz-15+i, 8, dark, true)
		}
		// horizontal
		switch {
		case i < 8:
			m.Set(8, siz-i-1, dark, true)
		case i < 9:
			m.Set(8, 15-i, dark, true)
		default:
			m.Set(8, 14-i, dark, true)
		}
	}
	// dark module
	m.Set(siz-8, 8, true, true)
}

// drawVersion writes version information for versions 7 and up into
// the 6x3 blocks next to the top right and bottom left finder
// patterns.
func drawVersion(m *BitMatrix, v Version) {
	if v < 7 {
		return
	}
	siz := m.size
	vb := VersionBits(v)
	for i := 0; i < 18; i++ {
		dark := vb>>i&1 != 0
		row, col := i/3, i%3+siz-11
		m.Set(row, col, dark, true)
		m.Set(col, row, dark, true)
	}
}
