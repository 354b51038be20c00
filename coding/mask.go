// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/bits-and-blooms/bitset"

// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██

// MaskAt reports whether mask pattern p inverts the module at row i,
// column j.  MaskAt panics if p is not a valid Mask.
func MaskAt(p Mask, i, j int) bool {
	switch p {
	case 0:
		return (i+j)%2 == 0
	case 1:
		return i%2 == 0
	case 2:
		return j%3 == 0
	case 3:
		return (i+j)%3 == 0
	case 4:
		return (i/2+j/3)%2 == 0
	case 5:
		return i*j%2+i*j%3 == 0
	case 6:
		return (i*j%2+i*j%3)%2 == 0
	case 7:
		return (i*j%3+(i+j)%2)%2 == 0
	}
	panic(ErrMask)
}

// maskSet returns the modules of a size×size grid inverted by mask
// pattern p.
func maskSet(size int, p Mask) *bitset.BitSet {
	b := bitset.New(uint(size * size))
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if MaskAt(p, i, j) {
				b.Set(uint(i*size + j))
			}
		}
	}
	return b
}

// ApplyMask inverts the unreserved modules of m selected by mask
// pattern p.  Applying the same mask twice restores m.
func ApplyMask(m *BitMatrix, p Mask) error {
	if !p.IsValid() {
		return ErrMask
	}
	m.xorData(maskSet(m.size, p))
	return nil
}

// Penalty scores.
const (
	penaltyN1 = 3  // run of 5 same-colour modules, plus 1 per extra module
	penaltyN2 = 3  // 2x2 block of same-colour modules
	penaltyN3 = 40 // 1:1:3:1:1 finder-like pattern with 4 light modules
	penaltyN4 = 10 // per 5% deviation from 50% dark modules
)

// PenaltyN1 returns the penalty for runs of five or more same-colour
// modules in rows and columns.
func PenaltyN1(m *BitMatrix) int {
	siz := m.size
	p := 0
	run := func(n int) {
		if n >= 5 {
			p += penaltyN1 + n - 5
		}
	}
	for i := 0; i < siz; i++ {
		nr, nc := 0, 0
		var lr, lc bool
		for j := 0; j < siz; j++ {
			if v := m.Get(i, j); j > 0 && v == lr {
				nr++
			} else {
				run(nr)
				lr, nr = v, 1
			}
			if v := m.Get(j, i); j > 0 && v == lc {
				nc++
			} else {
				run(nc)
				lc, nc = v, 1
			}
		}
		run(nr)
		run(nc)
	}
	return p
}

// PenaltyN2 returns the penalty for 2x2 blocks of same-colour modules,
// possibly overlapping.
func PenaltyN2(m *BitMatrix) int {
	siz := m.size
	n := 0
	for i := 0; i < siz-1; i++ {
		for j := 0; j < siz-1; j++ {
			v := m.Get(i, j)
			if m.Get(i, j+1) == v && m.Get(i+1, j) == v &&
				m.Get(i+1, j+1) == v {
				n++
			}
		}
	}
	return n * penaltyN2
}

// PenaltyN3 returns the penalty for the patterns 10111010000 and
// 00001011101 in rows and columns, possibly overlapping.
func PenaltyN3(m *BitMatrix) int {
	const (
		findA = 0b101_1101_0000
		findB = 0b000_0101_1101
	)
	siz := m.size
	n := 0
	for i := 0; i < siz; i++ {
		var r, c uint16
		for j := 0; j < siz; j++ {
			r = r<<1&0x7ff | b2u(m.Get(i, j))
			c = c<<1&0x7ff | b2u(m.Get(j, i))
			if j < 10 {
				continue
			}
			if r == findA || r == findB {
				n++
			}
			if c == findA || c == findB {
				n++
			}
		}
	}
	return n * penaltyN3
}

// PenaltyN4 returns the penalty for the proportion of dark modules:
// 10 points for each full or partial 5% step away from 50%, as
// |ceil(dark*100/total/5) - 10| * 10.
func PenaltyN4(m *BitMatrix) int {
	total := m.size * m.size
	k := (m.Dark()*20+total-1)/total - 10
	if k < 0 {
		k = -k
	}
	return k * penaltyN4
}

// Penalty returns the total penalty of m.  The mask with the lowest
// penalty is chosen for encoding.
func Penalty(m *BitMatrix) int {
	return PenaltyN1(m) + PenaltyN2(m) + PenaltyN3(m) + PenaltyN4(m)
}

func b2u(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// BestMask returns the mask pattern with the lowest penalty for m,
// which must contain function patterns and data for a code of level
// l.  Each candidate is evaluated on a copy of m with format
// information for that mask; m is not modified.  Ties go to the lower
// mask number.
func BestMask(m *BitMatrix, l Level) (Mask, int) {
	return bestMask(m, l, nil)
}

func bestMask(m *BitMatrix, l Level, masks *[8]*bitset.BitSet) (Mask, int) {
	best, pen := Mask(0), int(^uint(0)>>1)
	for p := Mask(0); p < 8; p++ {
		c := m.Clone()
		drawFormat(c, l, p)
		if masks != nil {
			c.xorData(masks[p])
		} else {
			c.xorData(maskSet(c.size, p))
		}
		if n := Penalty(c); n < pen {
			best, pen = p, n
		}
	}
	return best, pen
}
