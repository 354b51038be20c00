// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Function patterns.  All modules drawn here are reserved.

// drawFinders draws the three finder patterns with their separators
// at the top left, top right and bottom left corners.
func drawFinders(m *BitMatrix) {
	siz := m.size
	for _, p := range [3][2]int{{0, 0}, {siz - 7, 0}, {0, siz - 7}} {
		row, col := p[0], p[1]
		for r := -1; r <= 7; r++ {
			if row+r < 0 || row+r >= siz {
				continue
			}
			for c := -1; c <= 7; c++ {
				if col+c < 0 || col+c >= siz {
					continue
				}
				dark := 0 <= r && r <= 6 && (c == 0 || c == 6) ||
					0 <= c && c <= 6 && (r == 0 || r == 6) ||
					2 <= r && r <= 4 && 2 <= c && c <= 4
				m.Set(row+r, col+c, dark, true)
			}
		}
	}
}

// drawTiming draws the timing patterns along row and column 6.
func drawTiming(m *BitMatrix) {
	for i := 8; i < m.size-8; i++ {
		dark := i&1 == 0
		m.Set(i, 6, dark, true)
		m.Set(6, i, dark, true)
	}
}

// AlignmentCoords returns the row and column coordinates of alignment
// pattern centres for version v in ascending order.  Version 1 has
// none.
func AlignmentCoords(v Version) []int {
	if v <= 1 {
		return nil
	}
	n := int(v)/7 + 2
	siz := v.Size()
	step := 26
	if siz != 145 {
		d := 2*n - 2
		step = (siz - 13 + d - 1) / d * 2
	}
	pos := make([]int, n)
	pos[0] = 6
	for i, p := n-1, siz-7; i > 0; i-- {
		pos[i] = p
		p -= step
	}
	return pos
}

// AlignmentPositions returns the centres of alignment patterns for
// version v as row, column pairs, excluding those overlapping finder
// patterns.
func AlignmentPositions(v Version) [][2]int {
	coords := AlignmentCoords(v)
	last := len(coords) - 1
	var pos [][2]int
	for i, r := range coords {
		for j, c := range coords {
			if i == 0 && (j == 0 || j == last) || i == last && j == 0 {
				continue
			}
			pos = append(pos, [2]int{r, c})
		}
	}
	return pos
}

// drawAlignment draws the alignment patterns for version v.
func drawAlignment(m *BitMatrix, v Version) {
	for _, p := range AlignmentPositions(v) {
		for r := -2; r <= 2; r++ {
			for c := -2; c <= 2; c++ {
				dark := r == -2 || r == 2 || c == -2 || c == 2 ||
					r == 0 && c == 0
				m.Set(p[0]+r, p[1]+c, dark, true)
			}
		}
	}
}

// placeData writes data to the unreserved modules of m in zigzag
// order: two-column strips from the right edge, alternately upwards
// and downwards, skipping the vertical timing pattern.  Bits are read
// most significant first; past the end of data, zeros are written.
func placeData(m *BitMatrix, data []byte) {
	siz := m.size
	inc := -1
	row := siz - 1
	bit := 0
	for col := siz - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		for {
			for c := 0; c < 2; c++ {
				if m.IsReserved(row, col-c) {
					continue
				}
				dark := false
				if i := bit >> 3; i < len(data) {
					dark = data[i]>>(7&^bit)&1 != 0
				}
				m.Set(row, col-c, dark, false)
				bit++
			}
			row += inc
			if row < 0 || row >= siz {
				row -= inc
				inc = -inc
				break
			}
		}
	}
}
