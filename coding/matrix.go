// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/bits-and-blooms/bitset"

// A BitMatrix is a square grid of modules with a parallel grid of
// reserved flags marking function patterns and format and version
// information.  Reserved modules are never written by data placement
// or masking.
type BitMatrix struct {
	size     int
	modules  *bitset.BitSet // dark modules
	reserved *bitset.BitSet // function modules
}

// NewBitMatrix returns an empty BitMatrix with size modules on a side.
func NewBitMatrix(size int) (*BitMatrix, error) {
	if size <= 0 {
		return nil, ErrSize
	}
	n := uint(size * size)
	return &BitMatrix{
		size:     size,
		modules:  bitset.New(n),
		reserved: bitset.New(n),
	}, nil
}

// Size returns the number of modules on a side of m.
func (m *BitMatrix) Size() int { return m.size }

func (m *BitMatrix) index(row, col int) uint {
	return uint(row*m.size + col)
}

// Set sets the module at row, col to dark.  If reserved is true, the
// module is also marked reserved.
func (m *BitMatrix) Set(row, col int, dark, reserved bool) {
	i := m.index(row, col)
	m.modules.SetTo(i, dark)
	if reserved {
		m.reserved.Set(i)
	}
}

// Get reports whether the module at row, col is dark.
func (m *BitMatrix) Get(row, col int) bool {
	return m.modules.Test(m.index(row, col))
}

// Xor inverts the module at row, col if dark is true.
func (m *BitMatrix) Xor(row, col int, dark bool) {
	if dark {
		m.modules.Flip(m.index(row, col))
	}
}

// IsReserved reports whether the module at row, col is reserved.
func (m *BitMatrix) IsReserved(row, col int) bool {
	return m.reserved.Test(m.index(row, col))
}

// Dark returns the number of dark modules in m.
func (m *BitMatrix) Dark() int { return int(m.modules.Count()) }

// Clone returns a copy of m.
func (m *BitMatrix) Clone() *BitMatrix {
	return &BitMatrix{
		size:     m.size,
		modules:  m.modules.Clone(),
		reserved: m.reserved.Clone(),
	}
}

// Equal reports whether m and o have the same size and modules.
func (m *BitMatrix) Equal(o *BitMatrix) bool {
	return m.size == o.size && m.modules.Equal(o.modules)
}

// xorData inverts the unreserved modules set in p.
func (m *BitMatrix) xorData(p *bitset.BitSet) {
	p = p.Difference(m.reserved)
	m.modules.InPlaceSymmetricDifference(p)
}
