// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "sync"

// Polynomials over the field are byte slices of coefficients, most
// significant first.

// MulPoly returns the product of polynomials p and q.
func (f *Field) MulPoly(p, q []byte) []byte {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	r := make([]byte, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		la := int(f.log[a])
		for j, b := range q {
			if b != 0 {
				r[i+j] ^= f.exp[la+int(f.log[b])]
			}
		}
	}
	return r
}

// ModPoly returns the remainder of dividend divided by divisor.
// Leading zero coefficients are stripped from the result, which is
// shorter than divisor.  The divisor must be monic.
func (f *Field) ModPoly(dividend, divisor []byte) []byte {
	r := append([]byte(nil), dividend...)
	for len(r) >= len(divisor) {
		if c := r[0]; c != 0 {
			lc := int(f.log[c])
			for i, d := range divisor {
				if d != 0 {
					r[i] ^= f.exp[lc+int(f.log[d])]
				}
			}
		}
		// strip leading zeros
		n := 0
		for n < len(r) && r[n] == 0 {
			n++
		}
		r = r[n:]
	}
	return r
}

// generators caches generator polynomials by degree.
type generators struct {
	mu   sync.Mutex
	poly [][]byte
}

// Generator returns the Reed-Solomon generator polynomial of the given
// degree, the product of (x + αⁱ) for i in [0, degree).  Generator
// returns [1] for degree 0 and nil for a negative degree.  The
// returned slice is shared and must not be modified.
func (f *Field) Generator(degree int) []byte {
	if degree < 0 {
		return nil
	}
	g := &f.gen
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.poly) == 0 {
		g.poly = append(g.poly, []byte{1})
	}
	for d := len(g.poly); d <= degree; d++ {
		g.poly = append(g.poly,
			f.MulPoly(g.poly[d-1], []byte{1, f.exp[d-1]}))
	}
	return g.poly[degree]
}
