// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois field GF(256)
// and Reed-Solomon encoding.
package gf256 // import "github.com/unixdj/qrcode/gf256"

import "errors"

// ErrLogZero is the panic value of Field.Log(0).
var ErrLogZero = errors.New("gf256: log of zero")

// A Field represents an instance of GF(256) defined by a specific
// polynomial.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte

	gen generators // cached Reed-Solomon generator polynomials
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The QR code field uses poly 0x11d and α 2.
//
// The choice of generator α only matters for Reed-Solomon encoding:
// the generator polynomial of degree d is (x + α⁰)(x + α¹)…(x + αᵈ⁻¹).
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 || reducible(poly) {
		panic("gf256: invalid polynomial: " + itoa(poly))
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + itoa(α) +
				" for polynomial " + itoa(poly))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.log[0] = 255
	return &f
}

// reducible reports whether p is reducible, that is, divisible by a
// polynomial of degree 1 to 4.
func reducible(p int) bool {
	// Multiplying by x is a shift, so the lowest bit must be set.
	if p&1 == 0 {
		return true
	}
	for q := 2; q < 1<<5; q++ {
		if polyDiv(p, q) == 0 {
			return true
		}
	}
	return false
}

// polyDiv returns the remainder of p divided by q over GF(2).
func polyDiv(p, q int) int {
	np := nbit(p)
	nq := nbit(q)
	for ; np >= nq; np-- {
		if p&(1<<uint(np-1)) != 0 {
			p ^= q << uint(np-nq)
		}
	}
	return p
}

// mul returns the product x*y mod poly, a GF(256) multiplication.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

func nbit(p int) int {
	n := 0
	for ; p > 0; p >>= 1 {
		n++
	}
	return n
}

func itoa(n int) string {
	const hex = "0123456789abcdef"
	var b [8]byte
	i := len(b)
	for {
		i--
		b[i] = hex[n&0xf]
		if n >>= 4; n == 0 {
			break
		}
	}
	return "0x" + string(b[i:])
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Exp returns the base-α exponential of e in the field.
// If e < 0, Exp returns 0.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		return 0
	}
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in the field.
// Log panics with ErrLogZero if x == 0.
func (f *Field) Log(x byte) int {
	if x == 0 {
		panic(ErrLogZero)
	}
	return int(f.log[x])
}

// Inv returns the multiplicative inverse of x in the field.
// If x == 0, Inv returns 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[255-f.log[x]]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}
