// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorDegree(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []byte{1}, field.Generator(0))
	assert.Nil(t, field.Generator(-1))
	for d := 0; d <= 68; d++ {
		g := field.Generator(d)
		require.Len(t, g, d+1, "degree %d", d)
		assert.Equal(t, byte(1), g[0], "degree %d not monic", d)
	}
}

func TestGeneratorRoots(t *testing.T) {
	t.Parallel()
	// The generator of degree d vanishes at α⁰…αᵈ⁻¹.
	const d = 10
	g := field.Generator(d)
	for i := 0; i < d; i++ {
		x := field.Exp(i)
		var v byte
		for _, c := range g {
			v = field.Mul(v, x) ^ c
		}
		assert.Zero(t, v, "g(α^%d)", i)
	}
}

func TestGeneratorKnown(t *testing.T) {
	t.Parallel()
	// x² + 3x + 2 = (x + 1)(x + 2)
	assert.Equal(t, []byte{1, 3, 2}, field.Generator(2))
	// ISO/IEC 18004 Annex A, 7 error correction codewords:
	// α⁰ α⁸⁷ α²²⁹ α¹⁴⁶ α¹⁴⁹ α²³⁸ α¹⁰² α²¹
	want := []int{0, 87, 229, 146, 149, 238, 102, 21}
	g := field.Generator(7)
	for i, e := range want {
		assert.Equal(t, field.Exp(e), g[i], "coefficient %d", i)
	}
}

func TestMulPoly(t *testing.T) {
	t.Parallel()
	p1 := []byte{0, 1, 2, 3, 4}
	p2 := []byte{5, 6}
	assert.Len(t, field.MulPoly(p1, p2), 6)
	assert.Equal(t, []byte{1, 3, 2}, field.MulPoly([]byte{1, 1}, []byte{1, 2}))
	assert.Nil(t, field.MulPoly(nil, p2))
}

func TestModPoly(t *testing.T) {
	t.Parallel()
	p1 := []byte{0, 1, 2, 3, 4}
	r := field.ModPoly(p1, field.Generator(2))
	assert.Len(t, r, 2)

	// A multiple of the divisor leaves no remainder.
	g := field.Generator(4)
	m := field.MulPoly([]byte{7, 0, 9}, g)
	assert.Empty(t, field.ModPoly(m, g))

	// Adding a short polynomial to a multiple leaves it as remainder.
	m[len(m)-2] ^= 0x42
	m[len(m)-1] ^= 0x17
	assert.Equal(t, []byte{0x42, 0x17}, field.ModPoly(m, g))
}
