// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrcode/coding"
)

func newMatrix(t *testing.T, size int) *coding.BitMatrix {
	t.Helper()
	m, err := coding.NewBitMatrix(size)
	require.NoError(t, err)
	return m
}

func TestMaskAt(t *testing.T) {
	t.Parallel()
	// first two rows of each pattern, columns 0 to 5
	want := [8][2]string{
		{"#-#-#-", "-#-#-#"},
		{"######", "------"},
		{"#--#--", "#--#--"},
		{"#--#--", "--#--#"},
		{"###---", "###---"},
		{"######", "#-----"},
		{"######", "###---"},
		{"#-#-#-", "---###"},
	}
	for p, rows := range want {
		for i, row := range rows {
			for j, c := range row {
				assert.Equal(t, c == '#', coding.MaskAt(coding.Mask(p), i, j),
					"mask %d (%d,%d)", p, i, j)
			}
		}
	}
	assert.Panics(t, func() { coding.MaskAt(8, 0, 0) })
}

func TestApplyMask(t *testing.T) {
	t.Parallel()
	p, err := coding.NewPlan(2)
	require.NoError(t, err)
	m := p.Template()
	orig := m.Clone()
	require.NoError(t, coding.ApplyMask(m, 3))
	assert.False(t, m.Equal(orig))
	for i := 0; i < m.Size(); i++ {
		for j := 0; j < m.Size(); j++ {
			if m.IsReserved(i, j) {
				require.Equal(t, orig.Get(i, j), m.Get(i, j), "(%d,%d)", i, j)
			}
		}
	}
	require.NoError(t, coding.ApplyMask(m, 3))
	assert.True(t, m.Equal(orig))

	assert.ErrorIs(t, coding.ApplyMask(m, 8), coding.ErrMask)
	assert.ErrorIs(t, coding.ApplyMask(m, -1), coding.ErrDomain)
}

func TestPenaltyMaskFixture(t *testing.T) {
	t.Parallel()
	m := newMatrix(t, 6)
	require.NoError(t, coding.ApplyMask(m, 0))
	assert.Equal(t, 0, coding.PenaltyN1(m))
	assert.Equal(t, 0, coding.PenaltyN2(m))
	assert.Equal(t, 0, coding.PenaltyN4(m))

	m = newMatrix(t, 6)
	require.NoError(t, coding.ApplyMask(m, 1))
	assert.Equal(t, 24, coding.PenaltyN1(m))
	assert.Equal(t, 0, coding.PenaltyN2(m))
}

func TestPenalty(t *testing.T) {
	t.Parallel()
	m := newMatrix(t, 11)
	assert.Equal(t, 198, coding.PenaltyN1(m))
	assert.Equal(t, 300, coding.PenaltyN2(m))
	assert.Equal(t, 0, coding.PenaltyN3(m))
	assert.Equal(t, 100, coding.PenaltyN4(m))

	for j, c := range "10111010000" {
		m.Set(0, j, c == '1', false)
	}
	assert.Equal(t, 184, coding.PenaltyN1(m))
	assert.Equal(t, 279, coding.PenaltyN2(m))
	assert.Equal(t, 40, coding.PenaltyN3(m))
	assert.Equal(t, 90, coding.PenaltyN4(m))
	assert.Equal(t, 184+279+40+90, coding.Penalty(m))

	// The reverse pattern scores in columns too.
	m = newMatrix(t, 11)
	for i, c := range "00001011101" {
		m.Set(i, 0, c == '1', false)
	}
	assert.Equal(t, 40, coding.PenaltyN3(m))
}

func TestPenaltyN4(t *testing.T) {
	t.Parallel()
	tests := []struct {
		dark, want int
	}{
		{0, 100},
		{50, 0},
		{51, 10}, // 51%: ceil(10.2) - 10
		{45, 10}, // 45%: ceil(9) - 10
		{44, 10},
		{40, 20},
		{100, 100},
	}
	for _, tt := range tests {
		m := newMatrix(t, 10)
		for i := 0; i < tt.dark; i++ {
			m.Set(i/10, i%10, true, false)
		}
		assert.Equal(t, tt.want, coding.PenaltyN4(m), "%d%% dark", tt.dark)
	}
}

func TestBestMask(t *testing.T) {
	t.Parallel()
	// "01234567" in version 1-M
	segs := []coding.Segment{{Mode: coding.Numeric, Text: "01234567"}}
	want := [8]int{297, 533, 397, 452, 580, 637, 429, 416}
	for mask, pen := range want {
		c, err := coding.Encode(1, coding.M, coding.Mask(mask), nil, segs...)
		require.NoError(t, err)
		assert.Equal(t, coding.Mask(mask), c.Mask)
		assert.Equal(t, pen, c.Penalty(), "mask %d", mask)
	}

	p, err := coding.NewPlan(1)
	require.NoError(t, err)
	var b coding.Bits
	require.NoError(t, segs[0].Encode(&b, 1, nil))
	cw, err := b.Codewords(1, coding.M)
	require.NoError(t, err)
	m := p.Place(cw)
	orig := m.Clone()
	mask, pen := coding.BestMask(m, coding.M)
	assert.Equal(t, coding.Mask(0), mask)
	assert.Equal(t, 297, pen)
	assert.True(t, m.Equal(orig), "BestMask modified the matrix")

	c, err := coding.Encode(1, coding.M, coding.AutoMask, nil, segs...)
	require.NoError(t, err)
	assert.Equal(t, coding.Mask(0), c.Mask)
}
