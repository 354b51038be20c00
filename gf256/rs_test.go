// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rscgf "rsc.io/qr/gf256"

	"github.com/unixdj/qrcode/gf256"
)

func TestRSEncoderUninitialized(t *testing.T) {
	t.Parallel()
	rs := gf256.NewRSEncoder(field, 0)
	assert.Nil(t, rs.Generator())
	assert.Zero(t, rs.Degree())
	_, err := rs.Encode(nil)
	assert.ErrorIs(t, err, gf256.ErrNotInitialized)
	assert.PanicsWithValue(t, gf256.ErrNotInitialized, func() {
		rs.ECC([]byte{1}, nil)
	})
}

func TestRSEncoderInit(t *testing.T) {
	t.Parallel()
	rs := gf256.NewRSEncoder(field, 0)
	rs.Init(2)
	assert.Equal(t, 2, rs.Degree())
	require.NotNil(t, rs.Generator())
	g := rs.Generator()
	rs.Init(3)
	assert.Equal(t, 3, rs.Degree())
	assert.NotEqual(t, g, rs.Generator())
	rs.Init(0)
	assert.Nil(t, rs.Generator())
}

func TestRSEncode(t *testing.T) {
	t.Parallel()
	rs := gf256.NewRSEncoder(field, 2)
	ec, err := rs.Encode([]byte{48, 49, 50, 51, 52})
	require.NoError(t, err)
	assert.Len(t, ec, 2)

	ec, err = gf256.NewRSEncoder(field, 1).Encode([]byte{0})
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, ec)
}

func TestRSEncodeKnown(t *testing.T) {
	t.Parallel()
	// "01234567" in numeric mode, version 1-M (ISO/IEC 18004 Annex I).
	data := []byte{
		0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11,
		0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
	}
	want := []byte{0xa5, 0x24, 0xd4, 0xc1, 0xed, 0x36, 0xc7, 0x87, 0x2c, 0x55}
	ec, err := gf256.NewRSEncoder(field, 10).Encode(data)
	require.NoError(t, err)
	assert.Equal(t, want, ec)
}

func TestRSEncodeReference(t *testing.T) {
	t.Parallel()
	ref := rscgf.NewField(0x11d, 2)
	rnd := rand.New(rand.NewSource(1))
	for _, degree := range []int{7, 10, 13, 17, 22, 26, 28, 30, 68} {
		rs := gf256.NewRSEncoder(field, degree)
		rrs := rscgf.NewRSEncoder(ref, degree)
		for n := 1; n <= 150; n += 37 {
			data := make([]byte, n)
			rnd.Read(data)
			got, err := rs.Encode(data)
			require.NoError(t, err)
			want := make([]byte, degree)
			rrs.ECC(data, want)
			assert.Equal(t, want, got, "degree %d, %d bytes", degree, n)
		}
	}
}
