// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rsc "rsc.io/qr/coding"

	"github.com/unixdj/qrcode/coding"
)

func TestEncodeMatchesReference(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		v    coding.Version
		l    coding.Level
		segs []coding.Segment
		ref  []rsc.Encoding
	}{
		{
			name: "numeric",
			v:    1, l: coding.M,
			segs: []coding.Segment{{Mode: coding.Numeric, Text: "01234567"}},
			ref:  []rsc.Encoding{rsc.Num("01234567")},
		},
		{
			name: "alphanumeric",
			v:    1, l: coding.Q,
			segs: []coding.Segment{{Mode: coding.Alphanumeric, Text: "HELLO WORLD"}},
			ref:  []rsc.Encoding{rsc.Alpha("HELLO WORLD")},
		},
		{
			name: "byte",
			v:    3, l: coding.L,
			segs: []coding.Segment{{Mode: coding.Byte, Text: "hello, world"}},
			ref:  []rsc.Encoding{rsc.String("hello, world")},
		},
		{
			name: "mixed",
			v:    5, l: coding.H,
			segs: []coding.Segment{
				{Mode: coding.Byte, Text: "https://"},
				{Mode: coding.Alphanumeric, Text: "EXAMPLE.COM/"},
				{Mode: coding.Numeric, Text: "0123456789"},
			},
			ref: []rsc.Encoding{
				rsc.String("https://"),
				rsc.Alpha("EXAMPLE.COM/"),
				rsc.Num("0123456789"),
			},
		},
		{
			name: "version information",
			v:    7, l: coding.M,
			segs: []coding.Segment{{Mode: coding.Byte, Text: strings.Repeat("qr", 50)}},
			ref:  []rsc.Encoding{rsc.String(strings.Repeat("qr", 50))},
		},
		{
			name: "size class 1",
			v:    14, l: coding.Q,
			segs: []coding.Segment{{Mode: coding.Numeric, Text: strings.Repeat("31415926", 40)}},
			ref:  []rsc.Encoding{rsc.Num(strings.Repeat("31415926", 40))},
		},
		{
			name: "large",
			v:    40, l: coding.L,
			segs: []coding.Segment{{Mode: coding.Byte, Text: strings.Repeat("0123456789abcdef", 180)}},
			ref:  []rsc.Encoding{rsc.String(strings.Repeat("0123456789abcdef", 180))},
		},
	}
	for _, tt := range tests {
		tt := tt // per-iteration copy (go 1.21 loop semantics)
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for mask := coding.Mask(0); mask < 8; mask++ {
				c, err := coding.Encode(tt.v, tt.l, mask, nil, tt.segs...)
				require.NoError(t, err)
				p, err := rsc.NewPlan(rsc.Version(tt.v), rsc.Level(tt.l), rsc.Mask(mask))
				require.NoError(t, err)
				want, err := p.Encode(tt.ref...)
				require.NoError(t, err)
				require.Equal(t, want.Size, c.Size())
				for y := 0; y < want.Size; y++ {
					for x := 0; x < want.Size; x++ {
						require.Equal(t, want.Black(x, y), c.Black(x, y),
							"mask %d (%d,%d)", mask, x, y)
					}
				}
			}
		})
	}
}

func TestEncodeFormatInformation(t *testing.T) {
	t.Parallel()
	segs := []coding.Segment{{Mode: coding.Alphanumeric, Text: "A123456A"}}
	c, err := coding.Encode(1, coding.H, 1, nil, segs...)
	require.NoError(t, err)
	assert.Equal(t, 21, c.Size())
	assert.Equal(t, coding.Mask(1), c.Mask)
	assert.Equal(t, coding.H, c.Level)
	assert.True(t, c.Modules.Get(13, 8), "dark module")

	fb := coding.FormatBits(coding.H, 1)
	for i := 0; i < 15; i++ {
		dark := fb>>i&1 != 0
		var row, col int
		switch {
		case i < 6:
			row, col = i, 8
		case i < 8:
			row, col = i+1, 8
		default:
			row, col = 21-15+i, 8
		}
		assert.Equal(t, dark, c.Modules.Get(row, col), "format bit %d", i)
	}
	assert.False(t, c.Black(-1, 0))
	assert.False(t, c.Black(0, 21))
}

func TestEncodeErrors(t *testing.T) {
	t.Parallel()
	byteSeg := coding.Segment{Mode: coding.Byte, Text: "i am a pony!"}
	_, err := coding.Encode(1, coding.H, coding.AutoMask, nil, byteSeg)
	var ce *coding.CapacityError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, coding.ErrCapacity)
	assert.Equal(t, coding.Version(1), ce.Version)
	assert.Equal(t, coding.H, ce.Level)
	assert.Equal(t, 4+8+96, ce.Bits)
	assert.Equal(t, 72, ce.Capacity)

	_, err = coding.Encode(0, coding.L, 0, nil, byteSeg)
	assert.ErrorIs(t, err, coding.ErrVersion)
	_, err = coding.Encode(1, coding.Level(7), 0, nil, byteSeg)
	assert.ErrorIs(t, err, coding.ErrLevel)
	_, err = coding.Encode(1, coding.L, 8, nil, byteSeg)
	assert.ErrorIs(t, err, coding.ErrMask)
	_, err = coding.Encode(1, coding.L, 0, nil,
		coding.Segment{Mode: coding.Kanji, Text: "漢字"})
	assert.ErrorIs(t, err, coding.ErrEncoding)
}

func TestEncodeConcurrent(t *testing.T) {
	t.Parallel()
	segs := []coding.Segment{{Mode: coding.Byte, Text: "concurrent"}}
	want, err := coding.Encode(4, coding.Q, coding.AutoMask, nil, segs...)
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := coding.Encode(4, coding.Q, coding.AutoMask, nil, segs...)
			if assert.NoError(t, err) {
				assert.True(t, want.Modules.Equal(c.Modules))
				assert.Equal(t, want.Mask, c.Mask)
			}
		}()
	}
	wg.Wait()
}
