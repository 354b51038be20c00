// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/unixdj/qrcode/coding"
)

const (
	maxSymbols = 16     // maximum structured append symbols
	appendBits = 4 + 16 // structured append segment
)

// Multi splits text across up to 16 QR codes of version v and level l
// linked by Structured Append.  Each returned segment list starts with
// a StructuredAppend segment carrying the symbol position, the number
// of symbols and the parity of text, followed by optimised segments
// for a part of text.  Parts are cut at character boundaries.
func Multi(text string, v coding.Version, l coding.Level, sjis coding.ShiftJISFunc) ([][]coding.Segment, error) {
	if !v.IsValid() {
		return nil, coding.ErrVersion
	}
	if !l.IsValid() {
		return nil, coding.ErrLevel
	}
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", coding.ErrInput)
	}
	lim := coding.Capacity(v, l, coding.Mixed) - appendBits

	var parts [][]coding.Segment
	for rest := text; rest != ""; {
		if len(parts) == maxSymbols {
			return nil, fmt.Errorf("%w: text needs more than %d symbols of version %d-%s",
				coding.ErrCapacity, maxSymbols, v, l)
		}
		// rune boundaries after the first rune
		var cuts []int
		for i := range rest {
			if i > 0 {
				cuts = append(cuts, i)
			}
		}
		cuts = append(cuts, len(rest))
		fits := func(n int) bool {
			return Length(Optimize(rest[:n], v, sjis), v) <= lim
		}
		// largest prefix that fits
		k := sort.Search(len(cuts), func(i int) bool { return !fits(cuts[i]) })
		if k == 0 {
			_, n := utf8.DecodeRuneInString(rest)
			return nil, &coding.CapacityError{
				Version:  v,
				Level:    l,
				Bits:     Length(Optimize(rest[:n], v, sjis), v) + appendBits,
				Capacity: lim + appendBits,
			}
		}
		n := cuts[k-1]
		parts = append(parts, Optimize(rest[:n], v, sjis))
		rest = rest[n:]
	}

	par := Parity([]byte(text))
	segs := make([][]coding.Segment, len(parts))
	for i, p := range parts {
		segs[i] = append(make([]coding.Segment, 1, len(p)+1), p...)
		segs[i][0] = coding.Segment{
			Mode: coding.StructuredAppend,
			Append: coding.AppendHeader{
				Position: i,
				Total:    len(parts) - 1,
				Parity:   par,
			},
		}
	}
	return segs, nil
}
