// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// A ShiftJISFunc maps a rune to its double byte Shift JIS code,
// reporting whether the mapping exists.  Kanji mode is only available
// with a ShiftJISFunc.
type ShiftJISFunc func(r rune) (code int, ok bool)

// ShiftJIS is the standard ShiftJISFunc, mapping runes using the
// Shift JIS (Windows-31J) encoder from golang.org/x/text.  Single byte
// characters are not mapped.
func ShiftJIS(r rune) (int, bool) {
	if r < 0x80 || !utf8.ValidRune(r) {
		return 0, false
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	t, err := japanese.ShiftJIS.NewEncoder().Bytes(buf[:n])
	if err != nil || len(t) != 2 {
		return 0, false
	}
	return int(t[0])<<8 | int(t[1]), true
}
