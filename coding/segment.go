// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"unicode/utf8"
)

// A Segment describes a QR code segment: data encoded in one mode.
//
// Numeric and Alphanumeric segments encode Text, which must consist of
// characters of the mode's character set.  Byte segments encode Data,
// or Text if Data is nil.  Kanji segments encode Text, converted to
// Shift JIS by a ShiftJISFunc.  StructuredAppend segments encode
// Append.
type Segment struct {
	Mode   Mode         // encoding mode
	Text   string       // data to encode
	Data   []byte       // raw data for Byte mode
	Append AppendHeader // structured append header
}

// AppendHeader is the payload of a StructuredAppend segment.
type AppendHeader struct {
	Position int  // symbol position, 0 to 15
	Total    int  // total number of symbols field, 0 to 15
	Parity   byte // parity of the complete data
}

// Len returns the number of characters in seg, as written to the
// character count indicator: digits, characters, bytes or kanji.
// Len returns 0 for StructuredAppend.
func (seg Segment) Len() int {
	switch seg.Mode {
	case Numeric, Alphanumeric:
		return len(seg.Text)
	case Byte:
		if seg.Data != nil {
			return len(seg.Data)
		}
		return len(seg.Text)
	case Kanji:
		return utf8.RuneCountInString(seg.Text)
	}
	return 0
}

// BitsLength returns the encoded length in bits of the data in seg,
// excluding the header.
func (seg Segment) BitsLength() int { return seg.Mode.DataBits(seg.Len()) }

// EncodedLength returns the encoded length in bits of seg in version
// v, including the header.
func (seg Segment) EncodedLength(v Version) int {
	return seg.Mode.HeaderBits(v) + seg.BitsLength()
}

// String returns the data of seg as text.
func (seg Segment) String() string {
	switch seg.Mode {
	case Byte:
		if seg.Data != nil {
			return string(seg.Data)
		}
	case StructuredAppend:
		a := seg.Append
		return fmt.Sprintf("%d/%d:%#02x", a.Position, a.Total, a.Parity)
	}
	return seg.Text
}

// Alphanumeric encoding table, indexed by character - ' '.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
// -1 marks characters outside the set.
var alpha = [...]int8{
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 8, 9, 44, -1, -1, -1, -1, -1,   // 0x30
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1, // 0x50
}

// AlphaIndex returns the value of c in alphanumeric mode, or -1.
func AlphaIndex(c rune) int {
	if i := c - ' '; 0 <= i && int(i) < len(alpha) {
		return int(alpha[i])
	}
	return -1
}

// IsNumeric reports whether s is encodable in Numeric mode.
func IsNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i]-'0' > 9 {
			return false
		}
	}
	return true
}

// IsAlphanumeric reports whether s is encodable in Alphanumeric mode.
func IsAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if AlphaIndex(rune(s[i])) < 0 {
			return false
		}
	}
	return true
}

// Validate reports whether seg is encodable.  sjis is the Shift JIS
// mapper for Kanji segments.
func (seg Segment) Validate(sjis ShiftJISFunc) error {
	ok := true
	switch seg.Mode {
	case Numeric:
		ok = IsNumeric(seg.Text)
	case Alphanumeric:
		ok = IsAlphanumeric(seg.Text)
	case Byte:
	case Kanji:
		if sjis == nil {
			return fmt.Errorf("%w: kanji mode without shift jis mapper",
				ErrEncoding)
		}
		for _, r := range seg.Text {
			if _, ok = kanjiValue(r, sjis); !ok {
				break
			}
		}
	case StructuredAppend:
		a := seg.Append
		ok = uint(a.Position) < 16 && uint(a.Total) < 16
	default:
		return ModeError(seg.Mode)
	}
	if !ok {
		return &SegmentError{seg.String(), seg.Mode}
	}
	return nil
}

// kanjiValue returns the 13 bit Kanji mode value of r.
func kanjiValue(r rune, sjis ShiftJISFunc) (uint32, bool) {
	c, ok := sjis(r)
	if !ok {
		return 0, false
	}
	switch {
	case 0x8140 <= c && c <= 0xa0fb:
		c -= 0x8140
	case 0xe040 <= c && c <= 0xebbf:
		c -= 0xc140
	default:
		return 0, false
	}
	return uint32(c>>8&0xff)*0xc0 + uint32(c&0xff), true
}

// Write writes the data of seg to b, without the header.
// sjis is the Shift JIS mapper for Kanji segments.
func (seg Segment) Write(b *Bits, sjis ShiftJISFunc) error {
	if err := seg.Validate(sjis); err != nil {
		return err
	}
	switch s := seg.Text; seg.Mode {
	case Numeric:
		for ; len(s) >= 3; s = s[3:] {
			v := uint32(s[0]-'0')*100 + uint32(s[1]-'0')*10 +
				uint32(s[2]-'0')
			b.Put(v, 10)
		}
		switch len(s) {
		case 2:
			b.Put(uint32(s[0]-'0')*10+uint32(s[1]-'0'), 7)
		case 1:
			b.Put(uint32(s[0]-'0'), 4)
		}
	case Alphanumeric:
		for ; len(s) >= 2; s = s[2:] {
			v := AlphaIndex(rune(s[0]))*45 + AlphaIndex(rune(s[1]))
			b.Put(uint32(v), 11)
		}
		if len(s) == 1 {
			b.Put(uint32(AlphaIndex(rune(s[0]))), 6)
		}
	case Byte:
		if seg.Data != nil {
			b.putBytes(seg.Data)
		} else {
			b.putBytes([]byte(s))
		}
	case Kanji:
		for _, r := range s {
			v, _ := kanjiValue(r, sjis)
			b.Put(v, 13)
		}
	case StructuredAppend:
		a := seg.Append
		b.Put(uint32(a.Position), 4)
		b.Put(uint32(a.Total), 4)
		b.Put(uint32(a.Parity), 8)
	}
	return nil
}

// Encode writes seg to b with the header for version v: the mode
// indicator, the character count indicator and the data.
func (seg Segment) Encode(b *Bits, v Version, sjis ShiftJISFunc) error {
	m := seg.Mode
	if !m.IsValid() {
		return ModeError(m)
	}
	n, cb := seg.Len(), m.CountBits(v)
	if n >= 1<<cb && cb != 0 {
		return fmt.Errorf("%w: %d %s characters overflow %d-bit count",
			ErrCapacity, n, m, cb)
	}
	b.Put(uint32(m.Indicator()), 4)
	b.Put(uint32(n), cb)
	return seg.Write(b, sjis)
}
