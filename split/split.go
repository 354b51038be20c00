// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package split splits strings into QR code segments.

Text is first cut into maximal runs of characters belonging to the
numeric, alphanumeric, kanji and byte character classes (RawSplit).
Optimize then chooses a mode for every run, possibly encoding a run in
a wider mode to avoid the cost of a mode switch, so that the encoded
length is minimal, and merges neighbouring runs of the same mode.

Kanji mode requires a coding.ShiftJISFunc.  Without one, text that
would be encoded in Kanji mode is encoded in Byte mode.
*/
package split // import "github.com/unixdj/qrcode/split"

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/unixdj/qrcode/coding"
)

// kanjiClass lists the characters considered for Kanji mode: CJK
// punctuation, kana, full width forms, unified ideographs and the
// symbols, Greek and Cyrillic letters of JIS X 0208.
const kanjiClass = `\x{3000}-\x{303F}\x{3040}-\x{309F}\x{30A0}-\x{30FF}` +
	`\x{FF00}-\x{FFEF}\x{4E00}-\x{9FAF}\x{2605}-\x{2606}` +
	`\x{2190}-\x{2195}\x{203B}\x{2010}\x{2015}\x{2018}\x{2019}` +
	`\x{2025}\x{2026}\x{201C}\x{201D}\x{2225}\x{2260}` +
	`\x{0391}-\x{0451}\x{00A7}\x{00A8}\x{00B1}\x{00B4}\x{00D7}\x{00F7}`

const alphaClass = `A-Z $%*+\-./:`

var (
	numericRe   = regexp.MustCompile(`[0-9]+`)
	alphaRe     = regexp.MustCompile(`[` + alphaClass + `]+`)
	byteRe      = regexp.MustCompile(`[^0-9` + alphaClass + kanjiClass + `]+`)
	kanjiRe     = regexp.MustCompile(`[` + kanjiClass + `]+`)
	byteKanjiRe = regexp.MustCompile(`[^0-9` + alphaClass + `]+`)
	allKanjiRe  = regexp.MustCompile(`^[` + kanjiClass + `]+$`)
)

// A run is a maximal substring of one character class.
type run struct {
	mode coding.Mode
	text string
	off  int
}

// runs returns the character class runs of text in order.  Kanji runs
// containing characters sjis cannot map are returned as Byte runs.
func runs(text string, sjis coding.ShiftJISFunc) []run {
	var rs []run
	find := func(re *regexp.Regexp, mode coding.Mode) {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			rs = append(rs, run{mode, text[loc[0]:loc[1]], loc[0]})
		}
	}
	find(numericRe, coding.Numeric)
	find(alphaRe, coding.Alphanumeric)
	if sjis != nil {
		find(byteRe, coding.Byte)
		find(kanjiRe, coding.Kanji)
	} else {
		find(byteKanjiRe, coding.Byte)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].off < rs[j].off })
	for i := range rs {
		if rs[i].mode == coding.Kanji && !mapsAll(rs[i].text, sjis) {
			rs[i].mode = coding.Byte
		}
	}
	return rs
}

func mapsAll(s string, sjis coding.ShiftJISFunc) bool {
	seg := coding.Segment{Mode: coding.Kanji, Text: s}
	return seg.Validate(sjis) == nil
}

// RawSplit splits text into runs of characters of the same class,
// each encoded in the narrowest mode of its class.  Kanji runs are
// only produced if sjis is not nil.  The result is not optimised; it
// serves as an estimate of the encoded length.
func RawSplit(text string, sjis coding.ShiftJISFunc) []coding.Segment {
	rs := runs(text, sjis)
	segs := make([]coding.Segment, len(rs))
	for i, r := range rs {
		segs[i] = coding.Segment{Mode: r.mode, Text: r.text}
	}
	return segs
}

// BestMode returns the narrowest mode able to encode all of text:
// Numeric, Alphanumeric, Kanji if sjis is not nil and maps all
// characters, or Byte.
func BestMode(text string, sjis coding.ShiftJISFunc) coding.Mode {
	switch {
	case text == "":
		return coding.Byte
	case coding.IsNumeric(text):
		return coding.Numeric
	case coding.IsAlphanumeric(text):
		return coding.Alphanumeric
	case sjis != nil && allKanjiRe.MatchString(text) && mapsAll(text, sjis):
		return coding.Kanji
	}
	return coding.Byte
}

// Segments builds segments from descriptors.  The Mode of a
// descriptor is a hint: if it is coding.Auto, the best mode for the
// text is used.  Byte and StructuredAppend hints are always accepted;
// any other hint narrower than the best mode is an error.  Descriptors
// with Data are used as is in Byte mode and must not hint any other
// mode.  Descriptors with no data are skipped.  All segments are
// validated.
func Segments(descs []coding.Segment, sjis coding.ShiftJISFunc) ([]coding.Segment, error) {
	segs := make([]coding.Segment, 0, len(descs))
	for _, d := range descs {
		seg, ok, err := segment(d, sjis)
		if err != nil {
			return nil, err
		}
		if ok {
			segs = append(segs, seg)
		}
	}
	return segs, nil
}

func segment(d coding.Segment, sjis coding.ShiftJISFunc) (coding.Segment, bool, error) {
	switch {
	case d.Mode == coding.StructuredAppend:
		return d, true, d.Validate(sjis)
	case d.Data != nil:
		if d.Mode != coding.Auto && d.Mode != coding.Byte {
			return d, false, fmt.Errorf("%w: data requires byte mode, not %s",
				coding.ErrEncoding, d.Mode)
		}
		if len(d.Data) == 0 {
			return d, false, nil
		}
		return coding.Segment{Mode: coding.Byte, Data: d.Data}, true, nil
	case d.Text == "":
		return d, false, nil
	}
	best := BestMode(d.Text, sjis)
	mode := d.Mode
	switch mode {
	case coding.Auto:
		mode = best
	case coding.Byte:
	default:
		if !mode.IsValid() {
			return d, false, coding.ModeError(mode)
		}
		if mode.Indicator() < best.Indicator() {
			return d, false, fmt.Errorf("%w: %q cannot be encoded in %s mode, best mode is %s",
				coding.ErrEncoding, d.Text, mode, best)
		}
	}
	seg := coding.Segment{Mode: mode, Text: d.Text}
	return seg, true, seg.Validate(sjis)
}

// Parity returns the structured append parity of data: the exclusive
// or of all its bytes.
func Parity(data []byte) byte {
	var p byte
	for _, c := range data {
		p ^= c
	}
	return p
}

// Split returns optimised segments for text and the smallest version
// able to hold them at level l.  The version used for optimisation is
// estimated from the raw split of text; if the raw split fits no
// version, version 40 is used.
func Split(text string, l coding.Level, sjis coding.ShiftJISFunc) ([]coding.Segment, coding.Version, error) {
	if !l.IsValid() {
		return nil, 0, coding.ErrLevel
	}
	est, ok := BestVersion(RawSplit(text, sjis), l)
	if !ok {
		est = coding.MaxVersion
	}
	segs := Optimize(text, est, sjis)
	v, ok := BestVersion(segs, l)
	if !ok {
		return nil, 0, &coding.CapacityError{
			Level:    l,
			Bits:     Length(segs, coding.MaxVersion),
			Capacity: coding.Capacity(coding.MaxVersion, l, coding.Mixed),
		}
	}
	return segs, v, nil
}
