// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import "github.com/unixdj/qrcode/coding"

// Length returns the encoded length in bits of segs in version v,
// including segment headers.
func Length(segs []coding.Segment, v coding.Version) int {
	n := 0
	for _, seg := range segs {
		n += seg.EncodedLength(v)
	}
	return n
}

// BestVersion returns the smallest version able to hold segs at level
// l, and false if there is none.  A single segment is checked against
// the character capacity of its mode, several segments against the
// data bits of the version.  No segments fit in version 1.
func BestVersion(segs []coding.Segment, l coding.Level) (coding.Version, bool) {
	switch len(segs) {
	case 0:
		return coding.MinVersion, true
	case 1:
		seg := segs[0]
		for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
			if seg.Len() <= coding.Capacity(v, l, seg.Mode) {
				return v, true
			}
		}
		return 0, false
	}
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		if Length(segs, v) <= coding.Capacity(v, l, coding.Mixed) {
			return v, true
		}
	}
	return 0, false
}
