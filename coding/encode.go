// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// AutoMask requests the mask pattern with the lowest penalty.
const AutoMask Mask = -1

// A Code is an encoded QR symbol.
type Code struct {
	Modules *BitMatrix // modules, row major
	Version Version    // QR version
	Level   Level      // error correction level
	Mask    Mask       // applied mask pattern
}

// Size returns the number of modules on a side of c.
func (c *Code) Size() int { return c.Modules.Size() }

// Black reports whether the module at column x, row y is dark.
// Modules outside the symbol are light.
func (c *Code) Black(x, y int) bool {
	siz := c.Modules.Size()
	return 0 <= x && x < siz && 0 <= y && y < siz && c.Modules.Get(y, x)
}

// Penalty returns the mask penalty of c.
func (c *Code) Penalty() int { return Penalty(c.Modules) }

// A Plan holds the parts of a QR code that depend on the version only:
// function patterns, version information and mask patterns.
type Plan struct {
	Version Version
	tmpl    *BitMatrix        // function patterns, format placeholder
	masks   [8]*bitset.BitSet // mask patterns
}

var plans [MaxVersion + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns the Plan for version v.  Plans are built once and
// shared.
func NewPlan(v Version) (*Plan, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	e := &plans[v]
	e.once.Do(func() { e.p = makePlan(v) })
	return e.p, nil
}

func makePlan(v Version) *Plan {
	m, _ := NewBitMatrix(v.Size())
	drawFinders(m)
	drawTiming(m)
	drawAlignment(m, v)
	drawFormat(m, L, 0)
	drawVersion(m, v)
	p := &Plan{Version: v, tmpl: m}
	for i := range p.masks {
		p.masks[i] = maskSet(m.size, Mask(i))
	}
	return p
}

// Template returns a copy of the function patterns of p, with format
// information for level L and mask 0 as a placeholder.
func (p *Plan) Template() *BitMatrix { return p.tmpl.Clone() }

// Place returns a matrix holding the function patterns of p and
// codewords placed in its data modules, unmasked.
func (p *Plan) Place(codewords []byte) *BitMatrix {
	m := p.tmpl.Clone()
	placeData(m, codewords)
	return m
}

// Encode encodes segs into a QR code of level l using p.  If mask is
// AutoMask, the mask with the lowest penalty is chosen.
func (p *Plan) Encode(l Level, mask Mask, sjis ShiftJISFunc, segs ...Segment) (*Code, error) {
	if !l.IsValid() {
		return nil, ErrLevel
	}
	if mask != AutoMask && !mask.IsValid() {
		return nil, ErrMask
	}
	b := NewBits(p.Version)
	for _, seg := range segs {
		if err := seg.Encode(b, p.Version, sjis); err != nil {
			return nil, err
		}
	}
	cw, err := b.Codewords(p.Version, l)
	if err != nil {
		return nil, err
	}
	m := p.Place(cw)
	if mask == AutoMask {
		mask, _ = bestMask(m, l, &p.masks)
	}
	m.xorData(p.masks[mask])
	drawFormat(m, l, mask)
	return &Code{Modules: m, Version: p.Version, Level: l, Mask: mask}, nil
}

// Encode encodes segs into a QR code of version v and level l with the
// given mask pattern, or the best one if mask is AutoMask.  sjis is the
// Shift JIS mapper for Kanji segments and may be nil otherwise.
func Encode(v Version, l Level, mask Mask, sjis ShiftJISFunc, segs ...Segment) (*Code, error) {
	p, err := NewPlan(v)
	if err != nil {
		return nil, err
	}
	return p.Encode(l, mask, sjis, segs...)
}
