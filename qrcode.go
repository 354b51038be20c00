// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrcode encodes QR codes.

Create encodes a string, a byte slice or a list of segment
descriptors into a QR symbol.  Text is split into segments of the
modes producing the shortest encoding, the smallest version able to
hold them is chosen, and the mask pattern with the lowest penalty is
applied.  Options override the version, error correction level and
mask, and enable Kanji mode:

	c, err := qrcode.Create("http://www.google.com",
		qrcode.WithLevel(qrcode.Q))

The resulting Code is a read-only module grid with metadata.  It can
be rendered as UTF-8 block art, a PBM bitmap or an image.Image.

Errors wrap ErrInput, ErrEncoding, ErrCapacity or ErrDomain.
*/
package qrcode // import "github.com/unixdj/qrcode"

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/unixdj/qrcode/coding"
	"github.com/unixdj/qrcode/split"
)

type (
	Segment      = coding.Segment      // segment descriptor
	AppendHeader = coding.AppendHeader // structured append header
	Mode         = coding.Mode         // encoding mode
	Level        = coding.Level        // error correction level
	Version      = coding.Version      // QR version
	Mask         = coding.Mask         // mask pattern
)

// Error correction levels.
const (
	L = coding.L // 7% recoverable
	M = coding.M // 15% recoverable
	Q = coding.Q // 25% recoverable
	H = coding.H // 30% recoverable
)

// Segment modes.
const (
	Auto             = coding.Auto
	Numeric          = coding.Numeric
	Alphanumeric     = coding.Alphanumeric
	Byte             = coding.Byte
	Kanji            = coding.Kanji
	StructuredAppend = coding.StructuredAppend
)

// AutoMask selects the mask pattern with the lowest penalty.
const AutoMask = coding.AutoMask

// Error classes.
var (
	ErrInput    = coding.ErrInput
	ErrEncoding = coding.ErrEncoding
	ErrCapacity = coding.ErrCapacity
	ErrDomain   = coding.ErrDomain
)

// Create returns a QR code encoding input, which is one of:
//   - string: text, split into optimal segments
//   - []byte: binary data, encoded in Byte mode
//   - Segment or []Segment: segment descriptors; a descriptor's Mode
//     is a hint, Auto selecting the best mode for its text
//   - []string: texts, each encoded as one segment in its best mode
//
// Other types and empty data are errors wrapping ErrInput.
func Create(input any, opts ...Option) (*Code, error) {
	c := newConfig(opts)
	switch in := input.(type) {
	case string:
		return c.encodeText(in)
	case []byte:
		if len(in) == 0 {
			break
		}
		return c.encodeSegments([]Segment{{Mode: Byte, Data: in}})
	case Segment:
		return c.encodeSegments([]Segment{in})
	case []Segment:
		return c.encodeSegments(in)
	case []string:
		descs := make([]Segment, len(in))
		for i, s := range in {
			descs[i] = Segment{Text: s}
		}
		return c.encodeSegments(descs)
	default:
		return nil, fmt.Errorf("%w: unsupported input type %T", ErrInput, input)
	}
	return nil, fmt.Errorf("%w: no data", ErrInput)
}

// Encode returns a QR code encoding text.
func Encode(text string, opts ...Option) (*Code, error) {
	return newConfig(opts).encodeText(text)
}

// EncodeSegments returns a QR code encoding segment descriptors.
func EncodeSegments(segs []Segment, opts ...Option) (*Code, error) {
	return newConfig(opts).encodeSegments(segs)
}

// EncodeMulti splits text across up to 16 QR codes linked by
// Structured Append.  All codes have the version set by WithVersion,
// version 1 by default.
func EncodeMulti(text string, opts ...Option) ([]*Code, error) {
	c := newConfig(opts)
	if err := c.check(); err != nil {
		return nil, err
	}
	v := c.version
	if v == 0 {
		v = coding.MinVersion
	}
	parts, err := split.Multi(text, v, c.level, c.sjis)
	if err != nil {
		return nil, err
	}
	c.log.Debug("qrcode: structured append",
		slog.Int("symbols", len(parts)), slog.Any("version", v))
	codes := make([]*Code, len(parts))
	for i, segs := range parts {
		if codes[i], err = c.encode(segs, v); err != nil {
			return nil, err
		}
	}
	return codes, nil
}

// check validates the options.
func (c *config) check() error {
	switch {
	case !c.level.IsValid():
		return coding.ErrLevel
	case c.version != 0 && !c.version.IsValid():
		return coding.ErrVersion
	case c.mask != AutoMask && !c.mask.IsValid():
		return coding.ErrMask
	}
	return nil
}

func (c *config) encodeText(text string) (*Code, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("%w: no data", ErrInput)
	}
	if c.version != 0 {
		return c.fit(split.Optimize(text, c.version, c.sjis))
	}
	segs, v, err := split.Split(text, c.level, c.sjis)
	if err != nil {
		return nil, err
	}
	return c.encode(segs, v)
}

func (c *config) encodeSegments(descs []Segment) (*Code, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	segs, err := split.Segments(descs, c.sjis)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: no data", ErrInput)
	}
	return c.fit(segs)
}

// fit chooses the version for segs and encodes them.
func (c *config) fit(segs []Segment) (*Code, error) {
	l := c.level
	best, ok := split.BestVersion(segs, l)
	if !ok {
		return nil, &coding.CapacityError{
			Level:    l,
			Bits:     split.Length(segs, coding.MaxVersion),
			Capacity: coding.Capacity(coding.MaxVersion, l, coding.Mixed),
		}
	}
	v := c.version
	switch {
	case v == 0:
		v = best
	case v < best:
		return nil, &coding.CapacityError{
			Version:  v,
			Level:    l,
			Bits:     split.Length(segs, v),
			Capacity: coding.Capacity(v, l, coding.Mixed),
		}
	}
	return c.encode(segs, v)
}

func (c *config) encode(segs []Segment, v Version) (*Code, error) {
	c.log.Debug("qrcode: segments", slog.Any("version", v),
		slog.Any("level", c.level), slog.Any("segments", segs),
		slog.Int("bits", split.Length(segs, v)))
	cc, err := coding.Encode(v, c.level, c.mask, c.sjis, segs...)
	if err != nil {
		return nil, err
	}
	if c.log.Enabled(context.Background(), slog.LevelDebug) {
		c.log.Debug("qrcode: encoded", slog.Any("version", v),
			slog.Int("mask", int(cc.Mask)),
			slog.Int("penalty", cc.Penalty()))
	}
	return &Code{
		Modules:  cc.Modules,
		Version:  cc.Version,
		Level:    cc.Level,
		Mask:     cc.Mask,
		Segments: segs,
		Scale:    8,
		Border:   4,
	}, nil
}
