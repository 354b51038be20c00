// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import (
	"io"
	"log/slog"

	"github.com/unixdj/qrcode/coding"
)

// An Option configures encoding.
type Option func(*config)

type config struct {
	version coding.Version
	level   coding.Level
	mask    coding.Mask
	sjis    coding.ShiftJISFunc
	log     *slog.Logger
}

func newConfig(opts []Option) *config {
	c := &config{
		level: coding.M,
		mask:  coding.AutoMask,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithVersion forces QR version v.  By default the smallest version
// able to hold the data is used.  Version 0 restores the default.
func WithVersion(v Version) Option {
	return func(c *config) { c.version = v }
}

// WithLevel sets the error correction level.  The default is M.
func WithLevel(l Level) Option {
	return func(c *config) { c.level = l }
}

// WithLevelName sets the error correction level by name: one of l, m,
// q, h, low, medium, quartile or high, in any case.  Unknown names
// select level M.
func WithLevelName(s string) Option {
	return func(c *config) { c.level = coding.LevelFrom(s, coding.M) }
}

// WithMask forces mask pattern m.  AutoMask, the default, selects the
// pattern with the lowest penalty.
func WithMask(m Mask) Option {
	return func(c *config) { c.mask = m }
}

// WithShiftJIS enables Kanji mode, converting characters to Shift JIS
// with fn.  A nil fn disables Kanji mode.
func WithShiftJIS(fn coding.ShiftJISFunc) Option {
	return func(c *config) { c.sjis = fn }
}

// WithKanji enables Kanji mode with the standard Shift JIS mapping.
func WithKanji() Option { return WithShiftJIS(coding.ShiftJIS) }

// WithLogger sets the logger receiving debug records.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
