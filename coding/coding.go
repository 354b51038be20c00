// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: segment
// encoding, error correction, module placement and masking.
package coding // import "github.com/unixdj/qrcode/coding"

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/unixdj/qrcode/gf256"
)

// Error classes.  Every error returned by this module wraps one of
// them, so errors.Is can be used to tell them apart.
var (
	ErrInput    = errors.New("qr: invalid input")
	ErrEncoding = errors.New("qr: data not encodable")
	ErrCapacity = errors.New("qr: data too large")
	ErrDomain   = errors.New("qr: domain error")
)

var (
	ErrLevel   = fmt.Errorf("%w: invalid level", ErrDomain)
	ErrVersion = fmt.Errorf("%w: invalid version", ErrDomain)
	ErrMask    = fmt.Errorf("%w: invalid mask pattern", ErrDomain)
	ErrSize    = fmt.Errorf("%w: invalid matrix size", ErrDomain)
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// Versions run from 1 to 40:
// the larger the version, the more information the code can store.
type Version int

// Code versions.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is a QR version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// QR version size classes, selecting the length of character count
// indicators.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// Size returns the number of modules on a side of a QR code of
// version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 7% recoverable
	M              // 15% recoverable
	Q              // 25% recoverable
	H              // 30% recoverable
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is an error correction level.
func (l Level) IsValid() bool { return L <= l && l <= H }

// Bits returns the 2 bit code of l used in format information:
// 01 for L, 00 for M, 11 for Q and 10 for H.
func (l Level) Bits() int { return int(l) ^ 1 }

// ParseLevel parses an error correction level: one of l, m, q, h or
// low, medium, quartile, high, regardless of case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "l", "low":
		return L, nil
	case "m", "medium":
		return M, nil
	case "q", "quartile":
		return Q, nil
	case "h", "high":
		return H, nil
	}
	return 0, fmt.Errorf("%w %q", ErrLevel, s)
}

// LevelFrom is like ParseLevel, but returns def if s is not valid.
func LevelFrom(s string, def Level) Level {
	if l, err := ParseLevel(s); err == nil {
		return l
	}
	return def
}

// A Mask is a data mask pattern number from 0 to 7.
type Mask int

// IsValid reports whether m is a mask pattern.
func (m Mask) IsValid() bool { return 0 <= m && m <= 7 }

// SegmentError represents a segment not encodable in its mode.
type SegmentError struct {
	Text string // segment data
	Mode Mode   // encoding mode
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
}

func (e *SegmentError) Unwrap() error { return ErrEncoding }

// ModeError represents an invalid Mode.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("qr: invalid mode %s", Mode(e))
}

func (e ModeError) Unwrap() error { return ErrDomain }

// CapacityError represents data too large for a QR code.  Version is 0
// if no version can hold the data.
type CapacityError struct {
	Version  Version // QR version, or 0
	Level    Level   // error correction level
	Bits     int     // number of data bits required
	Capacity int     // number of data bits available
}

func (e *CapacityError) Error() string {
	if e.Version == 0 {
		return fmt.Sprintf("qr: data too large for any version at level %s",
			e.Level)
	}
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit code "+
		"(version %d-%s)", e.Bits, e.Capacity, e.Version, e.Level)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }
