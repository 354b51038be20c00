// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "errors"

// ErrNotInitialized is returned by RSEncoder.Encode if the encoder has
// no generator polynomial.
var ErrNotInitialized = errors.New("gf256: reed-solomon encoder not initialized")

// An RSEncoder implements Reed-Solomon encoding over a given field
// using a given number of error correction bytes.
type RSEncoder struct {
	f      *Field
	degree int
	gen    []byte
}

// NewRSEncoder returns a new Reed-Solomon encoder over the given field
// producing degree error correction bytes.  A degree of 0 leaves the
// encoder uninitialized; Init sets the degree later.
func NewRSEncoder(f *Field, degree int) *RSEncoder {
	rs := &RSEncoder{f: f}
	rs.Init(degree)
	return rs
}

// Init sets the number of error correction bytes, replacing the
// generator polynomial.  A degree below 1 clears it.
func (rs *RSEncoder) Init(degree int) {
	rs.degree, rs.gen = 0, nil
	if degree > 0 {
		rs.degree, rs.gen = degree, rs.f.Generator(degree)
	}
}

// Degree returns the number of error correction bytes produced by rs.
func (rs *RSEncoder) Degree() int { return rs.degree }

// Generator returns the generator polynomial of rs, or nil.
func (rs *RSEncoder) Generator() []byte { return rs.gen }

// Encode returns the error correction bytes for data.
func (rs *RSEncoder) Encode(data []byte) ([]byte, error) {
	if rs.gen == nil {
		return nil, ErrNotInitialized
	}
	check := make([]byte, rs.degree)
	rs.ECC(data, check)
	return check, nil
}

// ECC writes to check the error correction bytes for data.
// check must have length Degree().  ECC panics if rs is not
// initialized.
func (rs *RSEncoder) ECC(data, check []byte) {
	if rs.gen == nil {
		panic(ErrNotInitialized)
	}
	if len(check) != rs.degree {
		panic("gf256: invalid check byte length")
	}
	p := make([]byte, len(data)+rs.degree)
	copy(p, data)
	r := rs.f.ModPoly(p, rs.gen)
	// left-pad the remainder to degree bytes
	n := copy(check, make([]byte, rs.degree-len(r)))
	copy(check[n:], r)
}
