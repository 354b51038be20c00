// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is an append-only bit buffer.  Bits are packed most significant
// first.  The zero value is an empty buffer ready to use.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for the codewords of a QR
// code of the given version.
func NewBits(v Version) *Bits {
	n := 0
	if v.IsValid() {
		n = totalCodewords[v]
	}
	return &Bits{b: make([]byte, 0, n)}
}

// Reset empties b, keeping its buffer.
func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Len returns the number of bits written to b.
func (b *Bits) Len() int { return b.nbit }

// Bytes returns the underlying buffer.  A fractional last byte is
// padded with zero bits.
func (b *Bits) Bytes() []byte { return b.b }

// Get returns the bit at index i.
func (b *Bits) Get(i int) bool {
	return b.b[i>>3]>>(7&^i)&1 != 0
}

// PutBit appends a single bit to b.
func (b *Bits) PutBit(bit bool) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, 0)
	}
	if bit {
		b.b[b.nbit>>3] |= 0x80 >> (b.nbit & 7)
	}
	b.nbit++
}

// Put appends the low nbit bits of v to b, most significant first.
// nbit must be between 0 and 32.
func (b *Bits) Put(v uint32, nbit int) {
	if nbit <= 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// putBytes appends whole bytes to b.
func (b *Bits) putBytes(p []byte) {
	if b.nbit&7 != 0 {
		for _, c := range p {
			b.Put(uint32(c), 8)
		}
		return
	}
	b.b = append(b.b, p...)
	b.nbit += len(p) * 8
}
