// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qrcode/gf256"

// totalCodewords[v] is the number of codewords in a QR code of
// version v.
var totalCodewords = [MaxVersion + 1]int{
	0, 26, 44, 70, 100, 134, 172, 196, 242, 292, 346,
	404, 466, 532, 581, 655, 733, 815, 901, 991, 1085,
	1156, 1258, 1364, 1474, 1588, 1706, 1828, 1921, 2051, 2185,
	2323, 2465, 2611, 2761, 2876, 3034, 3196, 3362, 3532, 3706,
}

// ecBlocks[v-1] lists the number of error correction blocks in a QR
// code of version v for levels L, M, Q, H.
var ecBlocks = [MaxVersion][4]int{
	{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 2, 2}, {1, 2, 2, 4},
	{1, 2, 4, 4}, {2, 4, 4, 4}, {2, 4, 6, 5}, {2, 4, 6, 6},
	{2, 5, 8, 8}, {4, 5, 8, 8}, {4, 5, 8, 11}, {4, 8, 10, 11},
	{4, 9, 12, 16}, {4, 9, 16, 16}, {6, 10, 12, 18}, {6, 10, 17, 16},
	{6, 11, 16, 19}, {6, 13, 18, 21}, {7, 14, 21, 25}, {8, 16, 20, 25},
	{8, 17, 23, 25}, {9, 17, 23, 34}, {9, 18, 25, 30}, {10, 20, 27, 32},
	{12, 21, 29, 35}, {12, 23, 34, 37}, {12, 25, 34, 40}, {13, 26, 35, 42},
	{14, 28, 38, 45}, {15, 29, 40, 48}, {16, 31, 43, 51}, {17, 33, 45, 54},
	{18, 35, 48, 57}, {19, 37, 51, 60}, {19, 38, 53, 63}, {20, 40, 56, 66},
	{21, 43, 59, 70}, {22, 45, 62, 74}, {24, 47, 65, 77}, {25, 49, 68, 81},
}

// ecCodewords[v-1] lists the total number of error correction
// codewords in a QR code of version v for levels L, M, Q, H.
var ecCodewords = [MaxVersion][4]int{
	{7, 10, 13, 17}, {10, 16, 22, 28}, {15, 26, 36, 44}, {20, 36, 52, 64},
	{26, 48, 72, 88}, {36, 64, 96, 112}, {40, 72, 108, 130}, {48, 88, 132, 156},
	{60, 110, 160, 192}, {72, 130, 192, 224}, {80, 150, 224, 264}, {96, 176, 260, 308},
	{104, 198, 288, 352}, {120, 216, 320, 384}, {132, 240, 360, 432}, {144, 280, 408, 480},
	{168, 308, 448, 532}, {180, 338, 504, 588}, {196, 364, 546, 650}, {224, 416, 600, 700},
	{224, 442, 644, 750}, {252, 476, 690, 816}, {270, 504, 750, 900}, {300, 560, 810, 960},
	{312, 588, 870, 1050}, {336, 644, 952, 1110}, {360, 700, 1020, 1200}, {390, 728, 1050, 1260},
	{420, 784, 1140, 1350}, {450, 812, 1200, 1440}, {480, 868, 1290, 1530}, {510, 924, 1350, 1620},
	{540, 980, 1440, 1710}, {570, 1036, 1530, 1800}, {570, 1064, 1590, 1890}, {600, 1120, 1680, 1980},
	{630, 1204, 1770, 2100}, {660, 1260, 1860, 2220}, {720, 1316, 1950, 2310}, {750, 1372, 2040, 2430},
}

// TotalCodewords returns the number of codewords in a QR code of
// version v.
func (v Version) TotalCodewords() int { return totalCodewords[v] }

// ECBlocks returns the number of error correction blocks in a QR code
// of version v and level l.
func (v Version) ECBlocks(l Level) int { return ecBlocks[v-1][l] }

// ECCodewords returns the total number of error correction codewords
// in a QR code of version v and level l.
func (v Version) ECCodewords(l Level) int { return ecCodewords[v-1][l] }

// DataCodewords returns the number of data codewords that can be
// stored in a QR code with the given version and level.
func (v Version) DataCodewords(l Level) int {
	return totalCodewords[v] - ecCodewords[v-1][l]
}

// DataBits returns the number of data bits that can be stored in a QR
// code with the given version and level.
func (v Version) DataBits(l Level) int { return v.DataCodewords(l) * 8 }

// Padding codewords.
const (
	pad0 = 0xec
	pad1 = 0x11
)

// Terminate adds the terminator and padding to b, filling the data
// codewords of a QR code of version v and level l.  It returns a
// CapacityError if b holds more bits than the code.
func (b *Bits) Terminate(v Version, l Level) error {
	nb := v.DataBits(l)
	if b.nbit > nb {
		return &CapacityError{v, l, b.nbit, nb}
	}
	if b.nbit+4 <= nb {
		b.Put(0, 4)
	}
	if rem := -b.nbit & 7; rem != 0 {
		b.Put(0, rem)
	}
	for i := 0; b.nbit < nb; i++ {
		if i&1 == 0 {
			b.Put(pad0, 8)
		} else {
			b.Put(pad1, 8)
		}
	}
	return nil
}

// A block is a data block with its error correction codewords.
type block struct {
	data  []byte
	check []byte
}

// splitBlocks splits the data codewords of a QR code of version v and
// level l into blocks and computes their error correction codewords.
// Blocks in the second group hold one data codeword more than those
// in the first.
func splitBlocks(data []byte, v Version, l Level) []block {
	total := v.TotalCodewords()
	nblock := v.ECBlocks(l)
	ndata := v.DataCodewords(l)

	group2 := total % nblock
	group1 := nblock - group2
	db := ndata / nblock    // data codewords per block in group 1
	ec := total/nblock - db // error correction codewords per block

	rs := gf256.NewRSEncoder(Field, ec)
	blocks := make([]block, nblock)
	for i := range blocks {
		n := db
		if i >= group1 {
			n++
		}
		blocks[i].data = data[:n]
		blocks[i].check = make([]byte, ec)
		rs.ECC(data[:n], blocks[i].check)
		data = data[n:]
	}
	return blocks
}

// interleave returns the codewords of blocks interleaved: first data
// codewords round robin by position, skipping short blocks, then
// error correction codewords the same way.
func interleave(blocks []block, total int) []byte {
	dst := make([]byte, 0, total)
	n := len(blocks[len(blocks)-1].data)
	for i := 0; i < n; i++ {
		for _, b := range blocks {
			if i < len(b.data) {
				dst = append(dst, b.data[i])
			}
		}
	}
	for i := range blocks[0].check {
		for _, b := range blocks {
			dst = append(dst, b.check[i])
		}
	}
	return dst
}

// Codewords terminates and pads b for a QR code of version v and level
// l, adds error correction codewords and returns all codewords with
// blocks interleaved.
func (b *Bits) Codewords(v Version, l Level) ([]byte, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	if !l.IsValid() {
		return nil, ErrLevel
	}
	if err := b.Terminate(v, l); err != nil {
		return nil, err
	}
	blocks := splitBlocks(b.Bytes(), v, l)
	return interleave(blocks, v.TotalCodewords()), nil
}
