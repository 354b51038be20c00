// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode_test

import (
	"errors"
	"fmt"

	"github.com/unixdj/qrcode"
)

func ExampleCreate() {
	c, err := qrcode.Create("http://www.google.com")
	if err != nil {
		panic(err)
	}
	fmt.Printf("version %d-%s, mask %d, %d modules\n",
		c.Version, c.Level, c.Mask, c.Size())
	for _, seg := range c.Segments {
		fmt.Println(seg.Mode, seg.Len())
	}
	// Output:
	// version 2-M, mask 6, 25 modules
	// byte 21
}

func ExampleCreate_segments() {
	c, err := qrcode.Create([]qrcode.Segment{
		{Text: "HELLO"},
		{Mode: qrcode.Byte, Text: "12345"},
		{Data: []byte{0xca, 0xfe}},
	}, qrcode.WithLevel(qrcode.H))
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Version)
	for _, seg := range c.Segments {
		fmt.Println(seg.Mode, seg.Len())
	}
	// Output:
	// 2
	// alphanumeric 5
	// byte 5
	// byte 2
}

func ExampleCreate_capacity() {
	_, err := qrcode.Create("i am a pony!", qrcode.WithVersion(1),
		qrcode.WithLevel(qrcode.H))
	fmt.Println(errors.Is(err, qrcode.ErrCapacity))
	fmt.Println(err)
	// Output:
	// true
	// qr: cannot encode 108 bits into 72-bit code (version 1-H)
}
