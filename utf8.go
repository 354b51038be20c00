// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import "strings"

// blocks maps a pair of vertically adjacent modules, top<<1|bottom
// with 1 for dark, to a block element.
var blocks = [2][4]string{
	{" ", "▄", "▀", "█"},
	{"█", "▀", "▄", " "}, // inverted
}

// UTF8 returns the code as UTF-8 block art, two module rows per line,
// surrounded by a quiet zone of margin modules.  Dark modules are drawn
// with blocks, or light modules if invert is set.  A quiet zone line
// covers two modules, hence margin/2 lines are added above and below.
// The final newline is omitted.
func (c *Code) UTF8(margin int, invert bool) string {
	margin = max(margin, 0)
	bl := &blocks[b2i(invert)]
	siz := c.Size()
	side := strings.Repeat(bl[0], margin)
	hmargin := strings.Repeat(strings.Repeat(bl[0], siz+2*margin)+"\n",
		margin/2)

	var b strings.Builder
	b.WriteString(hmargin)
	for y := 0; y < siz; y += 2 {
		b.WriteString(side)
		for x := 0; x < siz; x++ {
			b.WriteString(bl[b2i(c.Black(x, y))<<1|b2i(c.Black(x, y+1))])
		}
		b.WriteString(side)
		b.WriteByte('\n')
	}
	if hmargin != "" {
		b.WriteString(hmargin[:len(hmargin)-1])
	}
	return b.String()
}

// String returns the code as UTF-8 block art with a quiet zone of
// c.Border modules.
func (c *Code) String() string { return c.UTF8(c.Border, c.Reverse) }

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
