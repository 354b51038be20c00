// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrcode

import (
	"errors"
	"image"
	"image/color"

	"github.com/unixdj/qrcode/coding"
)

// ErrArgs is returned by renderers for invalid rendering parameters.
var ErrArgs = errors.New("qr: invalid arguments")

// A Code is a QR code: a square grid of modules and the parameters it
// was encoded with.  Scale, Border, Reverse and Palette control
// rendering.
type Code struct {
	Modules  *coding.BitMatrix // modules, row major
	Version  Version           // QR version
	Level    Level             // error correction level
	Mask     Mask              // mask pattern
	Segments []Segment         // encoded segments

	Scale   int             // number of image pixels per module
	Border  int             // quiet zone width in modules
	Reverse bool            // reverse colours
	Palette *[2]color.Color // light and dark colours for Image
}

// Size returns the number of modules on a side.
func (c *Code) Size() int { return c.Modules.Size() }

// Black returns true if the module at (x,y) is dark.  Modules outside
// the symbol are light.
func (c *Code) Black(x, y int) bool {
	siz := c.Modules.Size()
	return 0 <= x && x < siz && 0 <= y && y < siz && c.Modules.Get(y, x)
}

func (c *Code) isValid() bool {
	return c.Modules != nil && c.Scale > 0 && c.Border >= 0 &&
		int64(c.Scale)*int64(c.Size()+2*c.Border) < 1<<28
}

// Image returns an Image displaying the code, with a quiet zone of
// c.Border modules, or nil if the rendering parameters are invalid.
func (c *Code) Image() image.Image {
	if !c.isValid() {
		return nil
	}
	pal := color.Palette{color.Gray{0xff}, color.Gray{0x00}}
	if c.Palette != nil {
		pal = color.Palette{c.Palette[0], c.Palette[1]}
	}
	if c.Reverse {
		pal[0], pal[1] = pal[1], pal[0]
	}
	return &codeImage{c, pal}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
	pal color.Palette
}

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size() + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color { return c.pal[c.ColorIndexAt(x, y)] }

func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return 1
	}
	return 0
}

func (c *codeImage) ColorModel() color.Model { return c.pal }
