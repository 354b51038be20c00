// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrcode encodes its arguments or standard input as a QR code.
package main

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/unixdj/qrcode"
	"github.com/unixdj/qrcode/coding"
)

var g = struct {
	scale   int             // image pixels per module
	border  int             // quiet zone
	palette *[2]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	fext    string          // filename suffix
	lev     coding.Level    // QR correction level
	ver     coding.Version  // QR version, 0 for auto
	mask    coding.Mask     // mask pattern
	format  int             // output file format
	bg, fg  rgba            // colours
	colSet  bool            // colour set
	kanji   bool            // kanji mode enabled
	multi   bool            // structured append
	debug   bool            // debug log
}{
	bg: rgba{0xff, 0xff, 0xff, 0xff},
	fg: rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Defaults are taken from the environment variables
QRCODE_LEVEL, QRCODE_MARGIN, QRCODE_SCALE, QRCODE_FORMAT, QRCODE_KANJI
and QRCODE_DEBUG, which may be set in a .env file.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrcode version 0.1.0
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

func noKanji() { g.kanji = false }

type rgba struct {
	R, G, B, A uint8
}

func (c *rgba) String() string {
	switch {
	case *c == rgba{0x00, 0x00, 0x00, 0xff}:
		return "black"
	case *c == rgba{0xff, 0xff, 0xff, 0xff}:
		return "white"
	case c.A == 0xff:
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	switch strings.ToLower(s) {
	case "black":
		*c = rgba{0x00, 0x00, 0x00, 0xff}
		return nil
	case "white":
		*c = rgba{0xff, 0xff, 0xff, 0xff}
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*qrcode.Code, io.Writer) error{
	func(c *qrcode.Code, w io.Writer) error {
		img := c.Image()
		if img == nil {
			return qrcode.ErrArgs
		}
		return png.Encode(w, img)
	},
	(*qrcode.Code).EncodePBM,
	func(c *qrcode.Code, w io.Writer) error {
		_, err := fmt.Fprintln(w, c)
		return err
	},
	ascii,
}

func parseFlags(cfg config) {
	g.scale, g.border, g.kanji, g.debug = cfg.Scale, cfg.Margin,
		cfg.Kanji, cfg.Debug
	lev, ff := cfg.Level, cfg.Format

	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits, "black" or "white"; `+
		`only for types png[i]`, "RGB[A]|name")
	getopt.Flag(opt(noKanji), 'K', "disable kanji mode").SetFlag()
	getopt.Flag(&g.multi, 'S', `encode structured append symbols `+
		`(multiple QR codes) of the version given by -v, 1 by default`)
	getopt.Flag(&g.debug, 'd', "log encoding details to standard error")
	getopt.Flag(&g.border, 'm', `quiet zone modules`, "margin")
	getopt.Flag(&g.scale, 's', `image pixels per QR module; `+
		`ignored for types utf8[i] and ascii[i]`, "scale")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output; with -S, "-01", "-02" etc. is appended `+
		`to the filename before suffix`, "file")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"QR code version, 0 for the smallest fitting", "ver")
	mask := getopt.Signed('k', -1, &getopt.SignedLimit{Base: 0, Bits: 8, Min: -1, Max: 7},
		"mask pattern, -1 for the lowest penalty", "mask")
	getopt.Flag(&lev, 'l', "error correction level, lowest to highest",
		"l|m|q|h")
	getopt.Flag(&ff, 't', `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	var err error
	if g.lev, err = coding.ParseLevel(lev); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
	}
	if g.scale < 1 || g.border < 0 {
		fmt.Fprintln(os.Stderr, "scale must be positive, margin non-negative")
		usage()
	}
	g.ver = coding.Version(*ver)
	g.mask = coding.Mask(*mask)
	if ff == "" {
		if !fno.Seen() && isatty.IsTerminal(os.Stdout.Fd()) {
			ff = "utf8"
		} else {
			ff = "png"
		}
	}
	g.format = -1
	for i, v := range formats {
		if ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.format < 0 {
		fmt.Fprintf(os.Stderr, "%q: unknown output format\n", ff)
		usage()
	}
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
}

func main() {
	log.SetFlags(0)
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalln(err)
	}
	parseFlags(cfg)

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	opts := []qrcode.Option{
		qrcode.WithLevel(g.lev),
		qrcode.WithVersion(g.ver),
		qrcode.WithMask(g.mask),
	}
	if g.kanji {
		opts = append(opts, qrcode.WithKanji())
	}
	if g.debug {
		opts = append(opts, qrcode.WithLogger(slog.New(
			slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	if g.multi {
		g.fext = path.Ext(g.fn)
		g.fn = g.fn[:len(g.fn)-len(g.fext)]
		cc, err := qrcode.EncodeMulti(s, opts...)
		if err != nil {
			log.Fatalln(err)
		}
		for i := range cc {
			write(i, cc[i])
		}
	} else {
		c, err := qrcode.Encode(s, opts...)
		if err != nil {
			log.Fatalln(err)
		}
		write(-1, c)
	}
}

func write(i int, c *qrcode.Code) {
	fn := g.fn
	open := fn != "" || g.fext != ""
	var w = os.Stdout
	if open {
		if i >= 0 {
			fn = fmt.Sprintf("%s-%02d%s", fn, i+1, g.fext)
		}
		var err error
		if w, err = os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c.Scale = g.scale
	c.Border = g.border
	c.Palette = g.palette
	c.Reverse = g.rev
	err := encoders[g.format](c, w)
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func ascii(c *qrcode.Code, w io.Writer) error {
	siz := c.Size()
	bord := c.Border
	pix := siz + 2*bord
	dark, light := byte('#'), byte(' ')
	if c.Reverse {
		dark, light = light, dark
	}
	var b bytes.Buffer
	b.Grow((pix*2 + 1) * pix)
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			p := light
			if c.Black(x, y) {
				p = dark
			}
			b.WriteByte(p)
			b.WriteByte(p)
		}
		b.WriteByte('\n')
	}
	_, err := b.WriteTo(w)
	return err
}
