// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/covercash2/fast-qr"

	sgr "github.com/foize/go.sgr"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding/charmap"
)

var g = struct {
	border   int        // quiet zone
	rev      bool       // reverse colours
	format   int        // output format
	lev      qr.Level   // QR correction level
	ver      qr.Version // QR version, 0 for smallest
	latin1   bool       // Latin-1 byte mode
	byteOnly bool       // byte mode only
	info     bool       // print parameters to stderr
}{
	border: 4,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  The smallest version holding the data is used
unless -v is given.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	bb := b.Bytes()
	if n := bytes.Index(bb, []byte(" [0]")); n >= 0 {
		w.Write(bb[:n])
		bb = bb[n+len(" [0]"):]
	}
	w.Write(bb)
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
	fmt.Println(`qr version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

var formats = []string{"utf8", "utf8i", "ascii", "asciii"}

var encoders = [...]func(*qr.Code, io.Writer) error{
	utf8,
	ascii,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.latin1, '1', "convert input to Latin-1")
	getopt.Flag(&g.byteOnly, '8', "encode entire data in byte mode")
	getopt.Flag(&g.info, 'M',
		"print version, level, mode and mask to standard error")
	getopt.Flag(&g.border, 'm', "quiet zone modules", "margin")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{0, 8, 0, 40},
		"QR code version, 0 for the smallest that fits", "ver")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if standard output is a TTY, default is utf8, otherwise ascii`,
		"type")

	getopt.Parse()
	if g.border < 0 {
		fmt.Fprintln(os.Stderr, "-m must not be negative")
		usage()
	}
	g.ver = qr.Version(*ver)
	g.lev = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if *ff == "" {
		if isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "ascii"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

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
	if g.latin1 {
		var err error
		if s, err = charmap.ISO8859_1.NewEncoder().String(s); err != nil {
			log.Fatalln("cannot convert input to Latin-1:", err)
		}
	}

	var (
		c   *qr.Code
		err error
	)
	if g.byteOnly {
		c, err = qr.EncodeMode([]byte(s), qr.Byte, g.lev, g.ver)
	} else {
		c, err = qr.Encode([]byte(s), g.lev, g.ver)
	}
	if err != nil {
		log.Fatalln(err)
	}
	if g.info {
		fmt.Fprintf(os.Stderr, "version %s-%s, %s mode, mask %d\n",
			c.Version, c.Level, c.Mode, c.Mask)
	}
	w := bufio.NewWriter(os.Stdout)
	if err = encoders[g.format](c, w); err == nil {
		err = w.Flush()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// halfBlocks are indexed by top | bottom<<1, where a set bit is a
// module drawn in the foreground colour.
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// utf8 prints two rows of modules per line.  Light modules are drawn
// white on black, or left to the terminal's background if reversed.
func utf8(c *qr.Code, w io.Writer) error {
	siz := c.Size
	bord := g.border
	drawn := func(x, y int) bool {
		return c.Black(x, y) == g.rev
	}
	for y := -bord; y < siz+bord; y += 2 {
		if !g.rev {
			io.WriteString(w, sgr.FgWhite+sgr.BgBlack)
		}
		for x := -bord; x < siz+bord; x++ {
			var i int
			if drawn(x, y) {
				i |= 1
			}
			if y+1 < siz+bord && drawn(x, y+1) {
				i |= 2
			}
			io.WriteString(w, halfBlocks[i])
		}
		if !g.rev {
			io.WriteString(w, sgr.Reset)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func ascii(c *qr.Code, w io.Writer) error {
	siz := c.Size
	bord := g.border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) != g.rev {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
