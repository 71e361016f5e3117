// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
)

// A Mode is a QR segment encoding mode.
type Mode int

// Encoding modes, from the most to the least compact.  Each mode's
// character set contains the previous one's.
const (
	Numeric      Mode = iota // digits
	Alphanumeric             // digits, upper case letters and " $%*+-./:"
	Byte                     // any data
)

var modeNames = [...]string{"numeric", "alphanumeric", "byte"}

func (mode Mode) String() string {
	if mode.IsValid() {
		return modeNames[mode]
	}
	return strconv.Itoa(int(mode))
}

// IsValid reports whether mode is Numeric, Alphanumeric or Byte.
func (mode Mode) IsValid() bool { return Numeric <= mode && mode <= Byte }

// Indicator returns the 4 bit mode indicator.
func (mode Mode) Indicator() uint32 { return 1 << mode }

// countLength lists lengths of the character count field
// by mode and version size class.
var countLength = [3][3]int{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
}

// CountLength returns the length in bits of the character count
// indicator for mode in version v.
func (mode Mode) CountLength(v Version) int {
	return countLength[mode][v.SizeClass()]
}

// Length returns the length in bits of n characters encoded in mode
// in version v, including the header.  Length returns 0 if mode is
// invalid.
func (mode Mode) Length(n int, v Version) int {
	if !mode.IsValid() {
		return 0
	}
	n = max(n, 0)
	var d int
	switch mode {
	case Numeric:
		d = (10*n + 2) / 3
	case Alphanumeric:
		d = (11*n + 1) / 2
	default:
		d = 8 * n
	}
	return 4 + mode.CountLength(v) + d
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// Accepts reports whether c is in the character set of mode.
func (mode Mode) Accepts(c byte) bool {
	switch mode {
	case Numeric:
		return c-'0' < 10
	case Alphanumeric:
		return alphamask>>(c-' ')&1 != 0
	}
	return mode == Byte
}

// ChooseMode returns the most compact mode able to encode data.
func ChooseMode(data []byte) Mode {
	mode := Numeric
	for _, c := range data {
		for !mode.Accepts(c) {
			mode++
		}
		if mode == Byte {
			break
		}
	}
	return mode
}

// A Segment describes a QR code segment.
type Segment struct {
	Data []byte // data to encode
	Mode Mode   // encoding mode
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	if !seg.Mode.IsValid() {
		return false
	}
	if seg.Mode != Byte {
		for _, c := range seg.Data {
			if !seg.Mode.Accepts(c) {
				return false
			}
		}
	}
	return true
}

// EncodedLength returns the encoded length in bits of seg in version
// v, including the header.  The segment is not validated.
func (seg Segment) EncodedLength(v Version) int {
	return seg.Mode.Length(len(seg.Data), v)
}

// Encode writes seg encoded for version v to b.
func (seg Segment) Encode(b *Bits, v Version) error {
	if !seg.Mode.IsValid() {
		return ModeError(seg.Mode)
	}
	if !v.IsValid() {
		return ErrVersion
	}
	if !seg.IsValid() {
		return SegmentError(seg)
	}
	if n, cl := len(seg.Data), seg.Mode.CountLength(v); n >= 1<<cl {
		return fmt.Errorf("%w: %d %s characters exceed %d-bit count in version %s",
			ErrOverflow, n, seg.Mode, cl, v)
	}
	if err := b.Write(seg.Mode.Indicator(), 4); err != nil {
		return err
	}
	s := seg.Data
	if err := b.Write(uint32(len(s)), seg.Mode.CountLength(v)); err != nil {
		return err
	}
	var err error
	switch seg.Mode {
	case Numeric:
		for ; len(s) >= 3 && err == nil; s = s[3:] {
			err = b.Write(uint32(s[0]-'0')*100+uint32(s[1]-'0')*10+
				uint32(s[2]-'0'), 10)
		}
		switch {
		case err != nil:
		case len(s) == 2:
			err = b.Write(uint32(s[0]-'0')*10+uint32(s[1]-'0'), 7)
		case len(s) == 1:
			err = b.Write(uint32(s[0]-'0'), 4)
		}
	case Alphanumeric:
		for ; len(s) >= 2 && err == nil; s = s[2:] {
			err = b.Write(uint32(alpha[s[0]&0x3f])*45+
				uint32(alpha[s[1]&0x3f]), 11)
		}
		if err == nil && len(s) == 1 {
			err = b.Write(uint32(alpha[s[0]&0x3f]), 6)
		}
	default:
		for ; len(s) >= 4 && err == nil; s = s[4:] {
			err = b.Write(uint32(s[0])<<24|uint32(s[1])<<16|
				uint32(s[2])<<8|uint32(s[3]), 32)
		}
		for ; len(s) != 0 && err == nil; s = s[1:] {
			err = b.Write(uint32(s[0]), 8)
		}
	}
	return err
}
