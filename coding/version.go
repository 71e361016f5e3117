// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details.
package coding // import "github.com/covercash2/fast-qr/coding"

import (
	"strconv"

	"github.com/covercash2/fast-qr/gf256"
)

//go:generate sh -c "go run gen.go | gofmt > tables.go"

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version, the more
// information the code can store.
type Version int

// Code versions.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is a QR version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// QR version size classes.  The class determines the length of the
// character count indicator.
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

// Size returns the number of modules on a side.
func (v Version) Size() int { return int(v)*4 + 17 }

// Alignment returns the alignment pattern centre coordinates, used
// both as rows and columns.  It returns nil for version 1.
func (v Version) Alignment() []int { return vtab[v].align }

// RemainderBits returns the number of bits left over after the last
// codeword is placed.  They are always light before masking.
func (v Version) RemainderBits() int { return vtab[v].remainder }

// Info returns the 18 bit version information, or 0 below version 7.
func (v Version) Info() uint32 { return vtab[v].info }

// Codewords returns the total number of data and check codewords.
func (v Version) Codewords() int { return vtab[v].bytes }

// DataBytes returns the number of data bytes that can be
// stored in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	vt := &vtab[v]
	lev := vt.level[l]
	return vt.bytes - lev.nblock*lev.check
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int { return v.DataBytes(l) * 8 }

// Blocks returns the number of error correction blocks and the number
// of check bytes in each block.
func (v Version) Blocks(l Level) (nblock, check int) {
	lev := vtab[v].level[l]
	return lev.nblock, lev.check
}

// Capacity returns the maximum number of characters of the given mode
// that fit in version v at level l.
func (v Version) Capacity(mode Mode, l Level) int {
	if !v.IsValid() || !l.IsValid() || !mode.IsValid() {
		return 0
	}
	return ctab[l][mode][v]
}

// SelectVersion returns the smallest version whose capacity for mode
// at level l is at least n characters.  It returns false if no
// version is large enough.
func SelectVersion(mode Mode, l Level, n int) (Version, bool) {
	if !l.IsValid() || !mode.IsValid() || n < 0 {
		return 0, false
	}
	caps := &ctab[l][mode]
	if caps[MaxVersion] < n {
		return 0, false
	}
	// Capacities are increasing, search for the first fit.
	v, hi := MinVersion, MaxVersion
	for v < hi {
		if mid := (v + hi) / 2; caps[mid] < n {
			v = mid + 1
		} else {
			hi = mid
		}
	}
	return v, true
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is one of L, M, Q and H.
func (l Level) IsValid() bool { return L <= l && l <= H }

// bits returns the two bit level indicator in the format information.
func (l Level) bits() uint16 { return uint16(l) ^ 1 } // L=01, M=00, Q=11, H=10

// A version describes metadata associated with a version.
type version struct {
	bytes     int    // total codewords
	remainder int    // remainder bits
	info      uint32 // version information
	align     []int  // alignment pattern centres
	level     [4]level
}

type level struct {
	nblock int // number of blocks
	check  int // check bytes per block
}
