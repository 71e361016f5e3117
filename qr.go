// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes.

Encode chooses the most compact encoding mode for the data and the
smallest version that holds it, unless a version is given:

	c, err := qr.Encode([]byte("HELLO WORLD"), qr.Q, 0)
	if err != nil {
		return err
	}
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				// ...
			}
		}
	}

The returned Code holds the module grid only; the quiet zone around it
is left to the caller.
*/
package qr // import "github.com/covercash2/fast-qr"

import (
	"github.com/covercash2/fast-qr/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L // 20% redundant
	M = coding.M // 38% redundant
	Q = coding.Q // 55% redundant
	H = coding.H // 65% redundant
)

// A Version is a QR version from 1 to 40.  The zero Version lets
// Encode choose the smallest one that fits.
type Version = coding.Version

// A Mode is a QR segment encoding mode.
type Mode = coding.Mode

// Encoding modes.
const (
	Numeric      = coding.Numeric
	Alphanumeric = coding.Alphanumeric
	Byte         = coding.Byte
)

// A Code is a QR code: a square module grid and the parameters it
// was encoded with.
type Code struct {
	coding.Code
	Mode Mode // encoding mode of the data
}

// Encode returns an encoding of data at the given error correction
// level in the most compact mode able to represent it.  If version is
// 0, the smallest version holding the data is used.
func Encode(data []byte, level Level, version Version) (*Code, error) {
	return EncodeMode(data, coding.ChooseMode(data), level, version)
}

// EncodeMode is like Encode but forces the encoding mode.
func EncodeMode(data []byte, mode Mode, level Level, version Version) (*Code, error) {
	if !level.IsValid() {
		return nil, ErrLevel
	}
	seg := coding.Segment{Data: data, Mode: mode}
	if !mode.IsValid() {
		return nil, coding.ModeError(mode)
	}
	if !seg.IsValid() {
		return nil, coding.SegmentError(seg)
	}
	if version == 0 {
		v, ok := coding.SelectVersion(mode, level, len(data))
		if !ok {
			return nil, &CapacityError{
				Mode:    mode,
				Level:   level,
				Version: coding.MaxVersion,
				Len:     len(data),
				Max:     coding.MaxVersion.Capacity(mode, level),
			}
		}
		version = v
	} else if !version.IsValid() {
		return nil, ErrVersion
	} else if n := version.Capacity(mode, level); len(data) > n {
		return nil, &CapacityError{
			Mode:    mode,
			Level:   level,
			Version: version,
			Len:     len(data),
			Max:     n,
			Hint:    true,
		}
	}

	c, err := coding.Encode(version, level, seg)
	if err != nil {
		return nil, err
	}
	return &Code{Code: *c, Mode: mode}, nil
}
