// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// A Code is an encoded QR code.
type Code struct {
	Matrix
	Version Version // QR code version
	Level   Level   // error correction level
	Mask    int     // mask pattern
}

// Encoder encodes a QR code.  An Encoder produces one Code.
type Encoder struct {
	p    *Plan
	l    Level
	b    *Bits
	mask int // forced mask, or -1
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(version Version, level Level) (*Encoder, error) {
	if !level.IsValid() {
		return nil, ErrLevel
	}
	p, err := NewPlan(version)
	if err != nil {
		return nil, err
	}
	return &Encoder{p: p, l: level, b: NewBits(version), mask: -1}, nil
}

// SetMask forces the mask pattern, skipping penalty evaluation.
// A negative mask restores automatic selection.
func (e *Encoder) SetMask(mask int) error {
	if mask >= NumMasks {
		return ErrMask
	}
	e.mask = max(mask, -1)
	return nil
}

// Write adds segments to e.
func (e *Encoder) Write(segs ...Segment) error {
	for _, seg := range segs {
		if err := seg.Encode(e.b, e.p.Version); err != nil {
			return err
		}
	}
	return nil
}

// Code returns a QR code containing data written to e.
func (e *Encoder) Code() (*Code, error) {
	v, l := e.p.Version, e.l
	if n := v.DataBits(l); e.b.Bits() > n {
		return nil, fmt.Errorf("%w: cannot encode %d bits into %d-bit code",
			ErrOverflow, e.b.Bits(), n)
	}
	if err := e.b.PadTo(v.DataBytes(l)); err != nil {
		return nil, err
	}
	data, err := e.b.Bytes()
	if err != nil {
		return nil, err
	}
	cw, err := AddCheckBytes(data, v, l)
	if err != nil {
		return nil, err
	}
	// Now we have the checksum bytes and the data bytes.
	// Construct the bitmap consisting of data and checksum bits.
	bits, err := e.p.Place(cw)
	if err != nil {
		return nil, err
	}

	c := &Code{Matrix: *NewMatrix(e.p.Size), Version: v, Level: l}
	if e.mask >= 0 {
		c.Mask = e.mask
		e.p.apply(&c.Matrix, bits, c.Mask, l)
	} else {
		c.Mask = e.p.ChooseMask(&c.Matrix, bits, l)
	}
	return c, nil
}

// Encode is a wrapper around Write and Code.
func (e *Encoder) Encode(segs ...Segment) (*Code, error) {
	if err := e.Write(segs...); err != nil {
		return nil, err
	}
	return e.Code()
}

// Encode encodes segments using an Encoder with the given version and
// level.
func Encode(version Version, level Level, segs ...Segment) (*Code, error) {
	e, err := NewEncoder(version, level)
	if err != nil {
		return nil, err
	}
	return e.Encode(segs...)
}
