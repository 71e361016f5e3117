// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// Bits is an append-only bit stream.  Bits are written most
// significant first.  Once Bytes is called the stream is final.
type Bits struct {
	b     []byte
	nbit  int
	final bool
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	n := 0
	if v.IsValid() {
		n = v.Codewords()
	}
	return &Bits{b: make([]byte, 0, n)}
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int { return b.nbit }

// Bytes returns the content of b as codewords and finalizes b.
func (b *Bits) Bytes() ([]byte, error) {
	if b.nbit&7 != 0 {
		return nil, ErrFraction
	}
	b.final = true
	return b.b, nil
}

// Write appends the nbit low bits of v to b.
func (b *Bits) Write(v uint32, nbit int) error {
	if b.final {
		return ErrFinalized
	}
	if nbit < 0 || nbit > 32 || nbit < 32 && v>>nbit != 0 {
		return fmt.Errorf("%w: %#x in %d bits", ErrBitWidth, v, nbit)
	}
	if nbit == 0 {
		return nil
	}
	b.write(v, nbit)
	return nil
}

// write appends the nbit low bits of v, which must fit.
func (b *Bits) write(v uint32, nbit int) {
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// PadToByte appends zero bits up to the next byte boundary.
func (b *Bits) PadToByte() error {
	if b.final {
		return ErrFinalized
	}
	b.nbit = len(b.b) * 8
	return nil
}

// PadTo adds the terminator and pad codewords to b, filling it to n
// bytes.  The terminator is up to four zero bits, as many as fit.
func (b *Bits) PadTo(n int) error {
	if b.final {
		return ErrFinalized
	}
	if b.nbit > n*8 {
		return fmt.Errorf("%w: %d bits in %d-bit code",
			ErrOverflow, b.nbit, n*8)
	}
	// Terminator and byte alignment are both zero bits, and the
	// unused bits of the last byte are already clear.
	b.nbit = min(b.nbit+4, n*8)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	for pad := byte(0xec); len(b.b) < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
	}
	b.nbit = len(b.b) * 8
	return nil
}
