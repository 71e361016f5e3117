// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"errors"
	"testing"
)

func TestBitsWrite(t *testing.T) {
	b := NewBits(1)
	for _, w := range []struct {
		v    uint32
		nbit int
	}{
		{1, 4}, {8, 10}, {12, 10}, {345, 10}, {67, 7}, {0, 0},
	} {
		old := b.Bits()
		if err := b.Write(w.v, w.nbit); err != nil {
			t.Fatalf("Write(%#x, %d): %v", w.v, w.nbit, err)
		}
		if b.Bits() != old+w.nbit {
			t.Fatalf("Write(%#x, %d): %d bits, want %d",
				w.v, w.nbit, b.Bits(), old+w.nbit)
		}
	}
	if _, err := b.Bytes(); !errors.Is(err, ErrFraction) {
		t.Errorf("Bytes of %d bits: %v, want %v", b.Bits(), err, ErrFraction)
	}
	if err := b.PadTo(16); err != nil {
		t.Fatal(err)
	}
	got, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	// Version 1-M "01234567" example from the standard, Annex I.
	want := []byte{
		0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11,
		0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
	if err := b.Write(1, 1); !errors.Is(err, ErrFinalized) {
		t.Errorf("Write after Bytes: %v, want %v", err, ErrFinalized)
	}
	if err := b.PadToByte(); !errors.Is(err, ErrFinalized) {
		t.Errorf("PadToByte after Bytes: %v, want %v", err, ErrFinalized)
	}
}

func TestBitsWidth(t *testing.T) {
	b := NewBits(1)
	for _, w := range []struct {
		v    uint32
		nbit int
	}{
		{2, 1}, {0x400, 10}, {1, 0}, {0, -1}, {0, 33},
	} {
		if err := b.Write(w.v, w.nbit); !errors.Is(err, ErrBitWidth) {
			t.Errorf("Write(%#x, %d): %v, want %v",
				w.v, w.nbit, err, ErrBitWidth)
		}
	}
	if b.Bits() != 0 {
		t.Errorf("failed writes added %d bits", b.Bits())
	}
	if err := b.Write(0xdeadbeef, 32); err != nil {
		t.Errorf("Write 32 bits: %v", err)
	}
}

func TestBitsPad(t *testing.T) {
	for _, tt := range []struct {
		nbit, n int
		want    []byte
	}{
		{0, 0, []byte{}},
		{0, 3, []byte{0x00, 0xec, 0x11}},
		{3, 1, []byte{0xe0}},       // short terminator
		{6, 1, []byte{0xfc}},       // terminator does not fit
		{8, 1, []byte{0xff}},       // full
		{8, 2, []byte{0xff, 0x00}}, // terminator, no padding
		{12, 4, []byte{0xff, 0xf0, 0xec, 0x11}},
		{13, 5, []byte{0xff, 0xf8, 0x00, 0xec, 0x11}},
		{16, 5, []byte{0xff, 0xff, 0x00, 0xec, 0x11}},
	} {
		b := NewBits(1)
		for i := 0; i < tt.nbit; i++ {
			b.Write(1, 1)
		}
		if err := b.PadTo(tt.n); err != nil {
			t.Errorf("%d bits to %d bytes: %v", tt.nbit, tt.n, err)
			continue
		}
		if got, _ := b.Bytes(); !bytes.Equal(got, tt.want) {
			t.Errorf("%d bits to %d bytes: got % x, want % x",
				tt.nbit, tt.n, got, tt.want)
		}
	}
	b := NewBits(1)
	b.Write(0x1ff, 9)
	if err := b.PadTo(1); !errors.Is(err, ErrOverflow) {
		t.Errorf("9 bits to 1 byte: %v, want %v", err, ErrOverflow)
	}
	if err := b.PadToByte(); err != nil || b.Bits() != 16 {
		t.Errorf("PadToByte: %d bits, %v", b.Bits(), err)
	}
}
