// Copyright 2010 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"bytes"
	"fmt"
	"testing"
)

var f = NewField(0x11d, 2) // x^8 + x^4 + x^3 + x^2 + 1

func TestBasic(t *testing.T) {
	if f.Exp(0) != 1 || f.Exp(1) != 2 || f.Exp(255) != 1 {
		t.Errorf("bad Exp: %d %d %d", f.Exp(0), f.Exp(1), f.Exp(255))
	}
	if f.Log(0) != -1 || f.Log(1) != 0 || f.Log(2) != 1 {
		t.Errorf("bad Log: %d %d %d", f.Log(0), f.Log(1), f.Log(2))
	}
}

func TestMul(t *testing.T) {
	for i := 0; i < 256; i++ {
		x := byte(i)
		if f.Mul(x, 0) != 0 || f.Mul(0, x) != 0 {
			t.Errorf("0 does not annihilate %#x", x)
		}
		if f.Mul(x, 1) != x {
			t.Errorf("%#x*1 = %#x", x, f.Mul(x, 1))
		}
		for j := 0; j < 256; j++ {
			y := byte(j)
			if p, q := f.Mul(x, y), f.Mul(y, x); p != q {
				t.Fatalf("%#x*%#x = %#x, %#x*%#x = %#x", x, y, p, y, x, q)
			}
			if want := byte(mul(i, j, 0x11d)); f.Mul(x, y) != want {
				t.Fatalf("%#x*%#x = %#x, want %#x", x, y, f.Mul(x, y), want)
			}
		}
	}
}

func TestAdd(t *testing.T) {
	for i := 0; i < 256; i++ {
		x := byte(i)
		if f.Add(x, x) != 0 || f.Add(x, 0) != x {
			t.Errorf("%#x is not its own additive inverse", x)
		}
		// Multiplication distributes over addition.
		for _, y := range []byte{0x01, 0x1d, 0x80, 0xff} {
			for _, z := range []byte{0x02, 0x53, 0xca} {
				if p, q := f.Mul(x, f.Add(y, z)), f.Add(f.Mul(x, y), f.Mul(x, z)); p != q {
					t.Fatalf("%#x*(%#x+%#x) = %#x, want %#x", x, y, z, p, q)
				}
			}
		}
	}
}

func TestInv(t *testing.T) {
	for i := 1; i < 256; i++ {
		if p := f.Mul(byte(i), f.Inv(byte(i))); p != 1 {
			t.Errorf("%#x*inv(%#x) = %#x", i, i, p)
		}
	}
	if f.Inv(0) != 0 {
		t.Errorf("inv(0) = %#x", f.Inv(0))
	}
}

func TestReducible(t *testing.T) {
	for _, p := range []int{0x100, 0x11c, 0x1ff} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewField(%#x) did not panic", p)
				}
			}()
			NewField(p, 2)
		}()
	}
}

// Canonical generator polynomials as exponents of α,
// highest power of x first.
var canonical = map[int][]int{
	2:  {0, 25, 1},
	7:  {0, 87, 229, 146, 149, 238, 102, 21},
	10: {0, 251, 67, 46, 61, 118, 70, 64, 94, 32, 45},
	13: {0, 74, 152, 176, 100, 86, 100, 106, 104, 130, 218, 206, 140, 78},
	17: {0, 43, 139, 206, 78, 43, 239, 123, 206, 214, 147, 24, 99, 150,
		39, 243, 163, 136},
	22: {0, 210, 171, 247, 242, 93, 230, 14, 109, 221, 53, 200, 74, 8,
		172, 98, 80, 219, 134, 160, 105, 165, 231},
	30: {0, 41, 173, 145, 152, 216, 31, 179, 182, 50, 48, 110, 86, 239,
		96, 222, 125, 42, 173, 226, 193, 224, 130, 156, 37, 251, 216,
		238, 40, 192, 180},
}

func TestGenerator(t *testing.T) {
	for deg, exps := range canonical {
		t.Run(fmt.Sprint(deg), func(t *testing.T) {
			gen := f.Generator(deg)
			if len(gen) != deg+1 {
				t.Fatalf("len = %d, want %d", len(gen), deg+1)
			}
			for i, e := range exps {
				if gen[i] != f.Exp(e) {
					t.Errorf("coefficient %d = α^%d, want α^%d",
						i, f.Log(gen[i]), e)
				}
			}
		})
	}
	for _, deg := range []int{-1, 0, 31} {
		if g := f.Generator(deg); g != nil {
			t.Errorf("Generator(%d) = %v, want nil", deg, g)
		}
	}
}

// syndromes evaluates the codeword polynomial at α^0 .. α^(n-1).
func syndromes(cw []byte, n int) []byte {
	s := make([]byte, n)
	for i := range s {
		a := f.Exp(i)
		var v byte
		for _, c := range cw {
			v = f.Mul(v, a) ^ c
		}
		s[i] = v
	}
	return s
}

func zero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

func TestRemainder(t *testing.T) {
	// Version 1-M "01234567" example from the standard, Annex I.
	data := []byte{
		0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11,
		0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
	}
	want := []byte{0xa5, 0x24, 0xd4, 0xc1, 0xed, 0x36, 0xc7, 0x87, 0x2c, 0x55}
	if got := f.Remainder(data, f.Generator(10)); !bytes.Equal(got, want) {
		t.Errorf("Remainder = % x, want % x", got, want)
	}
}

func TestSyndromes(t *testing.T) {
	data := make([]byte, 19)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}
	for deg := 1; deg <= MaxDegree; deg++ {
		gen := f.Generator(deg)
		check := f.Remainder(data, gen)
		if len(check) != len(gen)-1 {
			t.Fatalf("degree %d: %d check bytes", deg, len(check))
		}
		cw := append(append([]byte(nil), data...), check...)
		if s := syndromes(cw, deg); !zero(s) {
			t.Fatalf("degree %d: non-zero syndromes % x", deg, s)
		}
		// Any single byte error must be detected.
		for i := range cw {
			cw[i] ^= 0x5a
			if zero(syndromes(cw, deg)) {
				t.Errorf("degree %d: error at %d not detected", deg, i)
			}
			cw[i] ^= 0x5a
		}
	}
}

func TestRSEncoder(t *testing.T) {
	if NewRSEncoder(f, 0) != nil {
		t.Error("NewRSEncoder(0) != nil")
	}
	rs := NewRSEncoder(f, 7)
	data := []byte("hello, world")
	check := make([]byte, 7)
	rs.ECC(data, check)
	if want := f.Remainder(data, f.Generator(7)); !bytes.Equal(check, want) {
		t.Errorf("ECC = % x, want % x", check, want)
	}
}

func BenchmarkECC(b *testing.B) {
	data := []byte{0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11}
	check := make([]byte, 30)
	rs := NewRSEncoder(f, len(check))
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		rs.ECC(data, check)
	}
}
