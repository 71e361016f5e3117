// Copyright 2010 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and the Reed-Solomon check byte computation used by QR codes.
package gf256 // import "github.com/covercash2/fast-qr/gf256"

import (
	"strconv"
	"sync"
)

// A Field represents an instance of GF(256) defined by a specific
// polynomial.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte

	poly, α int

	genLock sync.Mutex
	gen     [][]byte // generator polynomials by degree
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The Reed-Solomon encoding in QR codes uses
// polynomial 0x11d with generator 2.
//
// The choice of generator α only affects the Exp and Log operations.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 || reducible(poly) {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}

	f := Field{poly: poly, α: α}
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.log[0] = 255
	return &f
}

// reducible reports whether p is reducible over GF(2).
func reducible(p int) bool {
	// Multiplying n-degree * m-degree poly = n+m-degree poly,
	// so if p is reducible, one of its factors must be
	// of degree np/2 or less.
	np := nbit(p)
	for q := 2; q < 1<<uint(np/2+1); q++ {
		if polyDiv(p, q) == 0 {
			return true
		}
	}
	return false
}

// polyDiv returns the remainder p mod q.
func polyDiv(p, q int) int {
	np := nbit(p)
	nq := nbit(q)
	for ; np >= nq; np-- {
		if p&(1<<uint(np-1)) != 0 {
			p ^= q << uint(np-nq)
		}
	}
	return p
}

func nbit(p int) uint {
	n := uint(0)
	for ; p > 0; p >>= 1 {
		n++
	}
	return n
}

// mul returns the product x*y mod poly, a GF(256) multiplication.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte { return x ^ y }

// Exp returns the base-α exponential of e in the field.
// If e < 0, Exp returns 0.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		return 0
	}
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in the field.
// If x == 0, Log returns -1.
func (f *Field) Log(x byte) int {
	if x == 0 {
		return -1
	}
	return int(f.log[x])
}

// Inv returns the multiplicative inverse of x in the field.
// If x == 0, Inv returns 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[255-f.log[x]]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// MaxDegree is the largest generator polynomial degree QR codes use.
const MaxDegree = 30

// Generator returns the monic generator polynomial of the given degree,
// the product of (x - α^i) for i from 0 to degree-1.  Coefficients are
// ordered from the highest power of x; the first one is always 1.
// Polynomials are computed once per field and shared: the caller must
// not modify the result.  Generator returns nil for degrees outside
// 1..MaxDegree.
func (f *Field) Generator(degree int) []byte {
	if degree < 1 || degree > MaxDegree {
		return nil
	}
	f.genLock.Lock()
	defer f.genLock.Unlock()
	if f.gen == nil {
		f.gen = [][]byte{{1}}
	}
	for d := len(f.gen); d <= degree; d++ {
		// multiply the previous polynomial by (x + α^(d-1))
		last := f.gen[d-1]
		p := make([]byte, d+1)
		copy(p, last)
		a := f.Exp(d - 1)
		for i := 1; i <= d; i++ {
			p[i] ^= f.Mul(last[i-1], a)
		}
		f.gen = append(f.gen, p)
	}
	return f.gen[degree]
}

// Remainder returns the remainder of data·x^n divided by gen, where
// n = len(gen)-1.  gen must be monic.  The result has n bytes and is the
// block of Reed-Solomon check bytes for data.
func (f *Field) Remainder(data, gen []byte) []byte {
	n := len(gen) - 1
	if n < 1 {
		return nil
	}
	rem := make([]byte, n)
	for _, b := range data {
		k := b ^ rem[0]
		copy(rem, rem[1:])
		rem[n-1] = 0
		if k == 0 {
			continue
		}
		lk := int(f.log[k])
		for i, g := range gen[1:] {
			if g != 0 {
				rem[i] ^= f.exp[lk+int(f.log[g])]
			}
		}
	}
	return rem
}

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen []byte
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
// It returns nil if c is not a valid generator degree.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	gen := f.Generator(c)
	if gen == nil {
		return nil
	}
	return &RSEncoder{f: f, c: c, gen: gen}
}

// ECC writes to check the error correcting code bytes
// for data using the given Reed-Solomon parameters.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	copy(check, rs.f.Remainder(data, rs.gen))
}
