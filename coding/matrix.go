// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Matrix is a square module grid.
type Matrix struct {
	Bitmap []byte // 1 is dark, 0 is light
	Size   int    // number of modules on a side
	Stride int    // number of bytes per row
}

// NewMatrix returns a light Matrix with siz modules on a side.
func NewMatrix(siz int) *Matrix {
	stride := (siz + 7) >> 3
	return &Matrix{Bitmap: make([]byte, siz*stride), Size: siz, Stride: stride}
}

// Black reports whether the module at column x, row y is dark.
// Modules outside the matrix are light.
func (m *Matrix) Black(x, y int) bool {
	return 0 <= x && x < m.Size && 0 <= y && y < m.Size &&
		m.Bitmap[y*m.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Set sets the module at column x, row y to dark if black is true,
// light otherwise.  The coordinates must be inside the matrix.
func (m *Matrix) Set(x, y int, black bool) {
	off, bit := y*m.Stride+x/8, byte(1)<<uint(7&^x)
	if black {
		m.Bitmap[off] |= bit
	} else {
		m.Bitmap[off] &^= bit
	}
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	c := *m
	c.Bitmap = append([]byte(nil), m.Bitmap...)
	return &c
}

// Dark returns the number of dark modules.
func (m *Matrix) Dark() int {
	n := 0
	for _, b := range m.Bitmap {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

// Rows returns the modules of m as rows of booleans, true is dark.
func (m *Matrix) Rows() [][]bool {
	rows := make([][]bool, m.Size)
	cells := make([]bool, m.Size*m.Size)
	for y := range rows {
		rows[y], cells = cells[:m.Size], cells[m.Size:]
		for x := range rows[y] {
			rows[y][x] = m.Black(x, y)
		}
	}
	return rows
}

// xor xors a and b into dst.  a and b may not be shorter than dst.
// dst and a or b should not overlap unless they are the same slice.
func xor(dst, a, b []byte) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
