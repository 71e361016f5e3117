// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// FormatInfo returns the 15 bit format information for level l and
// mask: five data bits, BCH(15,5) check bits, xored with 0x5412.
func FormatInfo(l Level, mask int) uint16 {
	const (
		poly = 0x537 // x^10 + x^8 + x^5 + x^4 + x^2 + x + 1
		xmsk = 0x5412
	)
	d := l.bits()<<3 | uint16(mask&7)
	rem := d << 10
	for i := 14; i >= 10; i-- {
		if rem>>i&1 != 0 {
			rem ^= poly << (i - 10)
		}
	}
	return (d<<10 | rem) ^ xmsk
}

// formatPos lists the coordinates of format bits 0 to 14 around the
// top left finder box.
var formatPos = [15][2]int{
	{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
	{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
}

// writeFormat writes both copies of the format information f to m.
func writeFormat(m *Matrix, f uint16) {
	siz := m.Size
	for i, pos := range formatPos {
		black := f>>i&1 != 0
		m.Set(pos[0], pos[1], black)
		if i < 8 {
			m.Set(siz-1-i, 8, black)
		} else {
			m.Set(8, siz-15+i, black)
		}
	}
}
