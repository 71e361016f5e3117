// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Penalty returns the penalty value for a QR code.  The value is used
// for choosing the mask.
//
// Total penalty is the sum of penalties for runs and boxes of
// same-colour modules, finder-like patterns and colour balance.
//
//   - RunP: for each row or column run of n modules, n>=5 -> n-2
//   - BoxP: for possibly overlapping 2x2 boxes -> 3
//   - FindP: for each dark-light-dark-dark-dark-light-dark pattern in
//     a row or column with four light modules on either side -> 40.
//     Modules outside the code are light (quiet zone).
//   - BalP: 10 for every full 5% of dark modules away from 50%
func Penalty(m *Matrix) int {
	const (
		MinRun    = 5  // RunP:  minimum run length
		RunPDelta = -2 // RunP:  add to run length
		BoxPP     = 3  // BoxP:  points per box
		FindPP    = 40 // FindP: points per pattern
		BalPP     = 10 // BalP:  points per step
		BalPMul   = 10 //        steps are 1/20 of the total
	)
	siz := m.Size
	line := make([]bool, siz)
	// linePenalty returns RunP and FindP for line.
	linePenalty := func() int {
		p := 0
		r := 1
		for i := 1; i < siz; i++ {
			if line[i] == line[i-1] {
				r++
				continue
			}
			if r >= MinRun {
				p += r + RunPDelta
			}
			r = 1
		}
		if r >= MinRun {
			p += r + RunPDelta
		}
		for i := 0; i+7 <= siz; i++ {
			if line[i] && !line[i+1] && line[i+2] && line[i+3] &&
				line[i+4] && !line[i+5] && line[i+6] &&
				(light(line, i-4, i) || light(line, i+7, i+11)) {
				p += FindPP
			}
		}
		return p
	}

	p := 0
	// horizontal: RunP, FindP, BoxP
	for y := 0; y < siz; y++ {
		for x := range line {
			line[x] = m.Black(x, y)
		}
		p += linePenalty()
		if y == 0 {
			continue
		}
		for x := 1; x < siz; x++ {
			c := line[x]
			if c == line[x-1] && c == m.Black(x, y-1) && c == m.Black(x-1, y-1) {
				p += BoxPP
			}
		}
	}
	// vertical: RunP, FindP
	for x := 0; x < siz; x++ {
		for y := range line {
			line[y] = m.Black(x, y)
		}
		p += linePenalty()
	}
	// BalP
	sq := siz * siz
	p += abs(2*m.Dark()-sq) * BalPMul / sq * BalPP
	return p
}

// light reports whether line[from:to] is light, treating modules
// outside line as light.
func light(line []bool, from, to int) bool {
	for i := max(from, 0); i < min(to, len(line)); i++ {
		if line[i] {
			return false
		}
	}
	return true
}
