// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// Place returns a Matrix with the codewords laid out over the data
// modules of p, most significant bit first.  The modules are scanned
// in two-column strips from the right, alternately upwards and
// downwards, skipping the vertical timing pattern.  Remainder modules
// are left light.
func (p *Plan) Place(codewords []byte) (*Matrix, error) {
	if len(codewords) != p.Version.Codewords() {
		return nil, fmt.Errorf("%w: %d codewords in version %s, want %d",
			ErrInternal, len(codewords), p.Version, p.Version.Codewords())
	}
	siz := p.Size
	m := NewMatrix(siz)
	nbit := len(codewords) * 8
	i := 0
	for right := siz - 1; right >= 1; right -= 2 {
		if right == 6 { // vertical timing strip
			right = 5
		}
		upward := (right+1)&2 == 0
		for vert := 0; vert < siz; vert++ {
			y := vert
			if upward {
				y = siz - 1 - vert
			}
			for x := right; x > right-2; x-- {
				if p.Map.Black(x, y) {
					continue
				}
				if i < nbit && codewords[i>>3]>>(7&^i)&1 != 0 {
					m.Set(x, y, true)
				}
				i++
			}
		}
	}
	if want := nbit + p.Version.RemainderBits(); i != want {
		return nil, fmt.Errorf("%w: placed %d modules in version %s, want %d",
			ErrInternal, i, p.Version, want)
	}
	return m, nil
}
