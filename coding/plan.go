// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"sync"
)

// A Plan describes the layout of a QR code of a specific version.
// Plans are shared and must not be modified.
type Plan struct {
	Version Version // QR code version
	Size    int     // number of modules on a side
	Modules int     // number of data and check modules

	Map      *Matrix    // module map: 0 is data or check, 1 is other
	Template *Matrix    // finder, alignment and timing patterns, version info
	Pattern  [8]*Matrix // Template plus each mask over data modules
}

// Pre-allocated Plans.  A Plan is created the first time a version is
// used.  Each plan holds ten bitmaps the size of the code, from 630
// bytes for version 1 to 40 KB for version 40.
var plans [MaxVersion + 1]struct {
	once sync.Once
	p    *Plan
	err  error
}

// NewPlan returns the Plan for a QR code of the given version.
func NewPlan(v Version) (*Plan, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	p := &plans[v]
	p.once.Do(func() { p.p, p.err = vplan(v) })
	return p.p, p.err
}

// vplan creates a Plan for the given version.
func vplan(v Version) (*Plan, error) {
	siz := v.Size()
	p := &Plan{
		Version:  v,
		Size:     siz,
		Map:      NewMatrix(siz),
		Template: NewMatrix(siz),
	}

	// Timing patterns, partially overwritten by alignment boxes.
	for i := 8; i < siz-8; i++ {
		p.set(i, 6, i&1 == 0)
		p.set(6, i, i&1 == 0)
	}

	// Finder boxes with separators.
	p.finderBox(0, 0)
	p.finderBox(siz-7, 0)
	p.finderBox(0, siz-7)

	// Format areas stay light until a mask is chosen.
	for i := 0; i < 9; i++ {
		p.reserve(8, i)
		p.reserve(i, 8)
	}
	for i := 0; i < 8; i++ {
		p.reserve(siz-1-i, 8)
		p.reserve(8, siz-1-i)
	}

	// One lonely black module.
	p.set(8, siz-8, true)

	// Alignment boxes, except where they would cover finder boxes.
	al := v.Alignment()
	last := len(al) - 1
	for i, x := range al {
		for j, y := range al {
			if i == 0 && (j == 0 || j == last) || i == last && j == 0 {
				continue
			}
			p.alignBox(x, y)
		}
	}

	// Version information: 6x3 modules at (0, siz-11) and 3x6 at
	// (siz-11, 0).
	if info := v.Info(); info != 0 {
		for i := 0; i < 18; i++ {
			a, b := siz-11+i%3, i/3
			black := info>>i&1 != 0
			p.set(a, b, black)
			p.set(b, a, black)
		}
	}

	p.Modules = siz*siz - p.Map.Dark()
	if want := v.Codewords()*8 + v.RemainderBits(); p.Modules != want {
		return nil, fmt.Errorf("%w: version %s has %d data modules, want %d",
			ErrInternal, v, p.Modules, want)
	}

	for mask := range p.Pattern {
		pat := p.Template.Clone()
		for y := 0; y < siz; y++ {
			for x := 0; x < siz; x++ {
				if !p.Map.Black(x, y) && maskFuncs[mask](y, x) {
					pat.Set(x, y, true)
				}
			}
		}
		p.Pattern[mask] = pat
	}
	return p, nil
}

// set sets a function module.
func (p *Plan) set(x, y int, black bool) {
	p.Map.Set(x, y, true)
	p.Template.Set(x, y, black)
}

// reserve marks a function module without changing its colour.
func (p *Plan) reserve(x, y int) { p.Map.Set(x, y, true) }

// finderBox draws a finder (large) box at upper left x, y and the
// light separator around it.
func (p *Plan) finderBox(x, y int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= p.Size || yy < 0 || yy >= p.Size {
				continue
			}
			d := max(abs(dx-3), abs(dy-3))
			p.set(xx, yy, d != 2 && d != 4)
		}
	}
}

// alignBox draws an alignment (small) box centred at x, y.
func (p *Plan) alignBox(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			p.set(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// apply sets dst to the data modules in data masked with mask, plus
// function patterns and format information for level l.
func (p *Plan) apply(dst, data *Matrix, mask int, l Level) {
	xor(dst.Bitmap, data.Bitmap, p.Pattern[mask].Bitmap)
	writeFormat(dst, FormatInfo(l, mask))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
