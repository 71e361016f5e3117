// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"testing"
)

func TestPlanModules(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		p, err := NewPlan(v)
		if err != nil {
			t.Fatalf("version %s: %v", v, err)
		}
		if want := v.Codewords()*8 + v.RemainderBits(); p.Modules != want {
			t.Errorf("version %s: %d data modules, want %d",
				v, p.Modules, want)
		}
		if p.Size != v.Size() || p.Map.Size != v.Size() {
			t.Errorf("version %s: size %d", v, p.Size)
		}
		if q, _ := NewPlan(v); q != p {
			t.Errorf("version %s: plan not shared", v)
		}
	}
	for _, v := range []Version{-1, 0, 41} {
		if _, err := NewPlan(v); !errors.Is(err, ErrVersion) {
			t.Errorf("version %d: %v, want %v", v, err, ErrVersion)
		}
	}
}

// finder is a finder box with its separator, as seen from the top left
// corner.
var finder = [8]string{
	"#######.",
	"#.....#.",
	"#.###.#.",
	"#.###.#.",
	"#.###.#.",
	"#.....#.",
	"#######.",
	"........",
}

func TestPlanPatterns(t *testing.T) {
	for _, v := range []Version{1, 2, 7, 22, 40} {
		p, _ := NewPlan(v)
		siz := p.Size
		tm := p.Template
		check := func(x, y int, black bool, what string) {
			t.Helper()
			if !p.Map.Black(x, y) {
				t.Errorf("version %s: %s (%d, %d) not reserved", v, what, x, y)
			}
			if tm.Black(x, y) != black {
				t.Errorf("version %s: %s (%d, %d) black=%v",
					v, what, x, y, !black)
			}
		}
		for y, row := range finder {
			for x := range row {
				black := row[x] == '#'
				check(x, y, black, "finder")
				check(siz-1-x, y, black, "finder")
				check(x, siz-1-y, black, "finder")
			}
		}
		for i := 8; i < siz-8; i++ {
			check(i, 6, i%2 == 0, "timing")
			check(6, i, i%2 == 0, "timing")
		}
		check(8, 4*int(v)+9, true, "dark module")
		for i := 0; i < 9; i++ {
			if i != 6 {
				check(8, i, false, "format")
				check(i, 8, false, "format")
			}
		}
		for i := 0; i < 8; i++ {
			check(siz-1-i, 8, false, "format")
			if i != 7 {
				check(8, siz-1-i, false, "format")
			}
		}
		// Alignment boxes, except those covering finder boxes.
		al := v.Alignment()
		for _, x := range al {
			for _, y := range al {
				if x == 6 && y == 6 || x == 6 && y == siz-7 ||
					x == siz-7 && y == 6 {
					continue
				}
				check(x, y, true, "alignment centre")
				check(x+1, y-1, false, "alignment ring")
				check(x-2, y+2, true, "alignment border")
			}
		}
		// Data modules are light in the template.
		for y := 0; y < siz; y++ {
			for x := 0; x < siz; x++ {
				if !p.Map.Black(x, y) && tm.Black(x, y) {
					t.Errorf("version %s: data module (%d, %d) black",
						v, x, y)
				}
			}
		}
		// Version information.
		info := v.Info()
		for i := 0; i < 18 && info != 0; i++ {
			black := info>>i&1 != 0
			check(siz-11+i%3, i/3, black, "version info")
			check(i/3, siz-11+i%3, black, "version info")
		}
		if info == 0 && p.Map.Black(siz-11, 0) {
			t.Errorf("version %s: version info reserved", v)
		}
	}
}

func TestPlanMaskPatterns(t *testing.T) {
	p, _ := NewPlan(2)
	for mask, pat := range p.Pattern {
		for y := 0; y < p.Size; y++ {
			for x := 0; x < p.Size; x++ {
				want := p.Template.Black(x, y)
				if !p.Map.Black(x, y) {
					want = maskFuncs[mask](y, x)
				}
				if pat.Black(x, y) != want {
					t.Fatalf("mask %d: module (%d, %d) black=%v",
						mask, x, y, !want)
				}
			}
		}
	}
}

func TestPlace(t *testing.T) {
	for _, v := range []Version{1, 2, 7, 14, 21, 40} {
		p, _ := NewPlan(v)
		cw := make([]byte, v.Codewords())
		for i := range cw {
			cw[i] = 0xff
		}
		m, err := p.Place(cw)
		if err != nil {
			t.Fatalf("version %s: %v", v, err)
		}
		if n := m.Dark(); n != len(cw)*8 {
			t.Errorf("version %s: %d dark modules, want %d",
				v, n, len(cw)*8)
		}
		for y := 0; y < p.Size; y++ {
			for x := 0; x < p.Size; x++ {
				if p.Map.Black(x, y) && m.Black(x, y) {
					t.Fatalf("version %s: function module (%d, %d) set",
						v, x, y)
				}
			}
		}
	}
	p, _ := NewPlan(1)
	if _, err := p.Place(make([]byte, 25)); !errors.Is(err, ErrInternal) {
		t.Errorf("25 codewords: %v, want %v", err, ErrInternal)
	}
}

// The first codeword fills the bottom right corner upwards, right
// column first; the first strip turns downwards at the top.
func TestPlaceOrder(t *testing.T) {
	p, _ := NewPlan(1)
	cw := make([]byte, 26)
	cw[0] = 0xa5 // 10100101
	cw[3] = 0x80 // bit 24
	m, err := p.Place(cw)
	if err != nil {
		t.Fatal(err)
	}
	for i, pos := range [8][2]int{
		{20, 20}, {19, 20}, {20, 19}, {19, 19},
		{20, 18}, {19, 18}, {20, 17}, {19, 17},
	} {
		if want := cw[0]>>(7-i)&1 != 0; m.Black(pos[0], pos[1]) != want {
			t.Errorf("bit %d at (%d, %d): black=%v", i, pos[0], pos[1], !want)
		}
	}
	// Columns 19-20 hold 12 rows (9-20) of data, 24 bits.  Bit 24
	// starts the downward strip in columns 17-18 at row 9.
	if !m.Black(18, 9) || m.Dark() != 5 {
		t.Errorf("bit 24 misplaced, %d dark modules", m.Dark())
	}
}
