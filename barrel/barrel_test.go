// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barrel

import (
	"math"
	"testing"

	"github.com/emer/etable/etensor"
)

func TestGeomValidate(t *testing.T) {
	gm := Geom{}
	gm.Defaults()
	if err := gm.Validate(); err != nil {
		t.Errorf("default geom should validate: %v", err)
	}
	bad := []Geom{
		{WhiskersY: 0, WhiskersX: 4, Density: 5},
		{WhiskersY: 4, WhiskersX: -1, Density: 5},
		{WhiskersY: 4, WhiskersX: 4, Density: 0},
		{WhiskersY: 4, WhiskersX: 4, Density: 4}, // even
	}
	for i, gm := range bad {
		if err := gm.Validate(); err == nil {
			t.Errorf("geom %d %+v should not validate", i, gm)
		}
	}
}

func TestExpand(t *testing.T) {
	for _, density := range []int{1, 3, 5} {
		src := etensor.NewFloat32([]int{2, 3}, nil, []string{"Y", "X"})
		for i := range src.Values {
			src.Values[i] = float32(i) + 1
		}
		dst := &etensor.Float32{}
		Expand(dst, src, density)
		if dst.Dim(0) != 2*density || dst.Dim(1) != 3*density {
			t.Fatalf("density %d: dst shape %v, want [%d %d]", density, dst.Shapes(), 2*density, 3*density)
		}
		for i := 0; i < dst.Dim(0); i++ {
			for j := 0; j < dst.Dim(1); j++ {
				got := dst.Value([]int{i, j})
				want := src.Value([]int{i / density, j / density})
				if got != want {
					t.Errorf("density %d: dst[%d,%d] = %v, want %v", density, i, j, got, want)
				}
			}
		}
	}
}

func TestMEDMap(t *testing.T) {
	gm := Geom{WhiskersY: 2, WhiskersX: 3, Density: 3}
	med := MEDMap(&gm)
	if med.Dim(0) != 6 || med.Dim(1) != 9 {
		t.Fatalf("med shape %v, want [6 9]", med.Shapes())
	}
	step := float32(2 * math.Pi / 9)
	// every barrel block carries the identical row-major ramp
	for wy := 0; wy < gm.WhiskersY; wy++ {
		for wx := 0; wx < gm.WhiskersX; wx++ {
			for by := 0; by < 3; by++ {
				for bx := 0; bx < 3; bx++ {
					got := med.Value([]int{wy*3 + by, wx*3 + bx})
					want := step * float32(by*3+bx)
					if got != want {
						t.Errorf("med[%d,%d] block (%d,%d) = %v, want %v", wy*3+by, wx*3+bx, by, bx, got, want)
					}
				}
			}
		}
	}

	// deterministic across repeated construction
	med2 := MEDMap(&gm)
	for i := range med.Values {
		if med.Values[i] != med2.Values[i] {
			t.Fatalf("med map not deterministic at %d", i)
		}
	}

	// single whisker, single unit: MED = 0
	one := Geom{WhiskersY: 1, WhiskersX: 1, Density: 1}
	m1 := MEDMap(&one)
	if m1.Values[0] != 0 {
		t.Errorf("1x1 med = %v, want 0", m1.Values[0])
	}
}

func TestWhiskerPos(t *testing.T) {
	gm := Geom{WhiskersY: 2, WhiskersX: 3, Density: 1}
	wants := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	for w, want := range wants {
		r, c := gm.WhiskerPos(w)
		if r != want[0] || c != want[1] {
			t.Errorf("whisker %d at (%d,%d), want (%d,%d)", w, r, c, want[0], want[1])
		}
	}
}

func TestIntCoords(t *testing.T) {
	ic := IntCoords{}
	cases := []struct {
		x, y   float32
		cx, cy int
	}{
		{0, 0, 0, 0},
		{1.2, 2.7, 1, 3},
		{1.5, 2.5, 2, 3},   // half away from zero
		{-1.5, -0.5, -2, -1},
		{-0.4, 0.4, 0, 0},
	}
	for _, cs := range cases {
		gx, gy := ic.Map(cs.x, cs.y)
		if gx != cs.cx || gy != cs.cy {
			t.Errorf("Map(%v,%v) = (%d,%d), want (%d,%d)", cs.x, cs.y, gx, gy, cs.cx, cs.cy)
		}
	}
}
