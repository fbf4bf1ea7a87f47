// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wpat

import (
	"github.com/emer/etable/etensor"
	"github.com/goki/mat32"
)

// LinearBoundary is a moving linear front: activity is Scale on one side of
// an oriented line through (X, Y) and zero on the other, as a step function
// of the rotated, shifted x coordinate.  Sweeping X across the sheet moves
// the front over the array, driving all whiskers in sequence.
type LinearBoundary struct {
	Params

	out *etensor.Float32
}

func NewLinearBoundary() *LinearBoundary {
	lb := &LinearBoundary{}
	lb.Defaults()
	return lb
}

// RenderOn renders the front onto dst at its current shape.  Cell centers
// span [-0.5, 0.5] in sheet coordinates in each dimension.  A cell is
// active when its shifted, rotated x coordinate is <= 0.
func (lb *LinearBoundary) RenderOn(dst *etensor.Float32) {
	ny := dst.Dim(0)
	nx := dst.Dim(1)
	co := mat32.Cos(lb.Orient)
	si := mat32.Sin(lb.Orient)
	sz := lb.Size
	if sz == 0 {
		sz = 1
	}
	for i := 0; i < ny; i++ {
		y := (float32(i)+0.5)/float32(ny) - 0.5
		for j := 0; j < nx; j++ {
			x := (float32(j)+0.5)/float32(nx) - 0.5
			xp := (co*(x-lb.X) + si*(y-lb.Y)) / sz
			if xp <= 0 {
				dst.Values[i*nx+j] = lb.Scale
			} else {
				dst.Values[i*nx+j] = 0
			}
		}
	}
}

// Gen renders the front on a 1x1 grid, per the PatternGen capability:
// a single value that is Scale once the front has reached the pattern
// center.
func (lb *LinearBoundary) Gen() *etensor.Float32 {
	if lb.out == nil {
		lb.out = etensor.NewFloat32([]int{1, 1}, nil, []string{"Y", "X"})
	}
	lb.RenderOn(lb.out)
	return lb.out
}
