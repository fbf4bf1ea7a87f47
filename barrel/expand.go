// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barrel

import "github.com/emer/etable/etensor"

// Expand block-replicates the 2D whisker grid src into the barrel grid dst,
// so that dst cell (i, j) = src cell (i / density, j / density).  No
// interpolation or smoothing.  dst is reshaped to match (src rows * density,
// src cols * density).  Pure: src is not modified, no other state.
func Expand(dst, src *etensor.Float32, density int) {
	sy := src.Dim(0)
	sx := src.Dim(1)
	dy := sy * density
	dx := sx * density
	if dst.Dim(0) != dy || dst.NumDims() != 2 || dst.Dim(1) != dx {
		dst.SetShape([]int{dy, dx}, nil, []string{"Y", "X"})
	}
	for i := 0; i < dy; i++ {
		si := i / density
		for j := 0; j < dx; j++ {
			dst.Values[i*dx+j] = src.Values[si*sx+j/density]
		}
	}
}
