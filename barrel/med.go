// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barrel

import (
	"math"

	"github.com/emer/etable/etensor"
)

// MEDMap returns the maximally effective direction map for the given
// geometry: each unit's preferred deflection direction, as a linear ramp of
// Density * Density distinct values over [0, 2π), laid out row-major within
// each barrel block and replicated identically across every whisker.
// Deterministic: repeated construction with the same geometry yields the
// same map.  Computed once per model and cached by the owner.
func MEDMap(gm *Geom) *etensor.Float32 {
	d := gm.Density
	med := etensor.NewFloat32(gm.BarrelShape(), nil, []string{"Y", "X"})
	step := 2 * math.Pi / float64(d*d)
	dx := gm.WhiskersX * d
	for i := 0; i < gm.WhiskersY*d; i++ {
		by := i % d
		for j := 0; j < dx; j++ {
			bx := j % d
			med.Values[i*dx+j] = float32(step * float64(by*d+bx))
		}
	}
	return med
}
