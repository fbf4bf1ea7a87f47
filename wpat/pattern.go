// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package wpat provides the stimulus pattern generators for whisker-deflection
map simulations: the generic PatternGen capability consumed by the
simulation loop, a linear boundary (moving front) pattern, and DeflectStim,
the noisy multi-whisker deflection stimulus that drives map self-organization
in barrel cortex models.
*/
package wpat

import "github.com/emer/etable/etensor"

// PatternGen is the pattern-generator capability consumed by the simulation
// kernel: invoked with no arguments, once per timestep, to produce one 2D
// activity pattern for an input sheet.
type PatternGen interface {
	// Gen renders and returns the current activity pattern.  The returned
	// tensor is owned by the generator and reused across calls.
	Gen() *etensor.Float32
}

// Params are the spatial parameters shared by all pattern generators:
// pattern center in sheet coordinates (0,0 = sheet center, +-0.5 = edges),
// orientation, size and output scaling.
type Params struct {
	X      float32 `desc:"pattern center, sheet X coordinate"`
	Y      float32 `desc:"pattern center, sheet Y coordinate"`
	Orient float32 `desc:"pattern orientation / commanded deflection direction in radians, [0, 2π)"`
	Size   float32 `min:"0" def:"1" desc:"spatial scaling of pattern coordinates"`
	Scale  float32 `def:"1" desc:"multiplier on output activity values"`
	Offset float32 `def:"0" desc:"additive offset on output activity values"`
}

func (pr *Params) Defaults() {
	pr.Size = 1
	pr.Scale = 1
}
