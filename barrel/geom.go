// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package barrel provides the whisker-array geometry and grid plumbing for
barrel-cortex map simulations: a coarse per-whisker grid is block-replicated
to a dense per-unit "barrel" grid, with each whisker owning a Density x
Density block of sensory units, and each unit assigned a fixed maximally
effective direction (MED) within its barrel.

Tensors use the standard row-major [Y, X] dimension convention, so whisker
index w corresponds to grid cell (w / WhiskersX, w % WhiskersX).
*/
package barrel

import "fmt"

// Geom is the whisker-array geometry: the number of whiskers in each
// dimension, and the density of sensory units per whisker.
type Geom struct {
	WhiskersY int `min:"1" def:"4" desc:"number of whisker rows"`
	WhiskersX int `min:"1" def:"4" desc:"number of whisker columns"`
	Density   int `min:"1" def:"5" desc:"linear density of sensory units per whisker -- each whisker maps to a Density x Density barrel of units -- must be odd so each barrel has a center unit"`
}

func (gm *Geom) Defaults() {
	gm.WhiskersY = 4
	gm.WhiskersX = 4
	gm.Density = 5
}

// Validate checks the geometry at configuration time.  An even density has
// no center unit and breaks barrel / connection-field alignment, so it is
// rejected here, fatally, rather than at first use.
func (gm *Geom) Validate() error {
	if gm.WhiskersY <= 0 || gm.WhiskersX <= 0 {
		return fmt.Errorf("barrel.Geom: whisker grid %d x %d must be positive in both dimensions", gm.WhiskersY, gm.WhiskersX)
	}
	if gm.Density <= 0 || gm.Density%2 == 0 {
		return fmt.Errorf("barrel.Geom: Density must be a positive odd integer, got %d", gm.Density)
	}
	return nil
}

// N returns the total number of whiskers.
func (gm *Geom) N() int {
	return gm.WhiskersY * gm.WhiskersX
}

// WhiskerShape returns the tensor shape of the per-whisker grid.
func (gm *Geom) WhiskerShape() []int {
	return []int{gm.WhiskersY, gm.WhiskersX}
}

// BarrelShape returns the tensor shape of the expanded per-unit grid.
func (gm *Geom) BarrelShape() []int {
	return []int{gm.WhiskersY * gm.Density, gm.WhiskersX * gm.Density}
}

// WhiskerPos returns the grid cell of whisker index w in [0, N).
func (gm *Geom) WhiskerPos(w int) (row, col int) {
	return w / gm.WhiskersX, w % gm.WhiskersX
}
