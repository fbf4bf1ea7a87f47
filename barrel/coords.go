// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barrel

import "github.com/goki/mat32"

// CoordMapper transforms a continuous 2D coordinate into a discrete grid
// position.  Used by afferent projections to snap connection-field centers
// onto barrel-grid cells.
type CoordMapper interface {
	// Map returns the grid position for the given continuous coordinate.
	Map(x, y float32) (int, int)
}

// IntCoords maps continuous coordinates to the nearest integer grid
// position, rounding half away from zero (mat32.Round convention, matching
// math.Round).  Snapping connection-field centers this way establishes a
// 1:1 correspondence between a cortical unit's receptive field center and a
// single barrel.
type IntCoords struct {
}

func (ic IntCoords) Map(x, y float32) (int, int) {
	return int(mat32.Round(x)), int(mat32.Round(y))
}
