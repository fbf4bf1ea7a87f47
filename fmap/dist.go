// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fmap

import (
	"math"

	"github.com/emer/etable/etensor"
	"github.com/goki/mat32"
)

// DistMatrix accumulates, per unit of a recorded sheet, the peak response
// observed at each value of one swept feature.  Reducing the accumulated
// distribution yields the unit's preference and selectivity for that
// feature.
type DistMatrix struct {
	Feature Feature          `desc:"the swept feature this distribution is over"`
	Resp    *etensor.Float32 `view:"no-inline" desc:"peak response per feature value per unit: [value, Y, X]"`
}

// Config allocates the distribution for the given recorded sheet shape.
func (dm *DistMatrix) Config(ft Feature, shp []int) {
	dm.Feature = ft
	dm.Resp = etensor.NewFloat32([]int{len(ft.Values), shp[0], shp[1]}, nil, []string{ft.Name, "Y", "X"})
}

// Accum records a response map for feature value index vi, keeping the
// peak response per unit across repeated presentations at the same value.
func (dm *DistMatrix) Accum(vi int, resp *etensor.Float32) {
	n := resp.Len()
	off := vi * n
	for i := 0; i < n; i++ {
		if resp.Values[i] > dm.Resp.Values[off+i] {
			dm.Resp.Values[off+i] = resp.Values[i]
		}
	}
}

// Maps reduces the accumulated distribution into per-unit preference and
// selectivity maps.  For a cyclic feature, preference is the response-
// weighted circular mean of the feature values and selectivity is the
// resultant vector length (0 = untuned, 1 = responds at a single value).
// For a linear feature, preference is the response-weighted average of the
// values (or the argmax value if weightedAvg is off), and selectivity is
// the peak response over the summed response.
func (dm *DistMatrix) Maps(weightedAvg bool) (pref, sel *etensor.Float32) {
	nv := len(dm.Feature.Values)
	ny := dm.Resp.Dim(1)
	nx := dm.Resp.Dim(2)
	n := ny * nx
	pref = etensor.NewFloat32([]int{ny, nx}, nil, []string{"Y", "X"})
	sel = etensor.NewFloat32([]int{ny, nx}, nil, []string{"Y", "X"})
	for ui := 0; ui < n; ui++ {
		if dm.Feature.Cyclic {
			var vx, vy, sum float32
			for k := 0; k < nv; k++ {
				r := dm.Resp.Values[k*n+ui]
				th := dm.Feature.Values[k]
				vx += r * mat32.Cos(th)
				vy += r * mat32.Sin(th)
				sum += r
			}
			if sum > 0 {
				th := mat32.Atan2(vy, vx)
				if th < 0 {
					th += 2 * math.Pi
				}
				pref.Values[ui] = th
				sel.Values[ui] = mat32.Sqrt(vx*vx+vy*vy) / sum
			}
		} else {
			var sum, wsum, mx float32
			mxi := 0
			for k := 0; k < nv; k++ {
				r := dm.Resp.Values[k*n+ui]
				sum += r
				wsum += r * dm.Feature.Values[k]
				if r > mx {
					mx = r
					mxi = k
				}
			}
			if sum > 0 {
				if weightedAvg {
					pref.Values[ui] = wsum / sum
				} else {
					pref.Values[ui] = dm.Feature.Values[mxi]
				}
				sel.Values[ui] = mx / sum
			}
		}
	}
	return
}
