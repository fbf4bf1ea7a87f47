// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wpat

import (
	"fmt"

	"github.com/emer/etable/etensor"
	"github.com/goki/mat32"

	"github.com/qqkong/topographica/barrel"
	"github.com/qqkong/topographica/vmang"
)

// DeflectStim generates the activity pattern on the sensory (barrel) sheet
// for a whisker deflection: either one whisker deflected in the commanded
// direction (Whisker in [0, N)), or the whole array swept by a linear
// boundary front (Whisker == N).  Each whisker's actual deflection direction
// is the commanded Orient perturbed by von Mises noise, and each unit
// responds by cosine tuning of that direction against its fixed maximally
// effective direction (MED):
//
//	response = magnitude * (1 + cos(dir - MED)) / 2
//
// so responses are in [0, 1], maximal when the sampled direction matches the
// unit's preference.
type DeflectStim struct {
	Params `desc:"spatial pattern parameters -- Orient is the commanded deflection direction"`

	Geom     barrel.Geom      `desc:"whisker array geometry"`
	Noise    vmang.Params     `view:"inline" desc:"von Mises deflection-direction noise -- Kappa is the concentration"`
	Seeds    vmang.SeedSeq    `view:"inline" desc:"per-whisker seed sequence for noise draws -- one batch per generated pattern"`
	Whisker  int              `desc:"which whisker to deflect, in [0, N) -- the value N selects whole-array boundary mode"`
	Boundary *LinearBoundary  `view:"inline" desc:"front stimulus used in whole-array mode, sharing this generator's spatial parameters"`
	MED      *etensor.Float32 `view:"no-inline" desc:"maximally effective direction per unit -- computed once at construction, immutable"`

	// scratch grids, reused across Gen calls
	whisk *etensor.Float32
	dirsW *etensor.Float32
	mag   *etensor.Float32
	dirs  *etensor.Float32
	out   *etensor.Float32
}

// NewDeflectStim returns a configured generator for the given geometry,
// noise concentration and base random seed, or an error for an invalid
// configuration (bad geometry, non-positive kappa).
func NewDeflectStim(gm *barrel.Geom, kappa float32, seed int64) (*DeflectStim, error) {
	ds := &DeflectStim{}
	ds.Params.Defaults()
	ds.Geom = *gm
	ds.Noise.Kappa = kappa
	if err := ds.Config(seed); err != nil {
		return nil, err
	}
	return ds, nil
}

// Config validates the configuration and allocates the MED map and scratch
// grids.  Must be called before Gen if the generator was not built with
// NewDeflectStim.
func (ds *DeflectStim) Config(seed int64) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	ds.Seeds.Init(seed, ds.Geom.N())
	if ds.Boundary == nil {
		ds.Boundary = NewLinearBoundary()
	}
	ds.MED = barrel.MEDMap(&ds.Geom)
	wshp := ds.Geom.WhiskerShape()
	bshp := ds.Geom.BarrelShape()
	ds.whisk = etensor.NewFloat32(wshp, nil, []string{"Y", "X"})
	ds.dirsW = etensor.NewFloat32(wshp, nil, []string{"Y", "X"})
	ds.mag = etensor.NewFloat32(bshp, nil, []string{"Y", "X"})
	ds.dirs = etensor.NewFloat32(bshp, nil, []string{"Y", "X"})
	ds.out = etensor.NewFloat32(bshp, nil, []string{"Y", "X"})
	return nil
}

// Validate checks geometry, noise and whisker selector.  Fatal at
// configuration time -- Gen assumes a valid state.
func (ds *DeflectStim) Validate() error {
	if err := ds.Geom.Validate(); err != nil {
		return err
	}
	if err := ds.Noise.Validate(); err != nil {
		return err
	}
	if ds.Whisker < 0 || ds.Whisker > ds.Geom.N() {
		return fmt.Errorf("wpat.DeflectStim: Whisker = %d out of range [0, %d]", ds.Whisker, ds.Geom.N())
	}
	return nil
}

// SetWhisker sets the whisker selector, rejecting out-of-range values.
// N selects whole-array boundary mode.
func (ds *DeflectStim) SetWhisker(w int) error {
	if w < 0 || w > ds.Geom.N() {
		return fmt.Errorf("wpat.DeflectStim: Whisker = %d out of range [0, %d]", w, ds.Geom.N())
	}
	ds.Whisker = w
	return nil
}

// Gen produces the next activity pattern: magnitude field from the selected
// whisker or boundary front, one noisy deflection direction per whisker,
// and cosine tuning against the MED map.  The returned tensor is owned by
// the generator and overwritten on the next call.
func (ds *DeflectStim) Gen() *etensor.Float32 {
	n := ds.Geom.N()
	if ds.Whisker < n { // single whisker
		ds.whisk.SetZeros()
		row, col := ds.Geom.WhiskerPos(ds.Whisker)
		ds.whisk.Set([]int{row, col}, ds.Scale)
	} else { // whole array: boundary front at this generator's position
		ds.Boundary.Params = ds.Params
		ds.Boundary.RenderOn(ds.whisk)
	}
	barrel.Expand(ds.mag, ds.whisk, ds.Geom.Density)

	// one independent noisy direction per whisker, all commanded = Orient
	ds.Noise.SampleScalarInto(ds.dirsW, ds.Orient, &ds.Seeds)
	barrel.Expand(ds.dirs, ds.dirsW, ds.Geom.Density)

	for i, m := range ds.mag.Values {
		ds.out.Values[i] = ds.Offset + m*0.5*(1+mat32.Cos(ds.dirs.Values[i]-ds.MED.Values[i]))
	}
	return ds.out
}

// Compile-time check that the PatternGen capability is implemented
var (
	_ PatternGen = (*DeflectStim)(nil)
	_ PatternGen = (*LinearBoundary)(nil)
)
