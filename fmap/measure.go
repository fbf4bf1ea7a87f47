// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fmap

import (
	"fmt"
	"math"

	"github.com/qqkong/topographica/wpat"
)

// DeflectPrefs measures whisker-deflection preference maps on a trained
// network: it sweeps every whisker identity crossed with a full cycle of
// deflection directions, presents each stimulus, and registers the
// resulting "Whisker Preference" / "Whisker Selectivity" and
// "Direction Preference" / "Direction Selectivity" maps, plus the
// generator's "MED" map, in the view registry.
type DeflectPrefs struct {
	NumDeflect  int     `min:"1" def:"4" desc:"number of deflection steps per half cycle -- direction step is π / NumDeflect, sweeping the full [0, 2π) cycle"`
	Scale       float32 `def:"1" desc:"stimulus scale used during measurement"`
	Offset      float32 `def:"0" desc:"stimulus offset used during measurement"`
	WeightedAvg bool    `def:"true" desc:"use response-weighted average for the (non-cyclic) whisker preference, instead of the argmax value"`
}

func (dp *DeflectPrefs) Defaults() {
	dp.NumDeflect = 4
	dp.Scale = 1
	dp.Offset = 0
	dp.WeightedAvg = true
}

// Measure runs the full sweep on the given network, driving stim across
// all whiskers and directions, and registers the preference, selectivity
// and MED maps in views.  Rejects NumDeflect <= 0 before any network
// interaction.  Measurement only: the caller must have disabled learning
// for the duration of the sweep; the generator's spatial parameters and
// whisker selector are saved and restored around it.
func (dp *DeflectPrefs) Measure(net Responder, stim *wpat.DeflectStim, views *Views) error {
	if dp.NumDeflect <= 0 {
		return fmt.Errorf("fmap.DeflectPrefs: NumDeflect must be > 0, got %d", dp.NumDeflect)
	}
	n := stim.Geom.N()
	whisk := Feature{Name: "Whisker", Values: Range(0, float32(n), 1), Cyclic: false}
	dirs := Feature{Name: "Direction", Values: Range(0, 2*math.Pi, math.Pi/float32(dp.NumDeflect)), Cyclic: true}

	// the Set closure below drives Whisker and Orient (in Params) through
	// the same struct, so this restore covers the sweep's mutations too
	saved := stim.Params
	savedWhisk := stim.Whisker
	defer func() {
		stim.Params = saved
		stim.Whisker = savedWhisk
	}()
	stim.Scale = dp.Scale
	stim.Offset = dp.Offset

	fm := FeatureMaps{
		Features: []Feature{whisk, dirs},
		Gen:      stim,
		Set: func(vals []float32) error {
			if err := stim.SetWhisker(int(vals[0])); err != nil {
				return err
			}
			stim.Orient = vals[1]
			return nil
		},
	}
	if err := fm.Run(net); err != nil {
		return err
	}
	fm.RegisterMaps(views, dp.WeightedAvg)
	views.Set("MED", stim.MED)
	return nil
}
