// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fmap

import (
	"fmt"

	"github.com/emer/etable/etensor"

	"github.com/qqkong/topographica/wpat"
)

// Responder is the live-network collaborator: it presents one input pattern
// and fills resp with the settled response of the recorded sheet (reshaping
// resp as needed).  Presentations are measurement only: the caller must
// have disabled learning, and any simulation state save / restore is the
// responder's responsibility.
type Responder interface {
	Respond(pat *etensor.Float32, resp *etensor.Float32)
}

// FeatureMaps sweeps the full cartesian product of a set of feature values,
// presenting the configured pattern generator's output to the network at
// each combination and accumulating responses into one distribution per
// feature.  Equivalent to the classic FeatureMaps measurement command.
type FeatureMaps struct {
	Features []Feature                  `desc:"the swept features, outer to inner"`
	Dists    []DistMatrix               `view:"no-inline" desc:"accumulated response distributions, one per feature"`
	Gen      wpat.PatternGen            `view:"-" desc:"pattern generator producing the stimulus at the current feature values"`
	Set      func(vals []float32) error `view:"-" desc:"applies the current feature values to the pattern generator before each presentation"`

	resp etensor.Float32
}

// Run drives the sweep on the given network.  The response distributions
// are (re)allocated from the first response's shape.
func (fm *FeatureMaps) Run(net Responder) error {
	if len(fm.Features) == 0 {
		return fmt.Errorf("fmap.FeatureMaps: no features to sweep")
	}
	fm.Dists = nil
	vals := make([]float32, len(fm.Features))
	idxs := make([]int, len(fm.Features))
	for {
		for fi, ft := range fm.Features {
			vals[fi] = ft.Values[idxs[fi]]
		}
		if err := fm.Set(vals); err != nil {
			return err
		}
		net.Respond(fm.Gen.Gen(), &fm.resp)
		if fm.Dists == nil {
			fm.Dists = make([]DistMatrix, len(fm.Features))
			for fi, ft := range fm.Features {
				fm.Dists[fi].Config(ft, []int{fm.resp.Dim(0), fm.resp.Dim(1)})
			}
		}
		for fi := range fm.Features {
			fm.Dists[fi].Accum(idxs[fi], &fm.resp)
		}
		// odometer increment, inner feature fastest
		fi := len(idxs) - 1
		for fi >= 0 {
			idxs[fi]++
			if idxs[fi] < len(fm.Features[fi].Values) {
				break
			}
			idxs[fi] = 0
			fi--
		}
		if fi < 0 {
			return nil
		}
	}
}

// RegisterMaps reduces each feature's distribution and registers the
// resulting "<Name> Preference" and "<Name> Selectivity" maps in the view
// registry, overwriting previous measurements.
func (fm *FeatureMaps) RegisterMaps(views *Views, weightedAvg bool) {
	for fi := range fm.Dists {
		dm := &fm.Dists[fi]
		pref, sel := dm.Maps(weightedAvg)
		views.Set(dm.Feature.Name+" Preference", pref)
		views.Set(dm.Feature.Name+" Selectivity", sel)
	}
}
