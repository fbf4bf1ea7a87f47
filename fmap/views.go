// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fmap measures feature maps on a live network: it sweeps the feature
space of an input pattern generator (e.g., whisker identity x deflection
direction), records per-unit responses at each feature value, and reduces
them to preference and selectivity maps, which are published to a named view
registry for plotting.
*/
package fmap

import (
	"sort"

	"github.com/emer/etable/etensor"
)

// Views is a named registry of computed maps for a sheet.  Registration is
// by string key with overwrite-on-reassign semantics; storage is a plain
// tensor per name.
type Views struct {
	Maps map[string]*etensor.Float32 `desc:"map tensors by name"`
}

// Set registers the given map under name, replacing any existing entry.
func (vw *Views) Set(name string, mp *etensor.Float32) {
	if vw.Maps == nil {
		vw.Maps = make(map[string]*etensor.Float32)
	}
	vw.Maps[name] = mp
}

// ByName returns the map registered under name, or nil.
func (vw *Views) ByName(name string) *etensor.Float32 {
	return vw.Maps[name]
}

// Names returns the registered map names in sorted order.
func (vw *Views) Names() []string {
	nms := make([]string, 0, len(vw.Maps))
	for nm := range vw.Maps {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return nms
}
