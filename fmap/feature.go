// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fmap

import "math"

// Feature describes one swept stimulus dimension: a name, the ordered
// values presented, and whether the dimension is cyclic (angles wrap, and
// preference is a circular mean) or linear (no wraparound).
type Feature struct {
	Name   string    `desc:"feature name -- also used to name the output maps"`
	Values []float32 `desc:"ordered feature values presented during the sweep"`
	Cyclic bool      `desc:"feature wraps around (e.g., direction in [0, 2π)) -- preference uses circular statistics"`
}

// Range returns the half-open range [lo, hi) stepped by step.
func Range(lo, hi, step float32) []float32 {
	// tolerance on the count so an exact multiple is not lost to float error
	n := int(math.Ceil(float64(hi-lo)/float64(step) - 1.0e-6))
	vals := make([]float32, 0, n)
	for i := 0; i < n; i++ {
		vals = append(vals, lo+float32(i)*step)
	}
	return vals
}
