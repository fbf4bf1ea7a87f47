// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package vmang provides directional (circular) noise for angular stimulus
variables, drawn from the von Mises distribution: the circular analog of a
Gaussian, centered on a mean direction with a concentration parameter Kappa
(reciprocal of circular variance -- higher = tighter clustering on the mean).

Sampling uses the Best & Fisher (1979) wrapped-Cauchy rejection method.
All draws are seed-addressed: each element of a batch gets its own source
computed from an external base seed, a batch counter, and the element index,
so a run reproduces bit-for-bit regardless of how draws are batched or
parallelized.
*/
package vmang

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/emer/etable/etensor"
)

// Params are the parameters of the von Mises directional noise distribution.
type Params struct {
	Kappa float32 `min:"0" def:"16" desc:"concentration of samples around the mean direction -- reciprocal of circular variance, must be > 0 -- large values (e.g., 500+) are effectively noise-free"`
}

func (vm *Params) Defaults() {
	vm.Kappa = 16
}

func (vm *Params) Update() {
}

// Validate returns an error for an unusable concentration.
// Called once at model configuration time -- sampling does not re-check.
func (vm *Params) Validate() error {
	if vm.Kappa <= 0 {
		return fmt.Errorf("vmang.Params: Kappa must be > 0, got %g", vm.Kappa)
	}
	return nil
}

// Sample draws one direction from the distribution centered on mean
// (radians), using the given random source.  The result is wrapped to
// [0, 2π).
func (vm *Params) Sample(mean float32, rnd *rand.Rand) float32 {
	kap := float64(vm.Kappa)
	tau := 1 + math.Sqrt(1+4*kap*kap)
	rho := (tau - math.Sqrt(2*tau)) / (2 * kap)
	r := (1 + rho*rho) / (2 * rho)

	var f float64
	for {
		u1 := rnd.Float64()
		u2 := rnd.Float64()
		z := math.Cos(math.Pi * u1)
		f = (1 + r*z) / (r + z)
		c := kap * (r - f)
		if c*(2-c)-u2 > 0 {
			break
		}
		if math.Log(c/u2)+1-c >= 0 {
			break
		}
	}
	th := float64(mean)
	if rnd.Float64() > 0.5 {
		th += math.Acos(f)
	} else {
		th -= math.Acos(f)
	}
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	return float32(th)
}

// SampleInto fills dst with independent draws, one per element, each
// centered on the corresponding element of mean (same shape as dst).
// Element i draws from its own source at seq seed index i, and the
// batch counter is advanced once at the end, so repeated calls yield
// fresh but reproducible noise.
func (vm *Params) SampleInto(dst, mean *etensor.Float32, seq *SeedSeq) {
	n := len(dst.Values)
	for i := 0; i < n; i++ {
		dst.Values[i] = vm.Sample(mean.Values[i], seq.Rand(i))
	}
	seq.Next()
}

// SampleScalarInto is SampleInto for the common case of a single commanded
// direction shared by all elements.
func (vm *Params) SampleScalarInto(dst *etensor.Float32, mean float32, seq *SeedSeq) {
	n := len(dst.Values)
	for i := 0; i < n; i++ {
		dst.Values[i] = vm.Sample(mean, seq.Rand(i))
	}
	seq.Next()
}

// SeedSeq generates per-draw random sources as a fixed function of an
// external base seed, a monotonically advancing batch counter, and the
// element index within the batch.  The counter advances exactly once per
// batch (Next), never per draw, so the seed-to-element assignment does not
// depend on call order and a parallel implementation reproduces the
// single-threaded trace.  Owned by the model instance, not process-wide.
type SeedSeq struct {
	Base   int64 `desc:"external base seed for the run"`
	Stride int64 `desc:"maximum number of elements per batch -- seed space reserved per counter tick"`
	Ctr    int64 `inactive:"+" desc:"batch counter, advanced once per batch of draws"`
}

// Init sets the base seed and per-batch stride and resets the counter.
func (sq *SeedSeq) Init(base int64, stride int) {
	sq.Base = base
	sq.Stride = int64(stride)
	sq.Ctr = 0
}

// Seed returns the seed for element idx of the current batch.
func (sq *SeedSeq) Seed(idx int) int64 {
	return sq.Base + sq.Ctr*sq.Stride + int64(idx)
}

// Rand returns a fresh source for element idx of the current batch.
func (sq *SeedSeq) Rand(idx int) *rand.Rand {
	return rand.New(rand.NewSource(sq.Seed(idx)))
}

// Next advances the batch counter.
func (sq *SeedSeq) Next() {
	sq.Ctr++
}
