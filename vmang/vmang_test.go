// Copyright (c) 2024, The Topographica Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vmang

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/etable/etensor"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func TestValidate(t *testing.T) {
	vm := Params{}
	vm.Defaults()
	if err := vm.Validate(); err != nil {
		t.Errorf("default params should validate: %v", err)
	}
	vm.Kappa = 0
	if err := vm.Validate(); err == nil {
		t.Errorf("Kappa = 0 should not validate")
	}
	vm.Kappa = -4
	if err := vm.Validate(); err == nil {
		t.Errorf("Kappa < 0 should not validate")
	}
}

func TestSampleDeterministic(t *testing.T) {
	vm := Params{}
	vm.Defaults()
	var sq SeedSeq
	for i := 0; i < 10; i++ {
		sq.Init(42, 16)
		a := vm.Sample(1.5, sq.Rand(3))
		sq.Init(42, 16)
		b := vm.Sample(1.5, sq.Rand(3))
		if a != b {
			t.Errorf("same seed must give bit-identical sample: %v != %v", a, b)
		}
	}
}

func TestSampleRange(t *testing.T) {
	vm := Params{Kappa: 2}
	var sq SeedSeq
	sq.Init(1, 1)
	for i := 0; i < 500; i++ {
		v := vm.Sample(5.9, sq.Rand(0))
		if v < 0 || v >= float32(2*math.Pi) {
			t.Errorf("sample %d = %v out of [0, 2π)", i, v)
		}
		sq.Next()
	}
}

func TestHighKappa(t *testing.T) {
	vm := Params{Kappa: 1.0e5}
	mean := float32(2.1)
	var sq SeedSeq
	sq.Init(7, 1)
	for i := 0; i < 100; i++ {
		v := vm.Sample(mean, sq.Rand(0))
		if math32.Abs(v-mean) > 0.05 {
			t.Errorf("high-kappa sample %v too far from mean %v", v, mean)
		}
		sq.Next()
	}
}

// TestBatchEquivalence verifies that batched draws match element-by-element
// draws at the same seed indexes, so execution order cannot alter a trace.
func TestBatchEquivalence(t *testing.T) {
	vm := Params{}
	vm.Defaults()
	n := 12
	mean := etensor.NewFloat32([]int{n}, nil, nil)
	for i := 0; i < n; i++ {
		mean.Values[i] = float32(i) * 0.5
	}
	dst := etensor.NewFloat32([]int{n}, nil, nil)
	var sq SeedSeq
	sq.Init(99, n)
	vm.SampleInto(dst, mean, &sq)
	if sq.Ctr != 1 {
		t.Errorf("batch counter should advance once per batch, got %d", sq.Ctr)
	}

	var sq2 SeedSeq
	sq2.Init(99, n)
	for i := n - 1; i >= 0; i-- { // reverse order on purpose
		v := vm.Sample(mean.Values[i], sq2.Rand(i))
		dif := math32.Abs(v - dst.Values[i])
		if dif > difTol {
			t.Errorf("element %d: batched %v != individual %v", i, dst.Values[i], v)
		}
	}
}

func TestSeedSeqAdvance(t *testing.T) {
	var sq SeedSeq
	sq.Init(10, 4)
	if sq.Seed(2) != 12 {
		t.Errorf("seed(2) = %d, want 12", sq.Seed(2))
	}
	sq.Next()
	if sq.Seed(2) != 16 {
		t.Errorf("seed(2) after Next = %d, want 16", sq.Seed(2))
	}
}
