// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package randomwalk

import (
	"context"
	"math"
	"testing"
)

func TestMonteCarlo_ReturnsNormalizedDistribution(t *testing.T) {
	p := [][]float64{
		{0, 0.5, 0.5},
		{0.5, 0, 0.5},
		{0.5, 0.5, 0},
	}
	mc := NewMonteCarlo(p, []int{0})
	mc.Steps = 200
	mc.BaseSeed = 42

	result, err := mc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	sum := 0.0
	for _, x := range result {
		if x < 0 {
			t.Fatalf("negative entry in result: %v", result)
		}
		sum += x
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("sum(result) = %g, want 1", sum)
	}
}

func TestMonteCarlo_DeterministicGivenSeed(t *testing.T) {
	p := [][]float64{
		{0, 0.5, 0.5},
		{0.5, 0, 0.5},
		{0.5, 0.5, 0},
	}

	run := func() []float64 {
		mc := NewMonteCarlo(p, []int{0, 1})
		mc.Steps = 50
		mc.BaseSeed = 7
		result, err := mc.Run(context.Background())
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return result
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Run() not reproducible at index %d: %g vs %g", i, first[i], second[i])
		}
	}
}

func TestMonteCarlo_ParallelMatchesSerialGivenSameSeeds(t *testing.T) {
	p := [][]float64{
		{0, 0.5, 0.5},
		{0.5, 0, 0.5},
		{0.5, 0.5, 0},
	}

	serial := NewMonteCarlo(p, []int{0, 1, 2})
	serial.Steps = 100
	serial.BaseSeed = 11
	serialResult, err := serial.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() (serial) error = %v", err)
	}

	parallel := NewMonteCarlo(p, []int{0, 1, 2})
	parallel.Steps = 100
	parallel.BaseSeed = 11
	parallel.Parallel = true
	parallelResult, err := parallel.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() (parallel) error = %v", err)
	}

	for i := range serialResult {
		if serialResult[i] != parallelResult[i] {
			t.Fatalf("parallel result diverges from serial at %d: %g vs %g", i, parallelResult[i], serialResult[i])
		}
	}
}

func TestMonteCarlo_CancelledContext(t *testing.T) {
	p := [][]float64{
		{0, 1},
		{1, 0},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mc := NewMonteCarlo(p, []int{0})
	_, err := mc.Run(ctx)
	if err == nil {
		t.Fatal("Run() with cancelled context: want error, got nil")
	}
}

func TestMonteCarlo_ApproximatesPowerIteration(t *testing.T) {
	// Symmetric 3-node complete graph: stationary distribution is uniform.
	p := [][]float64{
		{0, 0.5, 0.5},
		{0.5, 0, 0.5},
		{0.5, 0.5, 0},
	}
	pi0 := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}

	piSolver := NewPowerIteration(p, pi0)
	piResult, err := piSolver.Run(context.Background())
	if err != nil {
		t.Fatalf("power iteration Run() error = %v", err)
	}

	mc := NewMonteCarlo(p, []int{0, 1, 2})
	mc.Steps = 5000
	mc.BaseSeed = 99
	mcResult, err := mc.Run(context.Background())
	if err != nil {
		t.Fatalf("monte carlo Run() error = %v", err)
	}

	for i := range piResult {
		if math.Abs(piResult[i]-mcResult[i]) > 0.05 {
			t.Fatalf("monte carlo result[%d] = %g too far from power iteration result %g", i, mcResult[i], piResult[i])
		}
	}
}
