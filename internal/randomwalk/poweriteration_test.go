// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package randomwalk

import (
	"context"
	"errors"
	"math"
	"testing"
)

func sumAbs(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		if x < 0 {
			x = -x
		}
		s += x
	}
	return s
}

func TestPowerIteration_ReturnsDistribution(t *testing.T) {
	// A 3-node ring, uniform transitions.
	p := [][]float64{
		{0, 0.5, 0.5},
		{0.5, 0, 0.5},
		{0.5, 0.5, 0},
	}
	pi0 := []float64{1, 0, 0}

	pi := NewPowerIteration(p, pi0)
	result, err := pi.Run(context.Background())
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
	if math.Abs(sum-1.0) > 1e-6 {
		t.Fatalf("sum(pi) = %g, want 1", sum)
	}
}

func TestPowerIteration_ConvergesToFixedPoint(t *testing.T) {
	p := [][]float64{
		{0, 1},
		{1, 0},
	}
	pi0 := []float64{0.5, 0.5}

	pi := NewPowerIteration(p, pi0)
	result, err := pi.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// alpha*pi0 + (1-alpha)*pi0*P should equal pi0 exactly at this
	// symmetric fixed point; iteration should stop near the first step.
	want := []float64{0.5, 0.5}
	for i := range want {
		if math.Abs(result[i]-want[i]) > 1e-5 {
			t.Fatalf("result[%d] = %g, want %g", i, result[i], want[i])
		}
	}
}

func TestPowerIteration_ExhaustingMaxIterReturnsResult(t *testing.T) {
	p := [][]float64{
		{0, 1},
		{1, 0},
	}
	pi0 := []float64{1, 0}

	pi := NewPowerIteration(p, pi0)
	pi.MaxIter = 1
	pi.Tol = 0 // Run treats 0 as the 1e-6 default; the one iteration moves pi by 1.7, so max_iter is exhausted
	result, err := pi.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() with MaxIter=1, Tol=0: want final iterate with no error, got err = %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Run() returned %d entries, want 2", len(result))
	}
}

func TestPowerIteration_DivergesOnNonFiniteValue(t *testing.T) {
	p := [][]float64{
		{0, math.Inf(1)},
		{1, 0},
	}
	pi0 := []float64{1, 0}

	pi := NewPowerIteration(p, pi0)
	_, err := pi.Run(context.Background())
	if !errors.Is(err, ErrSolverDiverged) {
		t.Fatalf("Run() with an infinite transition weight: want ErrSolverDiverged, got %v", err)
	}
}

func TestPowerIteration_CancelledContext(t *testing.T) {
	p := [][]float64{
		{0, 1},
		{1, 0},
	}
	pi0 := []float64{1, 0}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pi := NewPowerIteration(p, pi0)
	_, err := pi.Run(ctx)
	if err == nil {
		t.Fatal("Run() with cancelled context: want error, got nil")
	}
}

func TestPowerIteration_ParallelMatchesSerial(t *testing.T) {
	p := [][]float64{
		{0, 0.5, 0.5, 0},
		{0.3, 0, 0.3, 0.4},
		{0.2, 0.3, 0, 0.5},
		{0, 0.5, 0.5, 0},
	}
	pi0 := []float64{0.25, 0.25, 0.25, 0.25}

	serial := NewPowerIteration(p, pi0)
	serialResult, err := serial.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() (serial) error = %v", err)
	}

	parallel := NewPowerIteration(p, pi0)
	parallel.Workers = 4
	parallelResult, err := parallel.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() (parallel) error = %v", err)
	}

	for i := range serialResult {
		if math.Abs(serialResult[i]-parallelResult[i]) > 1e-9 {
			t.Fatalf("parallel result diverges from serial at %d: %g vs %g", i, parallelResult[i], serialResult[i])
		}
	}
}
