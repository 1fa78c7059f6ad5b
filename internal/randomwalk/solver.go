// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

// Package randomwalk implements the two interchangeable random-walk
// solvers that turn a Markov kernel and a seed distribution into a
// stationary-like score vector over graph nodes.
package randomwalk

import "context"

// Method names one of the two solver implementations.
type Method string

const (
	MethodPowerIteration Method = "power_iteration"
	MethodMonteCarlo     Method = "monte_carlo"
)

// Solver produces a score distribution pi over the kernel's node index:
// pi[i] >= 0 for all i, and sum(pi) == 1.
type Solver interface {
	Run(ctx context.Context) ([]float64, error)
}
