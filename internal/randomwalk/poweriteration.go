// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package randomwalk

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
)

const (
	defaultAlpha   = 0.15
	defaultTol     = 1e-6
	defaultMaxIter = 1000
)

// PowerIteration runs restart-based power iteration over a row-stochastic
// matrix P: pi <- alpha*pi0 + (1-alpha)*pi*P, until the L1 movement between
// successive iterates drops below Tol or MaxIter is exhausted.
type PowerIteration struct {
	P     [][]float64
	Pi0   []float64
	Alpha float64
	Tol   float64
	// MaxIter bounds the number of iterations. Zero means defaultMaxIter.
	MaxIter int
	// Workers, if > 1, shards the pi*P matrix-vector product across that
	// many goroutines (at most runtime.NumCPU()). The per-worker partial
	// vectors are summed afterwards, so results agree with the
	// single-threaded path up to floating-point rounding.
	Workers int
}

// NewPowerIteration returns a PowerIteration solver with spec defaults
// (alpha=0.15, tol=1e-6, max_iter=1000) for any zero-valued parameter.
func NewPowerIteration(p [][]float64, pi0 []float64) *PowerIteration {
	return &PowerIteration{P: p, Pi0: pi0, Alpha: defaultAlpha, Tol: defaultTol, MaxIter: defaultMaxIter}
}

// Run executes power iteration and returns the final distribution. If
// MaxIter is exhausted before the L1 movement drops below Tol, the last
// computed iterate is returned with no error: iteration-limit exhaustion is
// a normal stopping condition, not a failure. Returns ErrSolverDiverged if
// an iterate goes non-finite (NaN or Inf), and ErrCancelled if ctx is
// cancelled between iterations.
func (pi *PowerIteration) Run(ctx context.Context) ([]float64, error) {
	n := len(pi.P)
	if n == 0 || len(pi.Pi0) != n {
		return nil, fmt.Errorf("randomwalk: power iteration dimension mismatch (P has %d rows, pi0 has %d entries)", n, len(pi.Pi0))
	}

	alpha := pi.Alpha
	if alpha == 0 {
		alpha = defaultAlpha
	}
	tol := pi.Tol
	if tol == 0 {
		tol = defaultTol
	}
	maxIter := pi.MaxIter
	if maxIter == 0 {
		maxIter = defaultMaxIter
	}

	current := make([]float64, n)
	copy(current, pi.Pi0)

	for iter := 0; iter < maxIter; iter++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		default:
		}

		product := pi.matVec(current)
		next := make([]float64, n)
		l1 := 0.0
		for i := 0; i < n; i++ {
			next[i] = alpha*pi.Pi0[i] + (1-alpha)*product[i]
			if math.IsNaN(next[i]) || math.IsInf(next[i], 0) {
				return nil, fmt.Errorf("%w: non-finite value at index %d after %d iterations", ErrSolverDiverged, i, iter+1)
			}
			diff := next[i] - current[i]
			if diff < 0 {
				diff = -diff
			}
			l1 += diff
		}
		current = next

		if l1 < tol {
			return current, nil
		}
	}

	return current, nil
}

// matVec computes v*P (a row-vector times the transition matrix), optionally
// sharding rows of P across Workers goroutines.
func (pi *PowerIteration) matVec(v []float64) []float64 {
	n := len(pi.P)
	out := make([]float64, n)

	workers := pi.Workers
	if workers <= 1 || n < workers {
		for i := 0; i < n; i++ {
			vi := v[i]
			if vi == 0 {
				continue
			}
			row := pi.P[i]
			for j := 0; j < n; j++ {
				out[j] += vi * row[j]
			}
		}
		return out
	}

	if workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	partials := make([][]float64, workers)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		partials[w] = make([]float64, n)
		wg.Add(1)
		go func(start, end int, partial []float64) {
			defer wg.Done()
			for i := start; i < end; i++ {
				vi := v[i]
				if vi == 0 {
					continue
				}
				row := pi.P[i]
				for j := 0; j < n; j++ {
					partial[j] += vi * row[j]
				}
			}
		}(start, end, partials[w])
	}
	wg.Wait()

	for _, partial := range partials {
		for j := range out {
			out[j] += partial[j]
		}
	}
	return out
}
