// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package randomwalk

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
)

const defaultSteps = 1000

// MonteCarlo samples steps-length random walks from each seed index and
// accumulates visit counts over every node visited, including the starting
// nodes. The normalized visit-count vector approximates the same
// stationary distribution power iteration computes exactly.
type MonteCarlo struct {
	P     [][]float64
	Seeds []int // seed node indices, in order
	Steps int
	// BaseSeed makes sampling reproducible: walk i uses an RNG seeded with
	// BaseSeed XOR int64(i), so the zero value is as deterministic as any
	// other seed.
	BaseSeed int64
	// Parallel, if true, runs one goroutine per seed with disjoint,
	// deterministically-derived RNG streams; per-seed visit vectors are
	// summed after a join.
	Parallel bool
}

// NewMonteCarlo returns a MonteCarlo solver with the spec default of 1000
// steps per walk.
func NewMonteCarlo(p [][]float64, seeds []int) *MonteCarlo {
	return &MonteCarlo{P: p, Seeds: seeds, Steps: defaultSteps}
}

// Run executes one walk per seed and returns the normalized visit-count
// distribution. Returns ErrCancelled if ctx is cancelled between steps.
func (mc *MonteCarlo) Run(ctx context.Context) ([]float64, error) {
	n := len(mc.P)
	if n == 0 {
		return nil, fmt.Errorf("randomwalk: monte carlo run against empty kernel")
	}
	if len(mc.Seeds) == 0 {
		return nil, fmt.Errorf("randomwalk: monte carlo run with no seeds")
	}

	steps := mc.Steps
	if steps == 0 {
		steps = defaultSteps
	}

	if !mc.Parallel {
		counts := make([]float64, n)
		for i, seed := range mc.Seeds {
			rng := rand.New(rand.NewSource(mc.BaseSeed ^ int64(i)))
			if err := mc.walk(ctx, seed, steps, rng, counts); err != nil {
				return nil, err
			}
		}
		return normalize(counts), nil
	}

	partials := make([][]float64, len(mc.Seeds))
	errs := make([]error, len(mc.Seeds))
	var wg sync.WaitGroup
	for i, seed := range mc.Seeds {
		wg.Add(1)
		go func(i, seed int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(mc.BaseSeed ^ int64(i)))
			local := make([]float64, n)
			errs[i] = mc.walk(ctx, seed, steps, rng, local)
			partials[i] = local
		}(i, seed)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	counts := make([]float64, n)
	for _, partial := range partials {
		for j := range counts {
			counts[j] += partial[j]
		}
	}
	return normalize(counts), nil
}

// walk executes a single steps-length walk starting at seed, accumulating
// visit counts (including the start) into counts.
func (mc *MonteCarlo) walk(ctx context.Context, seed, steps int, rng *rand.Rand, counts []float64) error {
	current := seed
	counts[current]++

	for s := 0; s < steps; s++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		default:
		}

		next, err := mc.sampleNext(current, rng)
		if err != nil {
			return err
		}
		current = next
		counts[current]++
	}
	return nil
}

// sampleNext draws the next node from the categorical distribution
// P[current,:], restricted to positive entries and defensively
// renormalized.
func (mc *MonteCarlo) sampleNext(current int, rng *rand.Rand) (int, error) {
	row := mc.P[current]

	total := 0.0
	for _, p := range row {
		if p > 0 {
			total += p
		}
	}
	if total <= 0 {
		return 0, fmt.Errorf("randomwalk: node %d has no positive outgoing mass", current)
	}

	r := rng.Float64() * total
	cumulative := 0.0
	for j, p := range row {
		if p <= 0 {
			continue
		}
		cumulative += p
		if r < cumulative {
			return j, nil
		}
	}
	// Fall through for floating point edge cases: return the last
	// positive-mass entry.
	for j := len(row) - 1; j >= 0; j-- {
		if row[j] > 0 {
			return j, nil
		}
	}
	return current, nil
}

func normalize(counts []float64) []float64 {
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return counts
	}
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = c / total
	}
	return out
}
