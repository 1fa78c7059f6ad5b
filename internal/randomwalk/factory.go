// Wayfarer - Typed Random-Walk Music Recommendation Engine
// Copyright 2026 The Wayfarer Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nyxmusic/wayfarer

package randomwalk

import (
	"fmt"

	"github.com/nyxmusic/wayfarer/internal/graph"
	"github.com/nyxmusic/wayfarer/internal/markov"
)

// Params carries the tunable parameters for whichever Method is selected.
// Zero-valued fields fall back to each solver's spec defaults.
type Params struct {
	Alpha    float64
	Tol      float64
	MaxIter  int
	Steps    int
	BaseSeed int64
	Workers  int
	Parallel bool
}

// New constructs the solver named by method, wired against kernel k and the
// seed node names in seedNames. For MethodPowerIteration it builds the
// initial distribution via markov.BuildInitialDistribution; for
// MethodMonteCarlo it resolves seedNames to kernel indices directly,
// preserving the order given.
func New(method Method, k *markov.Kernel, seedNames []string, params Params) (Solver, error) {
	switch method {
	case MethodPowerIteration:
		pi0, err := markov.BuildInitialDistribution(k.Index, seedNames)
		if err != nil {
			return nil, err
		}
		pi := NewPowerIteration(k.P, pi0)
		if params.Alpha != 0 {
			pi.Alpha = params.Alpha
		}
		if params.Tol != 0 {
			pi.Tol = params.Tol
		}
		if params.MaxIter != 0 {
			pi.MaxIter = params.MaxIter
		}
		pi.Workers = params.Workers
		return pi, nil

	case MethodMonteCarlo:
		seeds, err := resolveSeedIndices(k.Index, seedNames)
		if err != nil {
			return nil, err
		}
		mc := NewMonteCarlo(k.P, seeds)
		if params.Steps != 0 {
			mc.Steps = params.Steps
		}
		mc.BaseSeed = params.BaseSeed
		mc.Parallel = params.Parallel
		return mc, nil

	default:
		return nil, fmt.Errorf("randomwalk: unknown solver method %q", method)
	}
}

func resolveSeedIndices(index *graph.NodeIndex, seedNames []string) ([]int, error) {
	seeds := make([]int, 0, len(seedNames))
	for _, name := range seedNames {
		i, ok := index.IndexOf(name)
		if !ok {
			continue
		}
		seeds = append(seeds, i)
	}
	if len(seeds) == 0 {
		return nil, markov.ErrNoValidSeeds
	}
	return seeds, nil
}
